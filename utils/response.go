package utils

import "github.com/gin-gonic/gin"

// JSONSuccess wraps a payload in the standard success envelope.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError emits the standard error envelope every handler error path uses.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
