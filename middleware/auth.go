package middleware

import (
	"errors"
	"net/http"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session token. The
// token itself means nothing to the browser; it is looked up server-side.
const SessionCookieName = "session"

// userContextKey is where the resolved user is stashed for handlers.
const userContextKey = "currentUser"

// CurrentUser returns the user resolved by RequireAuth/RequireAdmin, nil when
// the request was not authenticated.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func authenticate(c *gin.Context, auth services.AuthService) (*models.User, bool) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session cookie not found"})
		return nil, false
	}

	user, err := auth.Authenticate(token)
	if err != nil {
		if errors.Is(err, services.ErrSessionInvalid) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return nil, false
	}
	return user, true
}

// RequireAuth resolves the session cookie to a user and aborts with 401 when
// the session is missing, unknown, or expired.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, auth)
		if !ok {
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin is RequireAuth plus an admin type check (403 otherwise).
func RequireAdmin(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, auth)
		if !ok {
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}
