package controllers

import (
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscriberController struct {
	DB *gorm.DB
}

func NewSubscriberController(db *gorm.DB) *SubscriberController {
	return &SubscriberController{DB: db}
}

// Create (POST /api/subscriber) captures a newsletter signup.
func (ctrl *SubscriberController) Create(c *gin.Context) {
	var sub models.Subscriber
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if strings.TrimSpace(sub.Name) == "" || strings.TrimSpace(sub.Email) == "" || strings.TrimSpace(sub.Contact) == "" {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	sub.ID = 0
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sub)
}
