package controllers

import (
	"errors"
	"net/http"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Register (POST /api/register) creates a customer account.
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload services.RegisterInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ctrl.Auth.Register(payload)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Reason)
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, "Email already registered")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

// Login (POST /api/login) verifies credentials and sets the session cookie.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, session, err := ctrl.Auth.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	setSessionCookie(c, session.Token, int(services.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
			"type":  user.Type,
		},
	})
}

// Logout (POST /api/logout) drops the server-side session and clears the cookie.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if err := ctrl.Auth.Logout(token); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
			return
		}
	}
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Check (GET /api/auth/check) resolves the session cookie to its user.
func (ctrl *AuthController) Check(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Session cookie not found")
		return
	}

	user, err := ctrl.Auth.Authenticate(token)
	if err != nil {
		if errors.Is(err, services.ErrSessionInvalid) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired session")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
			"type":  user.Type,
		},
	})
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
}
