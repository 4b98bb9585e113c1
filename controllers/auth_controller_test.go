package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// --- Mock AuthService ---

type mockAuthService struct {
	registerFn func(in services.RegisterInput) (*models.User, error)
	loginFn    func(email, password string) (*models.User, *models.Session, error)
	logoutFn   func(token string) error
	authFn     func(token string) (*models.User, error)
}

func (m *mockAuthService) Register(in services.RegisterInput) (*models.User, error) {
	return m.registerFn(in)
}
func (m *mockAuthService) Login(email, password string) (*models.User, *models.Session, error) {
	return m.loginFn(email, password)
}
func (m *mockAuthService) Logout(token string) error { return m.logoutFn(token) }
func (m *mockAuthService) Authenticate(token string) (*models.User, error) {
	return m.authFn(token)
}

func authRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(svc)
	r.POST("/api/register", ctrl.Register)
	r.POST("/api/login", ctrl.Login)
	r.POST("/api/logout", ctrl.Logout)
	r.GET("/api/auth/check", ctrl.Check)
	return r
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(email, password string) (*models.User, *models.Session, error) {
			assert.Equal(t, "admin@travel.local", email)
			return &models.User{Name: "Admin User", Email: email, Type: models.UserTypeAdmin},
				&models.Session{Token: "tok123", ExpiresAt: time.Now().Add(24 * time.Hour)},
				nil
		},
	}

	rec := performJSON(authRouter(svc), http.MethodPost, "/api/login",
		`{"email":"admin@travel.local","password":"admin123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "session" {
			session = c
		}
	}
	if assert.NotNil(t, session) {
		assert.Equal(t, "tok123", session.Value)
		assert.True(t, session.HttpOnly)
	}

	var resp struct {
		User struct {
			Type string `json:"type"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.UserTypeAdmin, resp.User.Type)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(email, password string) (*models.User, *models.Session, error) {
			return nil, nil, services.ErrInvalidCredentials
		},
	}

	rec := performJSON(authRouter(svc), http.MethodPost, "/api/login",
		`{"email":"x@y.z","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_MissingFields(t *testing.T) {
	rec := performJSON(authRouter(&mockAuthService{}), http.MethodPost, "/api/login", `{"email":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_Success(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(in services.RegisterInput) (*models.User, error) {
			return &models.User{ID: 3, Name: in.Name, Email: in.Email, Type: models.UserTypeUser}, nil
		},
	}

	rec := performJSON(authRouter(svc), http.MethodPost, "/api/register",
		`{"name":"Asha","email":"asha@example.com","contact":"9876543210","password":"secret12"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(in services.RegisterInput) (*models.User, error) {
			return nil, services.ErrEmailTaken
		},
	}

	rec := performJSON(authRouter(svc), http.MethodPost, "/api/register",
		`{"name":"Asha","email":"asha@example.com","contact":"9876543210","password":"secret12"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_ValidationError(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(in services.RegisterInput) (*models.User, error) {
			return nil, &services.ValidationError{Field: "contact", Reason: "contact must be a 10-digit phone number"}
		},
	}

	rec := performJSON(authRouter(svc), http.MethodPost, "/api/register",
		`{"name":"Asha","email":"asha@example.com","contact":"12","password":"secret12"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "10-digit"))
}

func TestCheck_NoCookie(t *testing.T) {
	svc := &mockAuthService{
		authFn: func(token string) (*models.User, error) {
			t.Fatal("Authenticate should not be called without a cookie")
			return nil, nil
		},
	}

	rec := performJSON(authRouter(svc), http.MethodGet, "/api/auth/check", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheck_ValidSession(t *testing.T) {
	svc := &mockAuthService{
		authFn: func(token string) (*models.User, error) {
			assert.Equal(t, "tok123", token)
			return &models.User{Name: "Asha", Email: "asha@example.com", Type: models.UserTypeUser}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok123"})
	rec := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "asha@example.com")
}

func TestCheck_ExpiredSession(t *testing.T) {
	svc := &mockAuthService{
		authFn: func(token string) (*models.User, error) {
			return nil, services.ErrSessionInvalid
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	rec := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_ClearsCookieAndSession(t *testing.T) {
	loggedOut := ""
	svc := &mockAuthService{
		logoutFn: func(token string) error {
			loggedOut = token
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/logout", strings.NewReader(""))
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok123"})
	rec := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok123", loggedOut)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			cleared = c
		}
	}
	if assert.NotNil(t, cleared) {
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	}
}
