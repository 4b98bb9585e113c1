package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	authFn func(token string) (*models.User, error)
}

func (s *stubAuthService) Register(in services.RegisterInput) (*models.User, error) {
	panic("not used")
}
func (s *stubAuthService) Login(email, password string) (*models.User, *models.Session, error) {
	panic("not used")
}
func (s *stubAuthService) Logout(token string) error { panic("not used") }
func (s *stubAuthService) Authenticate(token string) (*models.User, error) {
	return s.authFn(token)
}

func guardedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func get(r http.Handler, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	svc := &stubAuthService{
		authFn: func(token string) (*models.User, error) {
			t.Fatal("Authenticate should not run without a cookie")
			return nil, nil
		},
	}

	rec := get(guardedRouter(RequireAuth(svc)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredSession(t *testing.T) {
	svc := &stubAuthService{
		authFn: func(token string) (*models.User, error) {
			return nil, services.ErrSessionInvalid
		},
	}

	rec := get(guardedRouter(RequireAuth(svc)), "stale")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidSession(t *testing.T) {
	svc := &stubAuthService{
		authFn: func(token string) (*models.User, error) {
			assert.Equal(t, "tok123", token)
			return &models.User{Email: "asha@example.com", Type: models.UserTypeUser}, nil
		},
	}

	rec := get(guardedRouter(RequireAuth(svc)), "tok123")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "asha@example.com")
}

func TestRequireAdmin_RejectsCustomer(t *testing.T) {
	svc := &stubAuthService{
		authFn: func(token string) (*models.User, error) {
			return &models.User{Email: "asha@example.com", Type: models.UserTypeUser}, nil
		},
	}

	rec := get(guardedRouter(RequireAdmin(svc)), "tok123")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	svc := &stubAuthService{
		authFn: func(token string) (*models.User, error) {
			return &models.User{Email: "admin@travel.local", Type: models.UserTypeAdmin}, nil
		},
	}

	rec := get(guardedRouter(RequireAdmin(svc)), "tok123")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@travel.local")
}

func TestRequireAdmin_MissingCookie(t *testing.T) {
	svc := &stubAuthService{
		authFn: func(token string) (*models.User, error) {
			t.Fatal("Authenticate should not run without a cookie")
			return nil, nil
		},
	}

	rec := get(guardedRouter(RequireAdmin(svc)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUser_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}
