package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"travel-backend/models"
	"travel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionTTL is the fixed lifetime of a login session. Sessions are not
// renewed on use; after expiry the user logs in again.
const SessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrSessionInvalid     = errors.New("session_invalid")
)

// ValidationError carries a field-level registration failure the handler
// surfaces inline.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contactPattern = regexp.MustCompile(`^\d{10}$`)
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

// AuthService is the single authentication gate. Every handler that needs an
// identity goes through this interface; none re-implements cookie or session
// handling on its own.
type AuthService interface {
	Register(in RegisterInput) (*models.User, error)
	Login(email, password string) (*models.User, *models.Session, error)
	Logout(token string) error
	// Authenticate resolves a session token to its user, rejecting missing
	// and expired sessions alike.
	Authenticate(token string) (*models.User, error)
}

type authService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAuthService(db *gorm.DB) AuthService {
	return &authService{db: db, now: time.Now}
}

func (s *authService) Register(in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Contact = strings.TrimSpace(in.Contact)

	if in.Name == "" || in.Email == "" || in.Contact == "" || in.Password == "" {
		return nil, &ValidationError{Field: "all", Reason: "all fields are required"}
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, &ValidationError{Field: "email", Reason: "invalid email format"}
	}
	if !contactPattern.MatchString(in.Contact) {
		return nil, &ValidationError{Field: "contact", Reason: "contact must be a 10-digit phone number"}
	}

	var existing models.User
	err := s.db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Contact:  in.Contact,
		Password: string(hash),
		Type:     models.UserTypeUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (s *authService) Login(email, password string) (*models.User, *models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, nil, fmt.Errorf("generate session token: %w", err)
	}

	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(SessionTTL),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	return &user, &session, nil
}

func (s *authService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

func (s *authService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	var session models.Session
	err := s.db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.Expired(s.now()) {
		return nil, ErrSessionInvalid
	}

	var user models.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}
	return &user, nil
}
