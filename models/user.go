package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserTypeUser  = "user"
	UserTypeAdmin = "admin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Contact  string `gorm:"size:50" json:"contact"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Type     string `gorm:"size:20;default:user" json:"type"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}
