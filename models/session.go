package models

import "time"

// Session is a server-side login session. The browser only holds the opaque
// token in the "session" cookie; expiry is fixed at creation and not renewed
// on use.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;size:128" json:"-"`
	UserID    uint      `gorm:"index;column:user_id" json:"userId"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
