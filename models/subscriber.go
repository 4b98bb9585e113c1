package models

import "time"

// Subscriber is a newsletter signup captured from the marketing site footer.
type Subscriber struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255;index" json:"email"`
	Contact string `gorm:"size:50" json:"contact"`

	CreatedAt time.Time `json:"createdAt"`
}
