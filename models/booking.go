package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// BookingStatuses lists every status the admin UI may set. Any status can
// transition to any other; no state-machine constraint is enforced.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func IsValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PackageID     uint   `gorm:"index;column:package_id" json:"packageId"`
	PackageTitle  string `gorm:"size:255;column:package_title" json:"packageTitle"`
	ReferenceCode string `gorm:"size:64;uniqueIndex;column:reference_code" json:"referenceCode"`

	CustomerName  string `gorm:"size:255;column:customer_name" json:"customerName"`
	CustomerEmail string `gorm:"size:255;column:customer_email;index" json:"customerEmail"`
	CustomerPhone string `gorm:"size:50;column:customer_phone" json:"customerPhone"`

	TravelDate string `gorm:"size:20;column:travel_date" json:"travelDate"` // ISO date of the booked batch
	Travelers  int    `gorm:"column:travelers" json:"travelers"`
	Amount     int    `gorm:"column:amount" json:"amount"`
	Currency   string `gorm:"size:8;column:currency" json:"currency,omitempty"` // display symbol from the package price
	Status     string `gorm:"size:20;default:pending" json:"status"`
	Message    string `gorm:"type:text" json:"message,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
