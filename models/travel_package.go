package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PackageStatusActive   = "active"
	PackageStatusInactive = "inactive"
)

// AvailabilityBatch is one dated departure window with its own ticket inventory.
// The remaining capacity is always derived from TotalTickets/BookedTickets and
// never stored, so the two counters stay the single source of truth.
type AvailabilityBatch struct {
	StartDate     string `json:"startDate"` // ISO date, e.g. "2025-10-01"
	Duration      string `json:"duration"`  // display string, may differ per batch
	TotalTickets  int    `json:"totalTickets"`
	BookedTickets int    `json:"bookedTickets"`
}

// AvailableTickets returns the derived remaining capacity, floored at zero.
func (b AvailabilityBatch) AvailableTickets() int {
	remaining := b.TotalTickets - b.BookedTickets
	if remaining < 0 {
		return 0
	}
	return remaining
}

// MarshalJSON includes the derived availableTickets for API consumers.
// UnmarshalJSON deliberately has no counterpart: an availableTickets value in
// incoming JSON is ignored because the field does not exist on the struct.
func (b AvailabilityBatch) MarshalJSON() ([]byte, error) {
	type alias AvailabilityBatch
	return json.Marshal(struct {
		alias
		AvailableTickets int `json:"availableTickets"`
	}{alias(b), b.AvailableTickets()})
}

type PickupSpot struct {
	Location string `json:"location"`
	Timing   string `json:"timing"` // free text, e.g. "6:00 AM"
}

type PickupCity struct {
	City  string       `json:"city"`
	Spots []PickupSpot `json:"spots"`
}

type TravelPackage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Details     string `gorm:"type:text" json:"details"`
	Image       string `gorm:"size:512" json:"image"`
	Location    string `gorm:"size:255" json:"location"`
	Category    string `gorm:"size:100;index" json:"category"`
	Duration    string `gorm:"size:50" json:"duration"` // display string, e.g. "5 Days"

	// Price is a display string mixing currency symbol and digits ("₹9,500").
	// Monetary math re-derives a number from it, see services.UnitPrice.
	Price string `gorm:"size:50" json:"price"`

	Status       string  `gorm:"size:20;default:active" json:"status"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `gorm:"column:reviews_count" json:"reviewsCount"`

	Itinerary  datatypes.JSONSlice[string] `json:"itinerary"`
	Inclusions datatypes.JSONSlice[string] `json:"inclusions"`
	Exclusions datatypes.JSONSlice[string] `json:"exclusions"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`

	Availability  datatypes.JSONSlice[AvailabilityBatch] `json:"availability"`
	ReadyToPickup datatypes.JSONSlice[PickupCity]        `gorm:"column:ready_to_pickup" json:"readyToPickup"`

	MapEmbedURL string `gorm:"column:map_embed_url;size:512" json:"mapEmbedUrl,omitempty"`
	BookingURL  string `gorm:"column:booking_url;size:512" json:"bookingUrl,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FirstPickup returns the package's first pickup city and its first spot,
// the defaults a fresh booking draft starts from.
func (p *TravelPackage) FirstPickup() (*PickupCity, *PickupSpot) {
	if len(p.ReadyToPickup) == 0 {
		return nil, nil
	}
	city := p.ReadyToPickup[0]
	if len(city.Spots) == 0 {
		return &city, nil
	}
	return &city, &city.Spots[0]
}

// PickupCityByName resolves a pickup city by name, nil when absent.
func (p *TravelPackage) PickupCityByName(name string) *PickupCity {
	for i := range p.ReadyToPickup {
		if p.ReadyToPickup[i].City == name {
			return &p.ReadyToPickup[i]
		}
	}
	return nil
}
