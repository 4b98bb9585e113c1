package services

import (
	"errors"
	"strings"

	"travel-backend/models"
)

var (
	// ErrDraftSubmitted is returned by every mutator once a draft is frozen.
	// There is no edit-after-submit transition; the flow must be restarted.
	ErrDraftSubmitted = errors.New("draft already submitted")
	// ErrDraftIncomplete is returned by Submit while required fields are
	// missing or a selection has not been made.
	ErrDraftIncomplete = errors.New("draft has missing required fields")
	// ErrUnknownPickup is returned when a city or spot is not offered by the
	// package.
	ErrUnknownPickup = errors.New("pickup not offered by package")
	// ErrDateSoldOut is returned when a requested date has no remaining
	// capacity (or the whole package is sold out).
	ErrDateSoldOut = errors.New("no tickets remaining for requested date")
)

type MainContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Traveler struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BookingDraft is the in-progress state of a booking form. It moves through a
// single Editing -> Submitted transition: mutators keep the interdependent
// fields consistent while editing, and Submit freezes the draft into the
// read-only summary the confirmation view renders.
//
// A draft lives for one page view. It is never persisted; submitting converts
// it into a models.Booking at the persistence boundary.
type BookingDraft struct {
	pkg       models.TravelPackage
	submitted bool

	Contact      MainContact
	NumTravelers int
	Travelers    []Traveler
	Message      string

	SelectedDate         string
	SelectedAvailability *models.AvailabilityBatch
	SelectedCity         string
	SelectedSpot         string
}

// NewBookingDraft starts a fresh draft for a package, resolving the default
// date (first batch with remaining capacity, or requestedDate when it has
// capacity) and the package's first pickup city and spot. requestedDate may be
// empty; it typically arrives as a URL query default.
func NewBookingDraft(pkg models.TravelPackage, requestedDate string) *BookingDraft {
	d := &BookingDraft{
		pkg:          pkg,
		NumTravelers: 1,
		Travelers:    []Traveler{{}},
	}
	d.applySelection(SelectBatch(pkg.Availability, requestedDate, d.NumTravelers))
	d.resetPickup()
	return d
}

// Package returns the package this draft books against.
func (d *BookingDraft) Package() models.TravelPackage { return d.pkg }

// Submitted reports whether the draft has been frozen.
func (d *BookingDraft) Submitted() bool { return d.submitted }

func (d *BookingDraft) applySelection(sel BatchSelection) {
	d.SelectedAvailability = sel.Selected
	if sel.Selected != nil {
		d.SelectedDate = sel.Selected.StartDate
	} else {
		d.SelectedDate = ""
	}
	d.setTravelerCount(sel.Travelers)
}

func (d *BookingDraft) resetPickup() {
	city, spot := d.pkg.FirstPickup()
	d.SelectedCity, d.SelectedSpot = "", ""
	if city != nil {
		d.SelectedCity = city.City
	}
	if spot != nil {
		d.SelectedSpot = spot.Location
	}
}

// setTravelerCount resizes the roster to n: growing appends blank entries,
// shrinking truncates from the end. Entries that keep their index keep their
// values.
func (d *BookingDraft) setTravelerCount(n int) {
	if n < 1 {
		n = 1
	}
	d.NumTravelers = n
	for len(d.Travelers) < n {
		d.Travelers = append(d.Travelers, Traveler{})
	}
	d.Travelers = d.Travelers[:n]
}

// SetNumTravelers changes the traveler count, clamped to the selected batch's
// remaining capacity (minimum 1), and resizes the roster to match.
func (d *BookingDraft) SetNumTravelers(n int) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	if n < 1 {
		n = 1
	}
	if d.SelectedAvailability != nil {
		if max := d.SelectedAvailability.AvailableTickets(); n > max {
			n = max
		}
	}
	d.setTravelerCount(n)
	return nil
}

// SetTraveler updates one roster entry in place.
func (d *BookingDraft) SetTraveler(idx int, t Traveler) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	if idx < 0 || idx >= len(d.Travelers) {
		return errors.New("traveler index out of range")
	}
	d.Travelers[idx] = t
	return nil
}

// SetContact replaces the main contact fields.
func (d *BookingDraft) SetContact(c MainContact) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	d.Contact = c
	return nil
}

// SetMessage sets the optional note.
func (d *BookingDraft) SetMessage(msg string) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	d.Message = msg
	return nil
}

// SetDate switches the draft to another departure date. The availability batch
// is re-resolved, the traveler count clamped to the new batch's capacity, the
// roster resized, and the pickup choice reset to the package's first city and
// spot so a stale choice never carries across dates.
func (d *BookingDraft) SetDate(date string) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	sel := SelectBatch(d.pkg.Availability, date, d.NumTravelers)
	if sel.Selected == nil || sel.Selected.StartDate != date {
		return ErrDateSoldOut
	}
	d.applySelection(sel)
	d.resetPickup()
	return nil
}

// SetCity switches the pickup city and re-resolves the spot to that city's
// first spot.
func (d *BookingDraft) SetCity(city string) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	pc := d.pkg.PickupCityByName(city)
	if pc == nil {
		return ErrUnknownPickup
	}
	d.SelectedCity = pc.City
	d.SelectedSpot = ""
	if len(pc.Spots) > 0 {
		d.SelectedSpot = pc.Spots[0].Location
	}
	return nil
}

// SetSpot picks a boarding spot within the currently selected city.
func (d *BookingDraft) SetSpot(location string) error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	pc := d.pkg.PickupCityByName(d.SelectedCity)
	if pc == nil {
		return ErrUnknownPickup
	}
	for _, s := range pc.Spots {
		if s.Location == location {
			d.SelectedSpot = location
			return nil
		}
	}
	return ErrUnknownPickup
}

// UnitPrice is the per-traveler amount derived from the package's display price.
func (d *BookingDraft) UnitPrice() int { return UnitPrice(d.pkg.Price) }

// TotalPrice is UnitPrice multiplied by the traveler count.
func (d *BookingDraft) TotalPrice() int { return TotalPrice(d.pkg.Price, d.NumTravelers) }

// CanSubmit reports whether every required selection and field is present:
// a date where the package defines availability, a pickup city and spot where
// the package defines pickups, a complete main contact, and a name and phone
// for every traveler.
func (d *BookingDraft) CanSubmit() bool {
	if len(d.pkg.Availability) > 0 && d.SelectedAvailability == nil {
		return false
	}
	if len(d.pkg.ReadyToPickup) > 0 && (d.SelectedCity == "" || d.SelectedSpot == "") {
		return false
	}
	if blank(d.Contact.Name) || blank(d.Contact.Email) || blank(d.Contact.Phone) {
		return false
	}
	if len(d.Travelers) != d.NumTravelers {
		return false
	}
	for _, t := range d.Travelers {
		if blank(t.Name) || blank(t.Phone) {
			return false
		}
	}
	return true
}

// Submit freezes the draft. It fails without changing state while CanSubmit
// is false; afterwards every mutator returns ErrDraftSubmitted.
func (d *BookingDraft) Submit() error {
	if d.submitted {
		return ErrDraftSubmitted
	}
	if !d.CanSubmit() {
		return ErrDraftIncomplete
	}
	d.submitted = true
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
