package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() BookingSubmission {
	return BookingSubmission{
		PackageID:    1,
		Contact:      MainContact{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210"},
		NumTravelers: 2,
		Travelers: []Traveler{
			{Name: "Asha Rao", Phone: "9876543210"},
			{Name: "Ravi Rao", Phone: "9876500000"},
		},
		Date: "2025-10-01",
		City: "Ahmedabad",
		Spot: "Airport",
		Message: "vegetarian meals please",
	}
}

func TestReplayDraft_Valid(t *testing.T) {
	draft, err := replayDraft(fixturePackage(), validSubmission())

	assert.NoError(t, err)
	assert.True(t, draft.Submitted())
	assert.Equal(t, "2025-10-01", draft.SelectedDate)
	assert.Equal(t, "Airport", draft.SelectedSpot)
	assert.Equal(t, 19000, draft.TotalPrice())
}

func TestReplayDraft_SoldOutDate(t *testing.T) {
	sub := validSubmission()
	sub.Date = "2025-12-10"

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrDateSoldOut)
}

func TestReplayDraft_UnknownDate(t *testing.T) {
	sub := validSubmission()
	sub.Date = "2026-01-01"

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrDateSoldOut)
}

func TestReplayDraft_OverCapacity(t *testing.T) {
	sub := validSubmission()
	sub.NumTravelers = 11 // batch has 10 remaining
	sub.Travelers = make([]Traveler, 11)
	for i := range sub.Travelers {
		sub.Travelers[i] = Traveler{Name: "T", Phone: "1"}
	}

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrBookingSoldOut)
}

func TestReplayDraft_RosterCountMismatch(t *testing.T) {
	sub := validSubmission()
	sub.Travelers = sub.Travelers[:1]

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestReplayDraft_ZeroTravelers(t *testing.T) {
	sub := validSubmission()
	sub.NumTravelers = 0
	sub.Travelers = nil

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestReplayDraft_UnknownPickup(t *testing.T) {
	sub := validSubmission()
	sub.City = "Mumbai"

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrUnknownPickup)

	sub = validSubmission()
	sub.Spot = "Railway Station" // belongs to Jaipur, not Ahmedabad
	_, err = replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrUnknownPickup)
}

func TestReplayDraft_MissingContact(t *testing.T) {
	sub := validSubmission()
	sub.Contact.Email = ""

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
}

func TestReplayDraft_BlankTraveler(t *testing.T) {
	sub := validSubmission()
	sub.Travelers[1] = Traveler{}

	_, err := replayDraft(fixturePackage(), sub)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
}

func TestNewBookingReferenceShape(t *testing.T) {
	ref := newBookingReference()
	assert.Len(t, ref, 12)
	assert.Equal(t, "TRV-", ref[:4])
	assert.NotEqual(t, ref, newBookingReference())
}
