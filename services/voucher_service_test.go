package services

import (
	"testing"
	"time"

	"travel-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildBookingVoucherPDF(t *testing.T) {
	booking := &models.Booking{
		ID:            7,
		PackageID:     1,
		PackageTitle:  "Rajasthan Desert Safari",
		ReferenceCode: "TRV-AB12CD34",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		TravelDate:    "2025-10-01",
		Travelers:     2,
		Amount:        19000,
		Currency:      "$",
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Date(2025, 9, 12, 10, 30, 0, 0, time.UTC),
	}

	data, filename, err := BuildBookingVoucherPDF(booking)

	assert.NoError(t, err)
	assert.Equal(t, "VOUCHER_TRV-AB12CD34.pdf", filename)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildBookingVoucherPDF_BlankFields(t *testing.T) {
	data, filename, err := BuildBookingVoucherPDF(&models.Booking{})

	assert.NoError(t, err)
	assert.Equal(t, "VOUCHER_-.pdf", filename)
	assert.NotEmpty(t, data)
}
