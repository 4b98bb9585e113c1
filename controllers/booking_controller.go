package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings services.BookingService
}

func NewBookingController(bookings services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// Create (POST /api/bookings) converts a submitted booking draft into a
// confirmed booking. Capacity is checked server-side inside a transaction, so
// two clients racing over the last seats cannot both win.
func (ctrl *BookingController) Create(c *gin.Context) {
	var sub services.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if sub.PackageID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "packageId is required")
		return
	}

	booking, err := ctrl.Bookings.CreateFromSubmission(sub)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPackageNotFound):
			utils.JSONError(c, http.StatusNotFound, "Package not found")
		case errors.Is(err, services.ErrPackageInactive):
			utils.JSONError(c, http.StatusConflict, "Package is not open for booking")
		case errors.Is(err, services.ErrBookingSoldOut), errors.Is(err, services.ErrDateSoldOut):
			utils.JSONError(c, http.StatusConflict, "Not enough tickets remaining for the selected date")
		case errors.Is(err, services.ErrDraftIncomplete), errors.Is(err, services.ErrInvalidSubmission),
			errors.Is(err, services.ErrUnknownPickup):
			utils.JSONError(c, http.StatusBadRequest, "Booking form is incomplete or invalid")
		default:
			log.Printf("create booking failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// List (GET /api/admin/bookings) returns every booking, newest first.
func (ctrl *BookingController) List(c *gin.Context) {
	bookings, err := ctrl.Bookings.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type statusPayload struct {
	Status string `json:"status"`
}

// UpdateStatus (PATCH /api/admin/bookings/:id/status) sets any of the four
// booking statuses; no transition rules apply.
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := ctrl.Bookings.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "unknown status")
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Voucher (GET /api/admin/bookings/:id/voucher) streams the printable PDF.
func (ctrl *BookingController) Voucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	pdf, filename, err := services.BuildBookingVoucherPDF(booking)
	if err != nil {
		log.Printf("voucher generation failed for booking %d: %v", booking.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate voucher")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
