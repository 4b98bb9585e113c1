package services

import (
	"errors"
	"fmt"
	"strings"

	"travel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrBookingSoldOut    = errors.New("sold_out")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrPackageInactive   = errors.New("package_inactive")
	ErrInvalidSubmission = errors.New("invalid_submission")
)

// BookingSubmission is the payload a client sends when a booking draft is
// submitted. It carries the draft fields only; the availability batch and the
// amount are re-resolved server-side so a stale client can never oversell a
// batch or set its own price.
type BookingSubmission struct {
	PackageID    uint        `json:"packageId"`
	Contact      MainContact `json:"mainContact"`
	NumTravelers int         `json:"numTravelers"`
	Travelers    []Traveler  `json:"travelers"`
	Date         string      `json:"selectedDate"`
	City         string      `json:"selectedCity"`
	Spot         string      `json:"selectedSpot"`
	Message      string      `json:"message"`
}

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TotalPackages  int64 `json:"totalPackages"`
	ActiveBookings int64 `json:"activeBookings"`
	TotalCustomers int64 `json:"totalCustomers"`
	Revenue        int64 `json:"revenue"`
}

type BookingService interface {
	CreateFromSubmission(sub BookingSubmission) (*models.Booking, error)
	List() ([]models.Booking, error)
	GetByID(id uint) (*models.Booking, error)
	UpdateStatus(id uint, status string) (*models.Booking, error)
	Dashboard() (DashboardStats, error)
}

type bookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) BookingService {
	return &bookingService{db: db}
}

// replayDraft rebuilds the booking draft server-side from the submitted
// fields and runs it through the same state machine the form uses, so the
// submit-gating rules hold at the API boundary too.
func replayDraft(pkg models.TravelPackage, sub BookingSubmission) (*BookingDraft, error) {
	draft := NewBookingDraft(pkg, sub.Date)
	if len(pkg.Availability) > 0 {
		if draft.SelectedAvailability == nil || draft.SelectedDate != sub.Date {
			return nil, ErrDateSoldOut
		}
	}
	if sub.NumTravelers < 1 {
		return nil, ErrInvalidSubmission
	}
	if err := draft.SetNumTravelers(sub.NumTravelers); err != nil {
		return nil, err
	}
	if draft.NumTravelers != sub.NumTravelers {
		// the clamp fired: the client asked for more seats than remain
		return nil, ErrBookingSoldOut
	}
	if len(sub.Travelers) != sub.NumTravelers {
		return nil, ErrInvalidSubmission
	}
	for i, t := range sub.Travelers {
		if err := draft.SetTraveler(i, t); err != nil {
			return nil, err
		}
	}
	if len(pkg.ReadyToPickup) > 0 {
		if err := draft.SetCity(sub.City); err != nil {
			return nil, err
		}
		if err := draft.SetSpot(sub.Spot); err != nil {
			return nil, err
		}
	}
	if err := draft.SetContact(sub.Contact); err != nil {
		return nil, err
	}
	if err := draft.SetMessage(sub.Message); err != nil {
		return nil, err
	}
	if err := draft.Submit(); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *bookingService) CreateFromSubmission(sub BookingSubmission) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pkg models.TravelPackage
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pkg, sub.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return fmt.Errorf("load package: %w", err)
		}
		if pkg.Status != models.PackageStatusActive {
			return ErrPackageInactive
		}

		draft, err := replayDraft(pkg, sub)
		if err != nil {
			return err
		}

		// consume the tickets on the booked batch
		if len(pkg.Availability) > 0 {
			batches := []models.AvailabilityBatch(pkg.Availability)
			idx := -1
			for i := range batches {
				if batches[i].StartDate == draft.SelectedDate {
					idx = i
					break
				}
			}
			if idx < 0 || batches[idx].AvailableTickets() < draft.NumTravelers {
				return ErrBookingSoldOut
			}
			batches[idx].BookedTickets += draft.NumTravelers
			pkg.Availability = batches
			if err := tx.Model(&pkg).Update("availability", pkg.Availability).Error; err != nil {
				return fmt.Errorf("update availability: %w", err)
			}
		}

		booking = models.Booking{
			PackageID:     pkg.ID,
			PackageTitle:  pkg.Title,
			ReferenceCode: newBookingReference(),
			CustomerName:  draft.Contact.Name,
			CustomerEmail: draft.Contact.Email,
			CustomerPhone: draft.Contact.Phone,
			TravelDate:    draft.SelectedDate,
			Travelers:     draft.NumTravelers,
			Amount:        draft.TotalPrice(),
			Currency:      CurrencySymbol(pkg.Price),
			Status:        models.BookingStatusPending,
			Message:       strings.TrimSpace(draft.Message),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func newBookingReference() string {
	return "TRV-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *bookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus sets a booking's status. Any status may move to any other; the
// admin UI enforces no transition rules.
func (s *bookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(booking).Update("status", status).Error; err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

func (s *bookingService) Dashboard() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.TravelPackage{}).Count(&stats.TotalPackages).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Count(&stats.ActiveBookings).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.User{}).
		Where("type = ?", models.UserTypeUser).
		Count(&stats.TotalCustomers).Error; err != nil {
		return stats, err
	}

	var revenue *int64
	if err := s.db.Model(&models.Booking{}).
		Where("status <> ?", models.BookingStatusCancelled).
		Select("SUM(amount)").Scan(&revenue).Error; err != nil {
		return stats, err
	}
	if revenue != nil {
		stats.Revenue = *revenue
	}
	return stats, nil
}
