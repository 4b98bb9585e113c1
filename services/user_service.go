package services

import (
	"travel-backend/models"

	"gorm.io/gorm"
)

// CustomerSummary is the admin customer list row: the registered user plus
// booking aggregates joined by email.
type CustomerSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	TotalBookings   int64   `json:"totalBookings"`
	LastBookingDate *string `json:"lastBookingDate"`
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// ListCustomers returns every registered non-admin user with their booking
// counts. Bookings are matched on customer email since the public booking
// form does not require an account.
func (s *UserService) ListCustomers() ([]CustomerSummary, error) {
	var users []models.User
	if err := s.DB.Where("type = ?", models.UserTypeUser).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]CustomerSummary, 0, len(users))
	for _, u := range users {
		summary := CustomerSummary{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Contact,
		}

		var count int64
		if err := s.DB.Model(&models.Booking{}).
			Where("customer_email = ?", u.Email).
			Count(&count).Error; err != nil {
			return nil, err
		}
		summary.TotalBookings = count

		if count > 0 {
			var last models.Booking
			if err := s.DB.Where("customer_email = ?", u.Email).
				Order("created_at DESC").First(&last).Error; err == nil {
				date := last.CreatedAt.Format("2006-01-02")
				summary.LastBookingDate = &date
			}
		}
		out = append(out, summary)
	}
	return out, nil
}
