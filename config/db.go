package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"
	"travel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "travel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.TravelPackage{},
		&models.Booking{},
		&models.Subscriber{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase ensures a default admin login and a starter catalog exist.
// Both guards are count-based so re-running against a populated database is a
// no-op.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("type = ?", models.UserTypeAdmin).Count(&adminCount)
	if adminCount == 0 {
		password := utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Name:     "Admin User",
				Email:    utils.EnvOrDefault("ADMIN_EMAIL", "admin@travel.local"),
				Contact:  "0000000000",
				Password: string(hash),
				Type:     models.UserTypeAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var pkgCount int64
	DB.Model(&models.TravelPackage{}).Count(&pkgCount)
	if pkgCount == 0 {
		packages := seedPackages()
		if err := DB.Create(&packages).Error; err != nil {
			log.Printf("warning: failed to seed packages: %v", err)
		} else {
			log.Println("Travel packages seeded")
		}
	}
}

func seedPackages() []models.TravelPackage {
	pickupsWest := datatypes.NewJSONSlice([]models.PickupCity{
		{
			City: "Ahmedabad",
			Spots: []models.PickupSpot{
				{Location: "ISKCON Temple", Timing: "6:00 AM"},
				{Location: "Sabarmati Ashram", Timing: "6:30 AM"},
				{Location: "Airport", Timing: "5:00 AM"},
			},
		},
		{
			City: "Jaipur",
			Spots: []models.PickupSpot{
				{Location: "Railway Station", Timing: "6:00 AM"},
				{Location: "Sindhi Camp", Timing: "6:30 AM"},
			},
		},
	})

	pickupsSouth := datatypes.NewJSONSlice([]models.PickupCity{
		{
			City: "Kochi",
			Spots: []models.PickupSpot{
				{Location: "Ernakulam Junction", Timing: "7:00 AM"},
				{Location: "Marine Drive", Timing: "7:30 AM"},
			},
		},
	})

	return []models.TravelPackage{
		{
			Title:        "Rajasthan Desert Safari",
			Description:  "Camel rides, cultural shows, and desert camping under the stars.",
			Details:      "Experience the thrill of the Thar Desert. Ride camels across dunes, enjoy folk music, and sleep under the stars in traditional tents.",
			Image:        "https://images.travel.local/desert-safari.jpg",
			Duration:     "3 Days",
			Price:        "₹9,500",
			Location:     "Jaisalmer, Rajasthan",
			Category:     "Desert",
			Status:       models.PackageStatusActive,
			Rating:       4.6,
			ReviewsCount: 210,
			Itinerary: datatypes.NewJSONSlice([]string{
				"Day 1: Arrival & Welcome Dinner",
				"Day 2: Camel Safari & Cultural Night",
				"Day 3: Morning Ride & Departure",
			}),
			Inclusions: datatypes.NewJSONSlice([]string{"Camel Ride", "Folk Show", "2 Night Accommodation", "Meals"}),
			Exclusions: datatypes.NewJSONSlice([]string{"Airfare", "Travel Insurance"}),
			Tags:       datatypes.NewJSONSlice([]string{"Adventure", "Culture", "Desert"}),
			Availability: datatypes.NewJSONSlice([]models.AvailabilityBatch{
				{StartDate: "2025-10-01", Duration: "3 Days", TotalTickets: 30, BookedTickets: 20},
				{StartDate: "2025-11-15", Duration: "4 Days", TotalTickets: 40, BookedTickets: 25},
				{StartDate: "2025-12-10", Duration: "3 Days", TotalTickets: 30, BookedTickets: 30},
			}),
			ReadyToPickup: pickupsWest,
		},
		{
			Title:        "Kerala Backwater Escape",
			Description:  "A serene houseboat journey through Kerala's backwaters.",
			Details:      "Sail through the tranquil backwaters of Alleppey in a traditional houseboat. Enjoy fresh seafood, coconut groves, and a glimpse into rural Kerala life.",
			Image:        "https://images.travel.local/backwater.jpg",
			Duration:     "4 Days",
			Price:        "₹10,500",
			Location:     "Alleppey, Kerala",
			Category:     "Backwater",
			Status:       models.PackageStatusActive,
			Rating:       4.8,
			ReviewsCount: 164,
			Itinerary: datatypes.NewJSONSlice([]string{
				"Day 1: Kochi Arrival & Transfer",
				"Day 2: Houseboat Cruise",
				"Day 3: Village Walk & Ayurveda",
				"Day 4: Departure",
			}),
			Inclusions: datatypes.NewJSONSlice([]string{"Houseboat Stay", "All Meals", "Village Tour"}),
			Exclusions: datatypes.NewJSONSlice([]string{"Airfare", "Personal Expenses"}),
			Tags:       datatypes.NewJSONSlice([]string{"Relaxation", "Nature"}),
			Availability: datatypes.NewJSONSlice([]models.AvailabilityBatch{
				{StartDate: "2025-10-20", Duration: "4 Days", TotalTickets: 20, BookedTickets: 12},
				{StartDate: "2025-11-25", Duration: "4 Days", TotalTickets: 20, BookedTickets: 5},
			}),
			ReadyToPickup: pickupsSouth,
		},
		{
			Title:        "Thar Heritage Trail",
			Description:  "Forts, havelis, and dune villages across the Thar.",
			Details:      "A slower loop through Jaisalmer and Bikaner with heritage stays, stepwell visits, and an overnight dune camp.",
			Image:        "https://images.travel.local/thar-trail.jpg",
			Duration:     "5 Days",
			Price:        "₹14,200",
			Location:     "Bikaner, Rajasthan",
			Category:     "Desert",
			Status:       models.PackageStatusActive,
			Rating:       4.4,
			ReviewsCount: 88,
			Itinerary: datatypes.NewJSONSlice([]string{
				"Day 1: Bikaner Arrival",
				"Day 2: Junagarh Fort & Old Town",
				"Day 3: Drive to Jaisalmer",
				"Day 4: Dune Camp",
				"Day 5: Departure",
			}),
			Inclusions: datatypes.NewJSONSlice([]string{"Heritage Stay", "Breakfast", "Camp Dinner"}),
			Exclusions: datatypes.NewJSONSlice([]string{"Lunches", "Monument Fees"}),
			Tags:       datatypes.NewJSONSlice([]string{"Heritage", "Desert"}),
			Availability: datatypes.NewJSONSlice([]models.AvailabilityBatch{
				{StartDate: "2025-11-05", Duration: "5 Days", TotalTickets: 16, BookedTickets: 2},
			}),
			ReadyToPickup: pickupsWest,
		},
		{
			Title:        "Dubai Desert Expedition",
			Description:  "Dune bashing, sandboarding, and a night at a luxury desert camp.",
			Details:      "An eight-day Emirates circuit pairing city sights with deep-desert excursions and a Bedouin-style camp stay.",
			Image:        "https://images.travel.local/dubai-desert.jpg",
			Duration:     "8 Days",
			Price:        "$1,899",
			Location:     "Dubai, UAE",
			Category:     "Desert",
			Status:       models.PackageStatusActive,
			Rating:       4.7,
			ReviewsCount: 301,
			Itinerary: datatypes.NewJSONSlice([]string{
				"Day 1-2: Dubai City",
				"Day 3-5: Desert Camp",
				"Day 6-7: Abu Dhabi",
				"Day 8: Departure",
			}),
			Inclusions: datatypes.NewJSONSlice([]string{"Hotel & Camp Stay", "Dune Bashing", "Breakfast"}),
			Exclusions: datatypes.NewJSONSlice([]string{"Visa", "Airfare", "Travel Insurance"}),
			Tags:       datatypes.NewJSONSlice([]string{"Luxury", "Adventure", "Desert"}),
			Availability: datatypes.NewJSONSlice([]models.AvailabilityBatch{
				{StartDate: "2025-12-01", Duration: "8 Days", TotalTickets: 24, BookedTickets: 10},
			}),
		},
		{
			Title:        "Jaisalmer Dune Camp",
			Description:  "A quick weekend escape to the Sam sand dunes.",
			Details:      "Two days of dune jeep rides, sunset points, and a bonfire night at a fixed camp.",
			Image:        "https://images.travel.local/dune-camp.jpg",
			Duration:     "2 Days",
			Price:        "₹4,800",
			Location:     "Sam, Rajasthan",
			Category:     "Desert",
			Status:       models.PackageStatusActive,
			Rating:       4.2,
			ReviewsCount: 57,
			Itinerary: datatypes.NewJSONSlice([]string{
				"Day 1: Jeep Safari & Bonfire",
				"Day 2: Sunrise Walk & Departure",
			}),
			Inclusions: datatypes.NewJSONSlice([]string{"Camp Stay", "Dinner", "Jeep Safari"}),
			Exclusions: datatypes.NewJSONSlice([]string{"Transport to Sam"}),
			Tags:       datatypes.NewJSONSlice([]string{"Weekend", "Desert"}),
			Availability: datatypes.NewJSONSlice([]models.AvailabilityBatch{
				{StartDate: "2025-10-11", Duration: "2 Days", TotalTickets: 12, BookedTickets: 12},
				{StartDate: "2025-10-18", Duration: "2 Days", TotalTickets: 12, BookedTickets: 4},
			}),
			ReadyToPickup: pickupsWest,
		},
	}
}
