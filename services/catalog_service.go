package services

import (
	"errors"
	"strconv"

	"travel-backend/models"

	"gorm.io/gorm"
)

// ErrPackageNotFound signals a catalog lookup miss.
var ErrPackageNotFound = errors.New("package not found")

// recommendedLimit bounds the recommended-packages strip on detail pages.
const recommendedLimit = 3

// CatalogProvider is a read-only view over the travel package catalog. The
// lookup and availability components depend on this interface so they can be
// exercised without a database.
type CatalogProvider interface {
	All() ([]models.TravelPackage, error)
	ByID(id uint) (*models.TravelPackage, error)
}

// CatalogService is the gorm-backed CatalogProvider plus the listing filters.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// All returns the catalog in stable id order. List order doubles as the
// implicit sort key for batch selection and recommendations.
func (s *CatalogService) All() ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	if err := s.DB.Order("id ASC").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (s *CatalogService) ByID(id uint) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	if err := s.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// Filtered applies the listing page's duration bucket and category filters.
func (s *CatalogService) Filtered(daysBucket, category string) ([]models.TravelPackage, error) {
	pkgs, err := s.All()
	if err != nil {
		return nil, err
	}
	return FilterPackages(pkgs, daysBucket, category), nil
}

// Create persists a new package. Derived availability numbers in the input
// JSON never reach the struct; only total/booked counters are stored.
func (s *CatalogService) Create(pkg *models.TravelPackage) error {
	if pkg.Status == "" {
		pkg.Status = models.PackageStatusActive
	}
	return s.DB.Create(pkg).Error
}

// Update replaces a package's fields wholesale (the admin form submits the
// full entity).
func (s *CatalogService) Update(id uint, pkg *models.TravelPackage) (*models.TravelPackage, error) {
	existing, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	pkg.ID = existing.ID
	pkg.CreatedAt = existing.CreatedAt
	if err := s.DB.Save(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *CatalogService) Delete(id uint) error {
	res := s.DB.Delete(&models.TravelPackage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}

// DurationDays extracts the first integer token from a duration display
// string ("5 Days" -> 5). A string with no digits counts as 0 days.
func DurationDays(duration string) int {
	start := -1
	for i, r := range duration {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(duration[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(duration[start:])
		return n
	}
	return 0
}

// MatchesDaysBucket maps a duration string into the listing filter buckets:
// "all", "1-3" (<=3 days), "4-7", "8+".
func MatchesDaysBucket(duration, bucket string) bool {
	days := DurationDays(duration)
	switch bucket {
	case "", "all":
		return true
	case "1-3":
		return days <= 3
	case "4-7":
		return days >= 4 && days <= 7
	case "8+":
		return days >= 8
	default:
		return true
	}
}

// FilterPackages narrows a catalog slice by duration bucket and category,
// preserving order.
func FilterPackages(pkgs []models.TravelPackage, daysBucket, category string) []models.TravelPackage {
	out := make([]models.TravelPackage, 0, len(pkgs))
	for _, p := range pkgs {
		if !MatchesDaysBucket(p.Duration, daysBucket) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Recommended picks up to three packages sharing the given category,
// excluding the current one, in catalog order. There is no ranking beyond
// category equality.
func Recommended(all []models.TravelPackage, currentID uint, category string) []models.TravelPackage {
	out := make([]models.TravelPackage, 0, recommendedLimit)
	for _, p := range all {
		if p.ID == currentID || p.Category != category {
			continue
		}
		out = append(out, p)
		if len(out) == recommendedLimit {
			break
		}
	}
	return out
}
