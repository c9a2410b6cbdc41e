package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ziada-travel/models/catalog"
)

// ErrNotFound is returned when a slug matches no active record.
var ErrNotFound = errors.New("catalog: not found")

// Service is the read model over the public catalog tables. Inactive records
// never leave this package.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// ListPackages returns all active packages, newest first, with their feature
// and itinerary children in display order.
func (s *Service) ListPackages() ([]catalog.Package, error) {
	var packages []catalog.Package
	err := s.DB.
		Where("active = ?", true).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, day_number ASC, id ASC")
		}).
		Order("created_at DESC").
		Find(&packages).Error
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	return packages, nil
}

// GetPackage returns one active package by slug.
func (s *Service) GetPackage(slug string) (*catalog.Package, error) {
	var pkg catalog.Package
	err := s.DB.
		Where("slug = ? AND active = ?", slug, true).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, day_number ASC, id ASC")
		}).
		First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading package %q: %w", slug, err)
	}
	return &pkg, nil
}

// ListHotels returns all active hotels, newest first, with amenities in
// display order.
func (s *Service) ListHotels() ([]catalog.Hotel, error) {
	var hotels []catalog.Hotel
	err := s.DB.
		Where("active = ?", true).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("created_at DESC").
		Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("listing hotels: %w", err)
	}
	return hotels, nil
}

// GetHotel returns one active hotel by slug.
func (s *Service) GetHotel(slug string) (*catalog.Hotel, error) {
	var hotel catalog.Hotel
	err := s.DB.
		Where("slug = ? AND active = ?", slug, true).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading hotel %q: %w", slug, err)
	}
	return &hotel, nil
}

// Destination is one location aggregated from the active packages.
type Destination struct {
	Location     string            `json:"location"`
	PackageCount int               `json:"package_count"`
	StartingFrom *decimal.Decimal  `json:"starting_from,omitempty"`
	Packages     []catalog.Package `json:"packages"`
}

// ListDestinations groups active packages by location and derives the
// destination cards shown on the destinations page.
func (s *Service) ListDestinations() ([]Destination, error) {
	var packages []catalog.Package
	err := s.DB.
		Where("active = ?", true).
		Order("price ASC, created_at DESC").
		Find(&packages).Error
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}
	return GroupDestinations(packages), nil
}

// GroupDestinations builds destination summaries from packages already sorted
// by price ascending then created_at descending. Packages without a location
// are skipped. StartingFrom is the cheapest positive price among the
// location's featured packages; nil when no featured package has a price.
// Each destination keeps at most two representative packages.
func GroupDestinations(packages []catalog.Package) []Destination {
	const maxRepresentatives = 2

	byLocation := map[string]*Destination{}
	var order []string

	for i := range packages {
		pkg := packages[i]
		if pkg.Location == "" {
			continue
		}

		dest, ok := byLocation[pkg.Location]
		if !ok {
			dest = &Destination{Location: pkg.Location}
			byLocation[pkg.Location] = dest
			order = append(order, pkg.Location)
		}

		dest.PackageCount++
		if len(dest.Packages) < maxRepresentatives {
			dest.Packages = append(dest.Packages, pkg)
		}
		if pkg.IsFeatured && pkg.Price.IsPositive() {
			if dest.StartingFrom == nil || pkg.Price.LessThan(*dest.StartingFrom) {
				price := pkg.Price
				dest.StartingFrom = &price
			}
		}
	}

	sort.Strings(order)
	destinations := make([]Destination, 0, len(order))
	for _, location := range order {
		destinations = append(destinations, *byLocation[location])
	}
	return destinations
}
