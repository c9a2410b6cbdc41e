package pages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziada-travel/logger"
	catalogService "ziada-travel/services/catalog"
)

// PagesController serves the public marketing pages backed by the catalog
// read model.
type PagesController struct {
	Catalog *catalogService.Service
	Logger  *logger.AsyncLogger
}

// NewPagesController creates a new pages controller
func NewPagesController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *PagesController {
	return &PagesController{
		Catalog: catalogService.NewService(db),
		Logger:  asyncLogger,
	}
}

// Home renders the landing page with featured packages and hotels.
func (pc *PagesController) Home(c *fiber.Ctx) error {
	packages, err := pc.Catalog.ListPackages()
	if err != nil {
		logger.Error("Failed to load packages for home page", err)
		packages = nil
	}
	hotels, err := pc.Catalog.ListHotels()
	if err != nil {
		logger.Error("Failed to load hotels for home page", err)
		hotels = nil
	}

	featured := packages
	if len(featured) > 6 {
		featured = featured[:6]
	}
	if len(hotels) > 4 {
		hotels = hotels[:4]
	}

	return c.Render("index", fiber.Map{
		"title":    "Ziada Tours and Travel",
		"packages": featured,
		"hotels":   hotels,
	})
}

// Packages renders the full package catalog.
func (pc *PagesController) Packages(c *fiber.Ctx) error {
	packages, err := pc.Catalog.ListPackages()
	if err != nil {
		logger.Error("Failed to load packages", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("packages", fiber.Map{
		"title":    "Travel Packages",
		"packages": packages,
	})
}

// PackageDetail renders one package by slug.
func (pc *PagesController) PackageDetail(c *fiber.Ctx) error {
	pkg, err := pc.Catalog.GetPackage(c.Params("slug"))
	if err != nil {
		if errors.Is(err, catalogService.ErrNotFound) {
			return fiber.ErrNotFound
		}
		logger.Error("Failed to load package", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("package_detail", fiber.Map{
		"title":   pkg.Title,
		"package": pkg,
	})
}

// Hotels renders the hotel catalog.
func (pc *PagesController) Hotels(c *fiber.Ctx) error {
	hotels, err := pc.Catalog.ListHotels()
	if err != nil {
		logger.Error("Failed to load hotels", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("hotels", fiber.Map{
		"title":  "Hotels",
		"hotels": hotels,
	})
}

// HotelDetail renders one hotel by slug.
func (pc *PagesController) HotelDetail(c *fiber.Ctx) error {
	hotel, err := pc.Catalog.GetHotel(c.Params("slug"))
	if err != nil {
		if errors.Is(err, catalogService.ErrNotFound) {
			return fiber.ErrNotFound
		}
		logger.Error("Failed to load hotel", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("hotel_detail", fiber.Map{
		"title": hotel.Name,
		"hotel": hotel,
	})
}

// Destinations renders the destination cards aggregated from active packages.
func (pc *PagesController) Destinations(c *fiber.Ctx) error {
	destinations, err := pc.Catalog.ListDestinations()
	if err != nil {
		logger.Error("Failed to load destinations", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("destinations", fiber.Map{
		"title":        "Destinations",
		"destinations": destinations,
	})
}

// About renders the static about page.
func (pc *PagesController) About(c *fiber.Ctx) error {
	return c.Render("about", fiber.Map{
		"title": "About Us",
	})
}
