package seeders

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ziada-travel/models/catalog"
	"ziada-travel/utils"
)

// SeedCatalog upserts the launch packages and hotels. Records are keyed on
// slug so re-running the seeder refreshes details without duplicating rows.
func SeedCatalog(db *gorm.DB) {
	log.Printf("🔍 Seeding catalog packages and hotels...")

	packages := []catalog.Package{
		{
			Title:       "7-Day Maasai Mara Great Migration",
			Duration:    "7 Days / 6 Nights",
			Price:       decimal.NewFromInt(2450),
			Location:    "Maasai Mara, Kenya",
			Category:    "Safari",
			ImageURL:    "https://images.unsplash.com/photo-1516426122078-c23e76319801?auto=format&fit=crop&q=80&w=1200",
			Description: "Experience the world-renowned Great Migration in the heart of Kenya. Witness thousands of wildebeests and zebras crossing the Mara River, while predators lie in wait. This luxury safari combines high-octane wildlife action with world-class hospitality.",
			IsFeatured:  true,
			Active:      true,
			Features: []catalog.PackageFeature{
				{Label: "Luxury Tented Camp", SortOrder: 0},
				{Label: "Professional Guide", SortOrder: 1},
				{Label: "Daily Game Drives", SortOrder: 2},
				{Label: "Cultural Visit", SortOrder: 3},
			},
			Itinerary: []catalog.PackageItineraryDay{
				{DayNumber: 1, Title: "Arrival in Nairobi", Description: "Meet and greet at Jomo Kenyatta International Airport, transfer to your hotel for overnight stay.", SortOrder: 0},
				{DayNumber: 2, Title: "Flight to Maasai Mara", Description: "After breakfast, take a scenic flight to the Mara. Afternoon game drive begins.", SortOrder: 1},
				{DayNumber: 3, Title: "Full Day Game Drive", Description: "Explore the vast plains in search of the Big Five and witness the migration crossing.", SortOrder: 2},
				{DayNumber: 7, Title: "Departure", Description: "Morning game drive followed by a flight back to Nairobi for your international departure.", SortOrder: 3},
			},
		},
		{
			Title:       "5-Day Amboseli & Tsavo Adventure",
			Duration:    "5 Days / 4 Nights",
			Price:       decimal.NewFromInt(1850),
			Location:    "Amboseli, Kenya",
			Category:    "Safari",
			ImageURL:    "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?auto=format&fit=crop&q=80&w=1200",
			Description: "View the massive herds of elephants against the backdrop of Mount Kilimanjaro and explore the red soils of Tsavo. This journey takes you through two of Kenya's most iconic landscapes.",
			IsFeatured:  true,
			Active:      true,
			Features: []catalog.PackageFeature{
				{Label: "Kilimanjaro Views", SortOrder: 0},
				{Label: "Elephant Sanctuary", SortOrder: 1},
				{Label: "Bird Watching", SortOrder: 2},
				{Label: "Guided Walks", SortOrder: 3},
			},
			Itinerary: []catalog.PackageItineraryDay{
				{DayNumber: 1, Title: "Nairobi to Amboseli", Description: "Drive south through the Maasai country to Amboseli National Park. Afternoon game drive.", SortOrder: 0},
				{DayNumber: 2, Title: "Amboseli Exploration", Description: "Full day in Amboseli with views of Kilimanjaro. Visit the Observation Hill for panoramic views.", SortOrder: 1},
			},
		},
		{
			Title:       "Diani Beach Luxury Escape",
			Duration:    "4 Days / 3 Nights",
			Price:       decimal.NewFromInt(950),
			Location:    "Diani Beach, Kenya",
			Category:    "Beach",
			ImageURL:    "https://images.unsplash.com/photo-1533035353720-f1c6a75cd8ab?auto=format&fit=crop&q=80&w=1200",
			Description: "Relax on the pristine white sands of Diani Beach. Enjoy world-class water sports or simply soak in the Indian Ocean breeze in a private luxury villa.",
			IsFeatured:  true,
			Active:      true,
			Features: []catalog.PackageFeature{
				{Label: "Beachfront Resort", SortOrder: 0},
				{Label: "Scuba Diving", SortOrder: 1},
				{Label: "Sunset Cruise", SortOrder: 2},
				{Label: "Spa Treatments", SortOrder: 3},
			},
		},
		{
			Title:       "10-Day Great Rift Valley Expedition",
			Duration:    "10 Days / 9 Nights",
			Price:       decimal.NewFromInt(3200),
			Location:    "Rift Valley, Kenya",
			Category:    "Expedition",
			ImageURL:    "https://images.unsplash.com/photo-1523805009345-7448845a9e53?auto=format&fit=crop&q=80&w=1200",
			Description: "A comprehensive journey through the diverse landscapes of the Rift Valley, from Lake Nakuru to the shores of Lake Turkana. Discover hidden gems and ancient cultures.",
			Active:      true,
			Features: []catalog.PackageFeature{
				{Label: "Flamingo Watching", SortOrder: 0},
				{Label: "Geothermal Spas", SortOrder: 1},
				{Label: "Off-road Adventure", SortOrder: 2},
				{Label: "Indigenous Cultures", SortOrder: 3},
			},
		},
	}

	for i := range packages {
		pkg := &packages[i]
		pkg.Slug = utils.Slugify(pkg.Title, 220)

		var existing catalog.Package
		err := db.Where("slug = ?", pkg.Slug).First(&existing).Error
		if err == nil {
			pkg.ID = existing.ID
			// Replace children so the seed stays the source of truth for them.
			db.Where("package_id = ?", existing.ID).Delete(&catalog.PackageFeature{})
			db.Where("package_id = ?", existing.ID).Delete(&catalog.PackageItineraryDay{})
		} else if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Failed to check package %q: %v", pkg.Slug, err)
			continue
		}

		if err := db.Session(&gorm.Session{FullSaveAssociations: true}).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				UpdateAll: true,
			}).Save(pkg).Error; err != nil {
			log.Printf("❌ Failed to seed package %q: %v", pkg.Slug, err)
		}
	}

	hotels := []catalog.Hotel{
		{
			Name:          "Mara Serena Safari Lodge",
			Rating:        5,
			PricePerNight: decimal.NewFromInt(550),
			Location:      "Maasai Mara",
			ImageURL:      "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&q=80&w=800",
			Active:        true,
			Amenities: []catalog.HotelAmenity{
				{Label: "Pool", SortOrder: 0},
				{Label: "Spa", SortOrder: 1},
				{Label: "Restaurant", SortOrder: 2},
				{Label: "Safari View", SortOrder: 3},
			},
		},
		{
			Name:          "Hemingways Watamu",
			Rating:        5,
			PricePerNight: decimal.NewFromInt(400),
			Location:      "Watamu",
			ImageURL:      "https://images.unsplash.com/photo-1540518614846-7eded433c457?auto=format&fit=crop&q=80&w=800",
			Active:        true,
			Amenities: []catalog.HotelAmenity{
				{Label: "Beach Access", SortOrder: 0},
				{Label: "Gym", SortOrder: 1},
				{Label: "Bar", SortOrder: 2},
				{Label: "Water Sports", SortOrder: 3},
			},
		},
		{
			Name:          "The Sarova Stanley",
			Rating:        5,
			PricePerNight: decimal.NewFromInt(280),
			Location:      "Nairobi",
			ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&q=80&w=800",
			Active:        true,
			Amenities: []catalog.HotelAmenity{
				{Label: "Business Center", SortOrder: 0},
				{Label: "Rooftop Pool", SortOrder: 1},
				{Label: "Luxury Dining", SortOrder: 2},
			},
		},
	}

	for i := range hotels {
		hotel := &hotels[i]
		hotel.Slug = utils.Slugify(hotel.Name, 220)

		var existing catalog.Hotel
		err := db.Where("slug = ?", hotel.Slug).First(&existing).Error
		if err == nil {
			hotel.ID = existing.ID
			db.Where("hotel_id = ?", existing.ID).Delete(&catalog.HotelAmenity{})
		} else if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Failed to check hotel %q: %v", hotel.Slug, err)
			continue
		}

		if err := db.Session(&gorm.Session{FullSaveAssociations: true}).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				UpdateAll: true,
			}).Save(hotel).Error; err != nil {
			log.Printf("❌ Failed to seed hotel %q: %v", hotel.Slug, err)
		}
	}

	log.Printf("✅ Catalog seeding completed")
}
