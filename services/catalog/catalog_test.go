package catalog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogModel "ziada-travel/models/catalog"
)

func pkg(title, location string, price int64, featured bool) catalogModel.Package {
	return catalogModel.Package{
		Title:      title,
		Location:   location,
		Price:      decimal.NewFromInt(price),
		IsFeatured: featured,
		Active:     true,
	}
}

func TestGroupDestinationsStartingFrom(t *testing.T) {
	// Input is pre-sorted by price ascending, as ListDestinations loads it.
	packages := []catalogModel.Package{
		pkg("Budget Mara", "Maasai Mara", 900, false),
		pkg("Classic Mara", "Maasai Mara", 1200, true),
		pkg("Luxury Mara", "Maasai Mara", 1500, true),
	}

	destinations := GroupDestinations(packages)
	if len(destinations) != 1 {
		t.Fatalf("got %d destinations, want 1", len(destinations))
	}

	dest := destinations[0]
	if dest.Location != "Maasai Mara" {
		t.Errorf("location = %q", dest.Location)
	}
	if dest.PackageCount != 3 {
		t.Errorf("package count = %d, want 3", dest.PackageCount)
	}
	// A cheaper non-featured package never sets the starting price.
	if dest.StartingFrom == nil || !dest.StartingFrom.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("starting from = %v, want 1200", dest.StartingFrom)
	}
	if len(dest.Packages) != 2 {
		t.Fatalf("got %d representatives, want 2", len(dest.Packages))
	}
	if dest.Packages[0].Title != "Budget Mara" || dest.Packages[1].Title != "Classic Mara" {
		t.Errorf("wrong representatives: %q, %q", dest.Packages[0].Title, dest.Packages[1].Title)
	}
}

func TestGroupDestinationsNoFeaturedPrice(t *testing.T) {
	packages := []catalogModel.Package{
		pkg("Hidden Gem", "Lamu", 700, false),
		{Title: "Free Featured", Location: "Lamu", Price: decimal.Zero, IsFeatured: true, Active: true},
	}

	destinations := GroupDestinations(packages)
	if len(destinations) != 1 {
		t.Fatalf("got %d destinations, want 1", len(destinations))
	}
	if destinations[0].StartingFrom != nil {
		t.Errorf("starting from = %v, want nil", destinations[0].StartingFrom)
	}
}

func TestGroupDestinationsSkipsBlankLocationAndSorts(t *testing.T) {
	packages := []catalogModel.Package{
		pkg("No Home", "", 500, true),
		pkg("Watamu Escape", "Watamu", 800, true),
		pkg("Amboseli Trek", "Amboseli", 900, true),
	}

	destinations := GroupDestinations(packages)
	if len(destinations) != 2 {
		t.Fatalf("got %d destinations, want 2", len(destinations))
	}
	if destinations[0].Location != "Amboseli" || destinations[1].Location != "Watamu" {
		t.Errorf("locations not alphabetical: %q, %q", destinations[0].Location, destinations[1].Location)
	}
}

func TestGetPackageNotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	mock.ExpectQuery(`SELECT (.+) FROM "packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := NewService(db)
	if _, err := service.GetPackage("missing"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
