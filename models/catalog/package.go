package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package represents a curated travel package shown on the public catalog.
type Package struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string          `gorm:"type:varchar(220);not null;unique" json:"slug"`
	Duration    string          `gorm:"type:varchar(100)" json:"duration"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	Location    string          `gorm:"type:varchar(150)" json:"location"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	ImageURL    string          `gorm:"type:varchar(2048)" json:"image_url"`
	Description string          `gorm:"type:text" json:"description"`
	IsFeatured  bool            `gorm:"type:bool;default:false" json:"is_featured"`
	Active      bool            `gorm:"type:bool;default:true" json:"active"`

	Features  []PackageFeature      `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"features"`
	Itinerary []PackageItineraryDay `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"itinerary"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PackageFeature is one highlight bullet of a package. Ordered by (sort_order, id).
type PackageFeature struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PackageID uint   `gorm:"not null;index" json:"package_id"`
	Label     string `gorm:"type:varchar(255);not null" json:"label"`
	SortOrder int    `gorm:"type:int;default:0" json:"sort_order"`
}

// PackageItineraryDay is one day of a package itinerary.
// Ordered by (sort_order, day_number, id).
type PackageItineraryDay struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PackageID   uint   `gorm:"not null;index" json:"package_id"`
	DayNumber   int    `gorm:"type:int;not null" json:"day_number"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Inclusions  string `gorm:"type:text" json:"inclusions"`
	Exclusions  string `gorm:"type:text" json:"exclusions"`
	SortOrder   int    `gorm:"type:int;default:0" json:"sort_order"`
}
