package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hotel represents a partner hotel listed on the public catalog.
type Hotel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	Slug          string          `gorm:"type:varchar(220);not null;unique" json:"slug"`
	Rating        int             `gorm:"type:int;default:0" json:"rating"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price_per_night"`
	Location      string          `gorm:"type:varchar(150)" json:"location"`
	ImageURL      string          `gorm:"type:varchar(2048)" json:"image_url"`
	Active        bool            `gorm:"type:bool;default:true" json:"active"`

	Amenities []HotelAmenity `gorm:"foreignKey:HotelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"amenities"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// HotelAmenity is one amenity bullet of a hotel. Ordered by (sort_order, id).
type HotelAmenity struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID   uint   `gorm:"not null;index" json:"hotel_id"`
	Label     string `gorm:"type:varchar(255);not null" json:"label"`
	SortOrder int    `gorm:"type:int;default:0" json:"sort_order"`
}
