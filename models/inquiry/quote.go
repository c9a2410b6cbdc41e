package inquiry

import (
	"time"

	"github.com/shopspring/decimal"

	"ziada-travel/models/catalog"
)

// PackageQuoteInquiry is a quote request for a specific package. The package
// reference is best-effort (SET NULL on deletion); the Package* snapshot fields
// are copied at submission time so the inquiry stays readable after the package
// changes or disappears.
type PackageQuoteInquiry struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	PackageID *uint            `gorm:"index" json:"package_id,omitempty"`
	Package   *catalog.Package `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"package,omitempty"`

	PackageTitle    string           `gorm:"type:varchar(200);not null" json:"package_title"`
	PackageSlug     string           `gorm:"type:varchar(220)" json:"package_slug"`
	PackageLocation string           `gorm:"type:varchar(150)" json:"package_location"`
	PackageDuration string           `gorm:"type:varchar(100)" json:"package_duration"`
	PackagePrice    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"package_price,omitempty"`

	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`

	NumberOfTravelers uint        `gorm:"type:bigint;default:1" json:"number_of_travelers"`
	TravelDate        *time.Time  `gorm:"type:date" json:"travel_date,omitempty"`
	BudgetRange       BudgetRange `gorm:"type:varchar(120)" json:"budget_range,omitempty"`
	SpecialRequests   string      `gorm:"type:text" json:"special_requests,omitempty"`

	IsResolved bool      `gorm:"type:bool;default:false" json:"is_resolved"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
