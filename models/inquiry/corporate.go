package inquiry

import (
	"time"
)

// CorporateInquiry is a corporate travel lead submitted from the corporates page.
type CorporateInquiry struct {
	ID               uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName         string      `gorm:"type:varchar(100);not null" json:"full_name"`
	Email            string      `gorm:"type:varchar(255);not null" json:"email"`
	Phone            string      `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CompanyName      string      `gorm:"type:varchar(200);not null" json:"company_name"`
	RoleTitle        string      `gorm:"type:varchar(120)" json:"role_title,omitempty"`
	MonthlyTravelers *uint       `gorm:"type:bigint" json:"monthly_travelers,omitempty"`
	ServiceNeeds     ServiceNeed `gorm:"type:varchar(120);not null" json:"service_needs"`
	Message          string      `gorm:"type:text;not null" json:"message"`
	IsResolved       bool        `gorm:"type:bool;default:false" json:"is_resolved"`
	CreatedAt        time.Time   `gorm:"autoCreateTime;index" json:"created_at"`
}
