package inquiry

import (
	"time"
)

// ContactInquiry is a general contact form submission. Rows are immutable after
// creation except IsResolved, which staff flip from the admin interface.
type ContactInquiry struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName       string         `gorm:"type:varchar(100);not null" json:"full_name"`
	Email          string         `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Company        string         `gorm:"type:varchar(100)" json:"company,omitempty"`
	Subject        ContactSubject `gorm:"type:varchar(200);not null" json:"subject"`
	Message        string         `gorm:"type:text;not null" json:"message"`
	PrivacyConsent bool           `gorm:"type:bool;default:false" json:"privacy_consent"`
	IsResolved     bool           `gorm:"type:bool;default:false" json:"is_resolved"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}
