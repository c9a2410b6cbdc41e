package inquiry

import (
	"time"
)

// MICEInquiry is a meetings/incentives/conferences/events lead.
type MICEInquiry struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName   string    `gorm:"type:varchar(200);not null" json:"company_name"`
	ContactPerson string    `gorm:"type:varchar(100);not null" json:"contact_person"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber   string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	EventType     string    `gorm:"type:varchar(100);not null" json:"event_type"`
	Attendees     uint      `gorm:"type:bigint;not null" json:"attendees"`
	EventDetails  string    `gorm:"type:text;not null" json:"event_details"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// StudentTravelInquiry is a school or university group travel lead.
type StudentTravelInquiry struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SchoolName       string    `gorm:"type:varchar(200);not null" json:"school_name"`
	ContactPerson    string    `gorm:"type:varchar(100);not null" json:"contact_person"`
	Email            string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber      string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	ProgramStage     string    `gorm:"type:varchar(100);not null" json:"program_stage"`
	NumberOfStudents uint      `gorm:"type:bigint;not null" json:"number_of_students"`
	TravelDetails    string    `gorm:"type:text;not null" json:"travel_details"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// NGOTravelInquiry is an NGO or humanitarian organization travel lead.
type NGOTravelInquiry struct {
	ID                         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationName           string    `gorm:"type:varchar(200);not null" json:"organization_name"`
	ContactPerson              string    `gorm:"type:varchar(100);not null" json:"contact_person"`
	Email                      string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber                string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	OrganizationType           string    `gorm:"type:varchar(100);not null" json:"organization_type"`
	TravelPurpose              string    `gorm:"type:text;not null" json:"travel_purpose"`
	NumberOfTravelers          uint      `gorm:"type:bigint;not null" json:"number_of_travelers"`
	TravelDetails              string    `gorm:"type:text;not null" json:"travel_details"`
	SustainabilityRequirements bool      `gorm:"type:bool;default:false" json:"sustainability_requirements"`
	CreatedAt                  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
