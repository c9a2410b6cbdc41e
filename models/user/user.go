package user

import (
	"time"
)

// User is a staff account. Staff manage content and resolve inquiries through
// the admin interface; the public site only references them as post authors.
type User struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string  `gorm:"type:varchar(255);not null;unique" json:"username"`
	FullName string  `gorm:"type:varchar(255)" json:"full_name"`
	Email    *string `gorm:"type:varchar(255);unique" json:"email,omitempty"`
	IsStaff  bool    `gorm:"type:bool;default:true" json:"is_staff"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
