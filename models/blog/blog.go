package blog

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"ziada-travel/models/user"
)

// PostStatus is the publish state of a blog post.
type PostStatus string

const (
	PostStatusInReview  PostStatus = "in_review"
	PostStatusPublished PostStatus = "published"
	PostStatusDraft     PostStatus = "draft"
)

func (ps PostStatus) String() string {
	return string(ps)
}

func (ps PostStatus) IsValid() bool {
	switch ps {
	case PostStatusInReview, PostStatusPublished, PostStatusDraft:
		return true
	default:
		return false
	}
}

// Category groups blog posts. Ordered by title on listings.
type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(100);not null;unique" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Active      bool      `gorm:"type:bool;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Post is a blog article. PID is a short public identifier that survives
// title/slug changes and backs the /blog/p/:pid/ redirect.
type Post struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID *uint      `gorm:"index" json:"user_id,omitempty"`
	User   *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`

	ImageURL string `gorm:"type:varchar(2048)" json:"image_url"`
	Title    string `gorm:"type:varchar(1000);not null" json:"title"`
	Slug     string `gorm:"type:varchar(1000);not null;unique" json:"slug"`
	Excerpt  string `gorm:"type:text" json:"excerpt"`
	Content  string `gorm:"type:text;not null" json:"content"`

	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`

	Tags     StringSlice `gorm:"type:json" json:"tags"`
	Status   PostStatus  `gorm:"type:varchar(100);not null;default:in_review" json:"status"`
	Featured bool        `gorm:"type:bool;default:false" json:"featured"`
	Trending bool        `gorm:"type:bool;default:false" json:"trending"`
	Views    uint        `gorm:"type:bigint;default:0" json:"views"`
	PID      string      `gorm:"column:pid;type:varchar(25);not null;unique" json:"pid"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StringSlice stores a set of strings as a JSON column.
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
