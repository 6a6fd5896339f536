package models

import (
	"time"
)

// Post represents a post in the community application.
//
// LikesCount, ViewsCount and CommentsCount are persisted counters maintained by
// the write paths. The list query overrides likes_count and comments_count with
// live subquery aliases of the same name, so list responses always reflect the
// actual rows while the detail view reports the stored counters.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`

	LikesCount    int `gorm:"not null;default:0" json:"likes_count"`
	ViewsCount    int `gorm:"not null;default:0" json:"views_count"`
	CommentsCount int `gorm:"not null;default:0" json:"comments_count"`

	// IsDeleted is an ordinary column, not a gorm soft-delete: deleted posts
	// stay reachable by ID (the detail view and unlike still work on them) and
	// are only excluded from the list query.
	IsDeleted bool `gorm:"not null;default:false;index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
