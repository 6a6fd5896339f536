package models

import (
	"time"
)

// Like represents a user's like on a post.
// The (UserID, PostID) pair is the composite primary key, so a user can hold
// at most one like per post. Likes are hard-deleted on removal.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
