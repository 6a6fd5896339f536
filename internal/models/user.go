// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
// IsDeleted is a plain flag rather than a gorm soft-delete column: deactivated
// accounts must still resolve as authors on existing posts and comments.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	Nickname        string    `gorm:"unique;not null" json:"nickname"`
	ProfileImageURL string    `json:"profile_image_url"`
	IsDeleted       bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
