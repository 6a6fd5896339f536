// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"community/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for post likes.
type LikeRepository interface {
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	Create(ctx context.Context, userID, postID uint) error
	Delete(ctx context.Context, userID, postID uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Create(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).Create(&models.Like{UserID: userID, PostID: postID}).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
}
