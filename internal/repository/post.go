// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"community/internal/models"
	"community/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	SoftDelete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) error
	DecrementLikes(ctx context.Context, id uint) error
	IncrementComments(ctx context.Context, id uint) error
	DecrementComments(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID loads a post by primary key. The deleted flag is NOT filtered here:
// detail reads and unlike must still reach soft-deleted posts, so callers
// decide what a set flag means.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var post models.Post
	if err := readDB(r.db).WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns non-deleted posts ordered newest first. likes_count and
// comments_count are overridden with live correlated subqueries: the aliases
// shadow the stored counter columns of the same name, so list rows always
// reflect the actual comment and like rows.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()

	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	var posts []*models.Post
	err := readDB(r.db).WithContext(ctx).
		Select(selectQuery).
		Preload("User").
		Where("posts.is_deleted = ?", false).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Post{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// SoftDelete flips the deleted flag. Comments and likes are left untouched.
func (r *postRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// Counter updates use single atomic UPDATE statements so concurrent writers
// never lose increments. UpdateColumn skips the updated_at hook: a view or a
// like is not an edit of the post.

func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *postRepository) IncrementLikes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}

// DecrementLikes floors the counter at zero.
func (r *postRepository) DecrementLikes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END")).Error
}

func (r *postRepository) IncrementComments(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
}

// DecrementComments is unclamped, unlike DecrementLikes.
func (r *postRepository) DecrementComments(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("comments_count", gorm.Expr("comments_count - 1")).Error
}
