// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"community/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedPassword is the shared plaintext password for all seeded accounts.
const seedPassword = "SeedPass12!"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	now := time.Now().UnixNano()
	gofakeit.Seed(now)
	return &Factory{db: db, r: rand.New(rand.NewSource(now))}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    gofakeit.Email(),
		Password: string(hash),
		// Nicknames are capped at 10 characters, so a word plus two digits.
		Nickname:        fmt.Sprintf("%.8s%d", gofakeit.Word(), gofakeit.Number(10, 99)),
		ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a post for the given user with a
// realistic created_at spread over the past 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:    gofakeit.Sentence(5),
		Content:  gofakeit.Paragraph(1, 3, 5, "\n"),
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		UserID:   user.ID,
	}

	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	post.UpdatedAt = post.CreatedAt

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment and keeps the post's stored counter in
// step, the same way the write path does.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(f.r.Intn(12) + 3),
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like and bumps the post's stored counter. Duplicate
// (user, post) pairs are skipped silently.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	var count int64
	if err := f.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error; err != nil {
		return err
	}
	return f.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}
