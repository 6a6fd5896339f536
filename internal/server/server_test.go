package server

import (
	"testing"

	"community/internal/config"
	"community/internal/database"
	"community/internal/models"
	"community/internal/repository"
	"community/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server against an in-memory sqlite database with the
// full schema migrated and all repositories and services wired.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	s := &Server{
		config: &config.Config{
			JWTSecret: "handler-test-secret-key",
			UploadDir: t.TempDir(),
		},
		db:          db,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
	s.postService = service.NewPostService(postRepo, commentRepo, likeRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo, userRepo)
	s.likeService = service.NewLikeService(likeRepo, postRepo, userRepo)
	s.userService = service.NewUserService(userRepo)

	return s, db
}

// newAuthedApp returns a fiber app whose requests all act as the given user,
// bypassing JWT parsing.
func newAuthedApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func createTestUser(t *testing.T, db *gorm.DB, nickname string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    nickname + "@example.com",
		Password: "pw",
		Nickname: nickname,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", nickname, err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:   title,
		Content: "content of " + title,
		UserID:  userID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}
