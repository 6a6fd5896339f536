package service

import (
	"context"
	"errors"
	"testing"

	"community/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Function-field stubs let each test override exactly the repository calls it
// cares about. Unset fields fall back to conservative defaults.

type postRepoStub struct {
	create            func(post *models.Post) error
	getByID           func(id uint) (*models.Post, error)
	list              func(limit, offset int) ([]*models.Post, error)
	countActive       func() (int64, error)
	update            func(post *models.Post) error
	softDelete        func(id uint) error
	incrementViews    func(id uint) error
	incrementLikes    func(id uint) error
	decrementLikes    func(id uint) error
	incrementComments func(id uint) error
	decrementComments func(id uint) error
}

func (s *postRepoStub) Create(_ context.Context, post *models.Post) error {
	if s.create != nil {
		return s.create(post)
	}
	return nil
}

func (s *postRepoStub) GetByID(_ context.Context, id uint) (*models.Post, error) {
	if s.getByID != nil {
		return s.getByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *postRepoStub) List(_ context.Context, limit, offset int) ([]*models.Post, error) {
	if s.list != nil {
		return s.list(limit, offset)
	}
	return nil, nil
}

func (s *postRepoStub) CountActive(_ context.Context) (int64, error) {
	if s.countActive != nil {
		return s.countActive()
	}
	return 0, nil
}

func (s *postRepoStub) Update(_ context.Context, post *models.Post) error {
	if s.update != nil {
		return s.update(post)
	}
	return nil
}

func (s *postRepoStub) SoftDelete(_ context.Context, id uint) error {
	if s.softDelete != nil {
		return s.softDelete(id)
	}
	return nil
}

func (s *postRepoStub) IncrementViews(_ context.Context, id uint) error {
	if s.incrementViews != nil {
		return s.incrementViews(id)
	}
	return nil
}

func (s *postRepoStub) IncrementLikes(_ context.Context, id uint) error {
	if s.incrementLikes != nil {
		return s.incrementLikes(id)
	}
	return nil
}

func (s *postRepoStub) DecrementLikes(_ context.Context, id uint) error {
	if s.decrementLikes != nil {
		return s.decrementLikes(id)
	}
	return nil
}

func (s *postRepoStub) IncrementComments(_ context.Context, id uint) error {
	if s.incrementComments != nil {
		return s.incrementComments(id)
	}
	return nil
}

func (s *postRepoStub) DecrementComments(_ context.Context, id uint) error {
	if s.decrementComments != nil {
		return s.decrementComments(id)
	}
	return nil
}

type commentRepoStub struct {
	create     func(comment *models.Comment) error
	getByID    func(id uint) (*models.Comment, error)
	listByPost func(postID uint) ([]*models.Comment, error)
	update     func(comment *models.Comment) error
	delete     func(id uint) error
}

func (s *commentRepoStub) Create(_ context.Context, comment *models.Comment) error {
	if s.create != nil {
		return s.create(comment)
	}
	return nil
}

func (s *commentRepoStub) GetByID(_ context.Context, id uint) (*models.Comment, error) {
	if s.getByID != nil {
		return s.getByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *commentRepoStub) ListByPost(_ context.Context, postID uint) ([]*models.Comment, error) {
	if s.listByPost != nil {
		return s.listByPost(postID)
	}
	return nil, nil
}

func (s *commentRepoStub) Update(_ context.Context, comment *models.Comment) error {
	if s.update != nil {
		return s.update(comment)
	}
	return nil
}

func (s *commentRepoStub) Delete(_ context.Context, id uint) error {
	if s.delete != nil {
		return s.delete(id)
	}
	return nil
}

type likeRepoStub struct {
	exists func(userID, postID uint) (bool, error)
	create func(userID, postID uint) error
	delete func(userID, postID uint) error
}

func (s *likeRepoStub) Exists(_ context.Context, userID, postID uint) (bool, error) {
	if s.exists != nil {
		return s.exists(userID, postID)
	}
	return false, nil
}

func (s *likeRepoStub) Create(_ context.Context, userID, postID uint) error {
	if s.create != nil {
		return s.create(userID, postID)
	}
	return nil
}

func (s *likeRepoStub) Delete(_ context.Context, userID, postID uint) error {
	if s.delete != nil {
		return s.delete(userID, postID)
	}
	return nil
}

type userRepoStub struct {
	getByID       func(id uint) (*models.User, error)
	getByEmail    func(email string) (*models.User, error)
	getByNickname func(nickname string) (*models.User, error)
	create        func(user *models.User) error
	update        func(user *models.User) error
}

func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	if s.getByID != nil {
		return s.getByID(id)
	}
	return &models.User{ID: id, Nickname: "someone"}, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByNickname(_ context.Context, nickname string) (*models.User, error) {
	if s.getByNickname != nil {
		return s.getByNickname(nickname)
	}
	return nil, nil
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	if s.create != nil {
		return s.create(user)
	}
	return nil
}

func (s *userRepoStub) Update(_ context.Context, user *models.User) error {
	if s.update != nil {
		return s.update(user)
	}
	return nil
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "UNAUTHORIZED")
}
