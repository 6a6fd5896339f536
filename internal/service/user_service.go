package service

import (
	"context"

	"community/internal/models"
	"community/internal/repository"
	"community/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID          uint
	Nickname        string
	ProfileImageURL string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile changes nickname and profile image. Empty fields keep their
// current values. Nickname changes re-run the signup rules and must stay
// unique.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Nickname != "" && in.Nickname != user.Nickname {
		if err := validation.ValidateNickname(in.Nickname); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByNickname(ctx, in.Nickname)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != in.UserID {
			return nil, models.NewValidationError("Nickname already in use")
		}
		user.Nickname = in.Nickname
	}
	if in.ProfileImageURL != "" {
		user.ProfileImageURL = in.ProfileImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateAccount flips the deleted flag. The row stays so the user's posts
// and comments keep a resolvable author; login rejects deactivated accounts.
func (s *UserService) DeactivateAccount(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsDeleted = true
	return s.userRepo.Update(ctx, user)
}
