package service

import (
	"context"
	"errors"

	"community/internal/models"
	"community/internal/observability"
	"community/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// AddLike records a like and bumps the post's stored counter. Liking an
// already-liked post is a no-op, so the counter moves at most once per
// (user, post) pair. Soft-deleted posts cannot gain likes.
func (s *LikeService) AddLike(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}
	if post.IsDeleted {
		return models.NewNotFoundError("Post", postID)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	exists, err := s.likeRepo.Exists(ctx, userID, postID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if exists {
		observability.LikeOperations.WithLabelValues("noop").Inc()
		return nil
	}

	if err := s.likeRepo.Create(ctx, userID, postID); err != nil {
		return models.NewInternalError(err)
	}
	if err := s.postRepo.IncrementLikes(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	observability.LikeOperations.WithLabelValues("added").Inc()
	return nil
}

// RemoveLike deletes the like row and decrements the stored counter, which
// floors at zero. Unliking works on soft-deleted posts so users can withdraw
// likes from content that is gone. Removing a like that was never added is
// NOT_FOUND.
func (s *LikeService) RemoveLike(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}

	exists, err := s.likeRepo.Exists(ctx, userID, postID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError("Like", postID)
	}

	if err := s.likeRepo.Delete(ctx, userID, postID); err != nil {
		return models.NewInternalError(err)
	}
	if err := s.postRepo.DecrementLikes(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	observability.LikeOperations.WithLabelValues("removed").Inc()
	return nil
}
