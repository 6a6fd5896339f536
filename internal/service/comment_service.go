package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"community/internal/models"
	"community/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 500

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *CommentService) getComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLength {
		return models.NewValidationError("Comment must be at most 500 characters")
	}
	return nil
}

// CreateComment adds a comment to a live post and bumps the post's stored
// comment counter. Soft-deleted posts reject new comments.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, models.NewInternalError(err)
	}
	if post.IsDeleted {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := s.postRepo.IncrementComments(ctx, in.PostID); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// ListComments returns a post's comments in creation order with resolved
// authors. Soft-deleted posts still serve their comments, matching the
// detail view.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })

	views := make([]models.CommentView, 0, len(comments))
	for _, cm := range comments {
		author, err := s.userRepo.GetByID(ctx, cm.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.NewCommentView(cm, author))
	}
	return views, nil
}

// UpdateComment rewrites a comment's content. Only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.getComment(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}

	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// DeleteComment removes the row and decrements the post's stored comment
// counter. Only the author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.getComment(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if comment.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return models.NewInternalError(err)
	}

	if err := s.postRepo.DecrementComments(ctx, comment.PostID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
