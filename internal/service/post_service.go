// Package service implements the application's business logic on top of the
// repository layer. Services receive the acting user ID explicitly from the
// HTTP layer; there is no ambient request identity.
package service

import (
	"context"
	"errors"
	"sort"

	"community/internal/models"
	"community/internal/observability"
	"community/internal/repository"

	"gorm.io/gorm"
)

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	Content  string
	ImageURL string
}

type ListPostsInput struct {
	Page  int
	Limit int
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    string
	Content  string
	ImageURL string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

// getPost loads a post by ID, mapping the missing-row case to NOT_FOUND.
// The deleted flag is not checked here; each operation decides what it means.
func (s *PostService) getPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// GetPostDetail assembles the aggregated single-post view.
//
// Every call increments the stored view counter before the view is built, so
// the returned views_count already includes this read. Soft-deleted posts are
// served like any other. likes_count and views_count come from the stored
// counters; comments_count is the size of the loaded comment set.
func (s *PostService) GetPostDetail(ctx context.Context, postID, currentUserID uint) (*models.PostDetailView, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementViews(ctx, postID); err != nil {
		return nil, models.NewInternalError(err)
	}
	post.ViewsCount++
	observability.PostViews.Inc()

	author, err := s.userRepo.GetByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	// The repository returns newest-first; the detail view presents comments
	// in creation order, which for auto-incremented IDs is ID ascending.
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })

	commentViews := make([]models.CommentView, 0, len(comments))
	for _, cm := range comments {
		commentAuthor, err := s.userRepo.GetByID(ctx, cm.UserID)
		if err != nil {
			return nil, err
		}
		commentViews = append(commentViews, models.NewCommentView(cm, commentAuthor))
	}

	liked := false
	if currentUserID != 0 {
		liked, err = s.likeRepo.Exists(ctx, currentUserID, postID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	return &models.PostDetailView{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		ImageURL:      post.ImageURL,
		Author:        models.NewAuthorView(author),
		Liked:         liked,
		LikesCount:    post.LikesCount,
		ViewsCount:    post.ViewsCount,
		CommentsCount: len(commentViews),
		Comments:      commentViews,
		CreatedAt:     models.FormatViewTime(post.CreatedAt),
		UpdatedAt:     models.FormatViewTime(post.UpdatedAt),
	}, nil
}

// ListPosts returns one 1-indexed page of non-deleted posts, newest first.
// A page past the end yields an empty post list with accurate metadata.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*models.PostListView, error) {
	if in.Page <= 0 {
		return nil, models.NewValidationError("Page must be at least 1")
	}
	if in.Limit <= 0 {
		return nil, models.NewValidationError("Limit must be at least 1")
	}

	total, err := s.postRepo.CountActive(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	offset := (in.Page - 1) * in.Limit
	posts, err := s.postRepo.List(ctx, in.Limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	items := make([]models.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, models.PostListItem{
			ID:            p.ID,
			Title:         p.Title,
			Author:        models.NewAuthorView(&p.User),
			LikesCount:    p.LikesCount,
			ViewsCount:    p.ViewsCount,
			CommentsCount: p.CommentsCount,
			CreatedAt:     models.FormatViewTime(p.CreatedAt),
		})
	}

	return &models.PostListView{
		Posts: items,
		Meta:  models.NewPageMeta(in.Page, in.Limit, total),
	}, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	if len(in.Title) < 2 || len(in.Title) > 100 {
		return nil, models.NewValidationError("Title must be between 2 and 100 characters")
	}
	if len(in.Content) < 10 || len(in.Content) > 10000 {
		return nil, models.NewValidationError("Content must be between 10 and 10000 characters")
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// UpdatePost replaces the provided fields and refreshes updated_at.
// Empty fields keep their current values; lengths are not re-validated here.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.getPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// DeletePost marks the post deleted. Comments and likes stay in place; the
// list query alone filters on the flag.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.getPost(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	if err := s.postRepo.SoftDelete(ctx, in.PostID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
