package models

import (
	"time"
)

// ViewTimeLayout is the wire format for timestamps in aggregated views:
// UTC with millisecond precision and a literal Z suffix.
const ViewTimeLayout = "2006-01-02T15:04:05.000Z"

// FormatViewTime renders t in the shared view timestamp format.
func FormatViewTime(t time.Time) string {
	return t.UTC().Format(ViewTimeLayout)
}

// AuthorView is the embedded author summary on detail and list views.
type AuthorView struct {
	ID              uint   `json:"id"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

// NewAuthorView builds an AuthorView from a user.
func NewAuthorView(u *User) AuthorView {
	return AuthorView{
		ID:              u.ID,
		Nickname:        u.Nickname,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// CommentView is a single comment as rendered inside the post detail view.
type CommentView struct {
	ID        uint       `json:"id"`
	Content   string     `json:"content"`
	Author    AuthorView `json:"author"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// NewCommentView builds a CommentView from a comment and its resolved author.
func NewCommentView(c *Comment, author *User) CommentView {
	return CommentView{
		ID:        c.ID,
		Content:   c.Content,
		Author:    NewAuthorView(author),
		CreatedAt: FormatViewTime(c.CreatedAt),
		UpdatedAt: FormatViewTime(c.UpdatedAt),
	}
}

// PostDetailView is the aggregated single-post response.
//
// LikesCount and ViewsCount come from the stored counters on the post row;
// CommentsCount is the length of the loaded comment set. The two can diverge
// under concurrent writes, which the read path tolerates.
type PostDetailView struct {
	ID            uint          `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	ImageURL      string        `json:"image_url"`
	Author        AuthorView    `json:"author"`
	Liked         bool          `json:"liked"`
	LikesCount    int           `json:"likes_count"`
	ViewsCount    int           `json:"views_count"`
	CommentsCount int           `json:"comments_count"`
	Comments      []CommentView `json:"comments"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// PostListItem is a single entry in the paginated post list.
// Counts here are live subquery results, not the stored counters.
type PostListItem struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Author        AuthorView `json:"author"`
	LikesCount    int        `json:"likes_count"`
	ViewsCount    int        `json:"views_count"`
	CommentsCount int        `json:"comments_count"`
	CreatedAt     string     `json:"created_at"`
}

// PageMeta describes the pagination state of a list response.
type PageMeta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
}

// NewPageMeta computes pagination metadata for a 1-indexed page.
func NewPageMeta(page, limit int, total int64) PageMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageMeta{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
	}
}

// PostListView is the paginated post list response.
type PostListView struct {
	Posts []PostListItem `json:"posts"`
	Meta  PageMeta       `json:"meta"`
}
