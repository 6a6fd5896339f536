package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"community/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestCreateCommentFlow(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")
	post := createTestPost(t, db, author.ID, "commented post")

	app := newAuthedApp(commenter.ID)
	app.Post("/posts/:id/comments", s.CreateComment)

	url := fmt.Sprintf("/posts/%d/comments", post.ID)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(`{"content":"nice one"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created models.Comment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode comment: %v", err)
	}
	_ = resp.Body.Close()
	if created.Content != "nice one" || created.UserID != commenter.ID {
		t.Fatalf("unexpected comment: %+v", created)
	}

	var reloaded models.Post
	if err := db.First(&reloaded, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if reloaded.CommentsCount != 1 {
		t.Fatalf("expected comments_count 1, got %d", reloaded.CommentsCount)
	}

	// Blank content.
	req = httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(`{"content":"   "}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank content, got %d", resp.StatusCode)
	}

	// Over the length limit.
	long := fmt.Sprintf(`{"content":"%s"}`, strings.Repeat("a", 501))
	req = httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(long)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for long content, got %d", resp.StatusCode)
	}

	// Soft-deleted posts reject comments.
	if err := db.Model(post).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	req = httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(`{"content":"too late"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for soft-deleted post, got %d", resp.StatusCode)
	}
}

func TestGetCommentsFlow(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID, "listed post")
	for _, content := range []string{"one", "two", "three"} {
		if err := db.Create(&models.Comment{Content: content, UserID: author.ID, PostID: post.ID}).Error; err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	app := fiber.New()
	app.Get("/posts/:id/comments", s.GetComments)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/%d/comments", post.ID), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var views []models.CommentView
	if err := json.NewDecoder(resp.Body).Decode(&views); err != nil {
		t.Fatalf("decode comments: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(views))
	}
	if views[0].Content != "one" || views[2].Content != "three" {
		t.Fatalf("comments out of order: %q ... %q", views[0].Content, views[2].Content)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/999/comments", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing post, got %d", resp.StatusCode)
	}
}

func TestUpdateAndDeleteCommentOwnership(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	intruder := createTestUser(t, db, "intruder")
	post := createTestPost(t, db, author.ID, "owned post")
	comment := &models.Comment{Content: "mine", UserID: author.ID, PostID: post.ID}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := db.Model(post).UpdateColumn("comments_count", 1).Error; err != nil {
		t.Fatalf("set counter: %v", err)
	}

	url := fmt.Sprintf("/posts/%d/comments/%d", post.ID, comment.ID)

	intruderApp := newAuthedApp(intruder.ID)
	intruderApp.Put("/posts/:id/comments/:commentId", s.UpdateComment)
	intruderApp.Delete("/posts/:id/comments/:commentId", s.DeleteComment)

	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader([]byte(`{"content":"hijack"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := intruderApp.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-author update, got %d", resp.StatusCode)
	}

	resp, err = intruderApp.Test(httptest.NewRequest(http.MethodDelete, url, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-author delete, got %d", resp.StatusCode)
	}

	authorApp := newAuthedApp(author.ID)
	authorApp.Put("/posts/:id/comments/:commentId", s.UpdateComment)
	authorApp.Delete("/posts/:id/comments/:commentId", s.DeleteComment)

	req = httptest.NewRequest(http.MethodPut, url, bytes.NewReader([]byte(`{"content":"edited"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = authorApp.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for author update, got %d", resp.StatusCode)
	}
	var reloadedComment models.Comment
	if err := db.First(&reloadedComment, comment.ID).Error; err != nil {
		t.Fatalf("reload comment: %v", err)
	}
	if reloadedComment.Content != "edited" {
		t.Fatalf("expected edited content, got %q", reloadedComment.Content)
	}

	resp, err = authorApp.Test(httptest.NewRequest(http.MethodDelete, url, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for author delete, got %d", resp.StatusCode)
	}
	if err := db.First(&reloadedComment, comment.ID).Error; err == nil {
		t.Fatal("comment row must be gone after delete")
	}
	var reloadedPost models.Post
	if err := db.First(&reloadedPost, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if reloadedPost.CommentsCount != 0 {
		t.Fatalf("expected comments_count 0 after delete, got %d", reloadedPost.CommentsCount)
	}

	// Deleting a comment whose counter was never incremented drives the
	// stored counter negative; the decrement is not clamped.
	stray := &models.Comment{Content: "stray", UserID: author.ID, PostID: post.ID}
	if err := db.Create(stray).Error; err != nil {
		t.Fatalf("create stray comment: %v", err)
	}
	if err := db.Model(post).UpdateColumn("comments_count", 0).Error; err != nil {
		t.Fatalf("reset counter: %v", err)
	}
	strayURL := fmt.Sprintf("/posts/%d/comments/%d", post.ID, stray.ID)
	resp, err = authorApp.Test(httptest.NewRequest(http.MethodDelete, strayURL, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if err := db.First(&reloadedPost, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if reloadedPost.CommentsCount != -1 {
		t.Fatalf("expected comments_count -1, got %d", reloadedPost.CommentsCount)
	}
}
