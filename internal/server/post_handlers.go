package server

import (
	"community/internal/models"
	"community/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts returns one page of the post list (public)
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// Raw values go to the service; it owns the pagination rules.
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	view, err := s.postService.ListPosts(ctx, service.ListPostsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(view)
}

// GetPost returns the aggregated detail view of one post (public).
// Signed-in readers get a personalized "liked" flag via optionalUserID.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	currentUserID, _ := s.optionalUserID(c)

	view, err := s.postService.GetPostDetail(ctx, postID, currentUserID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(view)
}

// CreatePost creates a new post (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost updates a post (owner only)
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		UserID:   userID,
		PostID:   postID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(post)
}

// DeletePost soft-deletes a post (owner only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}
