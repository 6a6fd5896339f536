package server

import (
	"community/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost records a like for the current user (protected).
// Liking a post twice is accepted and changes nothing.
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.AddLike(ctx, userID, postID); err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// UnlikePost removes the current user's like (protected)
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.RemoveLike(ctx, userID, postID); err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}
