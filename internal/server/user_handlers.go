package server

import (
	"community/internal/models"
	"community/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the current user's profile (protected)
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetProfile(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(user)
}

// UpdateMyProfile updates nickname and profile image (protected)
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Nickname        string `json:"nickname"`
		ProfileImageURL string `json:"profile_image_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:          userID,
		Nickname:        req.Nickname,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(user)
}

// DeleteMyAccount deactivates the current user's account (protected).
// The row is kept so existing posts and comments keep their author.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	if err := s.userService.DeactivateAccount(ctx, userID); err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetUserProfile returns another user's public profile (protected)
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, serviceErrorStatus(err), err)
	}

	return c.JSON(models.NewAuthorView(user))
}
