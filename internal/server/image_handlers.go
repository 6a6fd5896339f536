package server

import (
	"fmt"
	"path/filepath"
	"strings"

	"community/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSizeBytes = 5 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage handles POST /api/images. The file is stored under the
// configured upload directory with a random name; the returned URL is served
// by the /uploads static route.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("No file uploaded"))
	}

	if file.Size > maxImageSizeBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image must be smaller than 5MB"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unsupported image type"))
	}

	// Random name: never trust the client's filename on disk.
	name := uuid.New().String() + ext
	dest := filepath.Join(s.config.UploadDir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": fmt.Sprintf("/uploads/%s", name),
	})
}
