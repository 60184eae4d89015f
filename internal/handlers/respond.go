package handlers

import (
	"errors"
	"log"

	"logo-gallery-api/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error to its HTTP status and a short
// machine-and-human-readable message. Internal details never reach the
// client; anything untyped is logged and reported as a generic failure.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
