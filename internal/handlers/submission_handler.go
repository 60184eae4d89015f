package handlers

import (
	"context"
	"fmt"

	"logo-gallery-api/internal/models"
	"logo-gallery-api/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// submitter accepts new logo submissions
type submitter interface {
	Submit(ctx context.Context, req requests.SubmitLogoRequest) (*models.Submission, error)
}

// SubmissionHandler handles submission HTTP requests
type SubmissionHandler struct {
	service submitter
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service submitter) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
	}
}

// Create handles POST /submissions
func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	var input requests.SubmitLogoRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Reports every violated field, not just the first
	if err := validator.ValidateStruct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: %v", err),
		})
	}

	submission, err := h.service.Submit(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Submitted! Your logo will appear after approval.",
		"submission": submission,
	})
}
