package handlers

import (
	"fmt"

	"logo-gallery-api/internal/models"
	"logo-gallery-api/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// moderator decides the fate of pending submissions
type moderator interface {
	Approve(id uint) error
	Reject(id uint) (bool, error)
}

// pendingLister reads the moderation queue
type pendingLister interface {
	ListPending() ([]models.Submission, error)
}

// ModerationHandler handles moderation HTTP requests
type ModerationHandler struct {
	service moderator
	ledger  pendingLister
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(service moderator, ledger pendingLister) *ModerationHandler {
	return &ModerationHandler{
		service: service,
		ledger:  ledger,
	}
}

// ListPending handles GET /moderation/pending
func (h *ModerationHandler) ListPending(c *fiber.Ctx) error {
	pending, err := h.ledger.ListPending()
	if err != nil {
		return respondError(c, err)
	}
	if pending == nil {
		pending = []models.Submission{}
	}
	return c.JSON(pending)
}

// Decide handles POST /moderation/decision
func (h *ModerationHandler) Decide(c *fiber.Ctx) error {
	var input requests.DecisionRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validator.ValidateStruct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: %v", err),
		})
	}

	switch input.Action {
	case "approve":
		if err := h.service.Approve(input.ID); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Approved",
		})

	case "reject":
		found, err := h.service.Reject(input.ID)
		if err != nil {
			return respondError(c, err)
		}
		if !found {
			return c.JSON(fiber.Map{
				"success": true,
				"message": "Submission not found",
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Rejected and deleted",
		})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action",
		})
	}
}
