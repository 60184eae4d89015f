package handlers

import (
	"math/rand"

	"logo-gallery-api/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TeamSize is the number of slots in a random team
const TeamSize = 6

// approvedLister reads the public gallery view
type approvedLister interface {
	ListApprovedBySubject() (map[int][]models.Submission, error)
}

// GalleryHandler serves the public read views over approved submissions
type GalleryHandler struct {
	ledger approvedLister
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(ledger approvedLister) *GalleryHandler {
	return &GalleryHandler{
		ledger: ledger,
	}
}

// List handles GET /gallery
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	grouped, err := h.ledger.ListApprovedBySubject()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(grouped)
}

// RandomTeam handles GET /gallery/random-team. It picks up to six approved
// logos from distinct subjects, one random variant per subject.
func (h *GalleryHandler) RandomTeam(c *fiber.Ctx) error {
	grouped, err := h.ledger.ListApprovedBySubject()
	if err != nil {
		return respondError(c, err)
	}

	subjects := make([]int, 0, len(grouped))
	for subject := range grouped {
		subjects = append(subjects, subject)
	}
	rand.Shuffle(len(subjects), func(i, j int) {
		subjects[i], subjects[j] = subjects[j], subjects[i]
	})

	size := TeamSize
	if len(subjects) < size {
		size = len(subjects)
	}

	team := make([]models.Submission, 0, size)
	for _, subject := range subjects[:size] {
		entries := grouped[subject]
		team = append(team, entries[rand.Intn(len(entries))])
	}

	return c.JSON(fiber.Map{
		"team": team,
	})
}
