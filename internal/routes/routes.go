package routes

import (
	"time"

	"logo-gallery-api/internal/config"
	"logo-gallery-api/internal/handlers"
	"logo-gallery-api/internal/services"
	"logo-gallery-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	galleryCfg := config.GetConfig().Gallery

	// Wire the pipeline explicitly: ledger and image store are constructed
	// once here and owned by the services
	ledger := store.NewSubmissionStore(db)
	images := services.NewImageStore(galleryCfg)
	submissions := services.NewSubmissionService(ledger, images)
	moderation := services.NewModerationService(ledger, images)

	// API routes group
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "logo-gallery-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// Stored images are served directly from the content directory
	app.Static(galleryCfg.Storage.PublicPath, galleryCfg.Storage.Dir)

	// Submission routes
	submissionHandler := handlers.NewSubmissionHandler(submissions)
	v1.Post("/submissions", submissionHandler.Create)

	// Moderation routes
	moderationHandler := handlers.NewModerationHandler(moderation, ledger)
	v1.Get("/moderation/pending", moderationHandler.ListPending)
	v1.Post("/moderation/decision", moderationHandler.Decide)

	// Gallery read views
	galleryHandler := handlers.NewGalleryHandler(ledger)
	v1.Get("/gallery", galleryHandler.List)
	v1.Get("/gallery/random-team", galleryHandler.RandomTeam)
}
