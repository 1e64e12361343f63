package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gecampus/apply-api/database"
	"github.com/gecampus/apply-api/handlers"
	application_handlers "github.com/gecampus/apply-api/handlers/application"
	"github.com/gecampus/apply-api/services"
)

// SetupRoutes registers every route the API serves
func SetupRoutes(app *fiber.App, store database.Storage, uploadService *services.UploadService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	applicationHandler := application_handlers.NewApplicationHandler(store, uploadService)

	api := app.Group("/api")
	api.Post("/applications", applicationHandler.SubmitApplication)
}
