package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gecampus/apply-api/database"
)

// HandleCheckHealth reports whether the store answers a round trip
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		log.Println("Healthcheck failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Database unavailable",
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
