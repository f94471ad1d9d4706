package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/database"
)

// HandleCheckHealth answers liveness probes, including a storage ping.
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  "database unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
