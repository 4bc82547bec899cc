package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"travel-booking/types"
)

var startedAt = time.Now()

// Health reports service liveness and uptime.
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "ok",
		Data: fiber.Map{
			"uptime": time.Since(startedAt).String(),
		},
	})
}
