package middleware

import (
	"time"

	"saree-crm/logger"
	"saree-crm/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records every mutating request into the logs table through
// the async logger. Reads are not persisted.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if c.Method() == fiber.MethodGet {
			return err
		}
		asyncLogger.Log(types.LogEntry{
			Method:     c.Method(),
			Path:       c.OriginalURL(),
			Form:       string(c.Body()),
			StatusCode: c.Response().StatusCode(),
			CreatedAt:  time.Now(),
		})
		return err
	}
}
