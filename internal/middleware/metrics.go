package middleware

import (
	"time"

	"trivia-api/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics observes request count and latency per matched route. Install it
// outside RequestLogger so the final status is visible.
func Metrics(m *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusCode(err)
		}
		m.ObserveHTTPRequest(c.Route().Path, c.Method(), status, time.Since(start))
		return err
	}
}
