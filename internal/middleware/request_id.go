package middleware

import (
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the fiber.Ctx locals key holding the request id.
	RequestIDKey = "requestID"
)

// RequestID reuses an incoming X-Request-ID or assigns a new ULID, and echoes it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RequestIDHeader)
		if rid == "" {
			rid = util.NewULID()
		}
		c.Locals(RequestIDKey, rid)
		c.Set(RequestIDHeader, rid)
		return c.Next()
	}
}
