package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	corsAllowOrigins = "*"
	corsAllowHeaders = "Content-Type,Authorization,true"
	corsAllowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
)

// CORSHeaders stamps the CORS headers on every response, errors included.
// Headers are set before the chain runs so the error handler keeps them.
func CORSHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, corsAllowOrigins)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		return c.Next()
	}
}

// Preflight answers OPTIONS preflight requests with the same policy.
func Preflight() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: corsAllowOrigins,
		AllowHeaders: corsAllowHeaders,
		AllowMethods: corsAllowMethods,
		MaxAge:       300,
	})
}
