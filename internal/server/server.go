// Package server builds the fiber application and its middleware stack.
package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/metrics"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp returns a fiber app with the error handler and middleware
// installed and no routes. m may be nil.
func NewApp(cfg config.ServerConfig, m *metrics.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "trivia-api",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestLogger renders chain errors, so everything outside it sees
	// the final status.
	app.Use(middleware.RequestID())
	app.Use(middleware.Metrics(m))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORSHeaders())
	app.Use(middleware.Preflight())
	app.Use(recover.New())

	return app
}
