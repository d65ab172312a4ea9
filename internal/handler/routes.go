package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Handlers groups everything RegisterRoutes mounts. Health and Metrics are
// optional.
type Handlers struct {
	Trivia  *TriviaHandler
	Health  *HealthHandler
	Metrics http.Handler
}

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/categories", h.Trivia.GetCategories)
	app.Get("/categories/:id<int>/questions", h.Trivia.GetCategoryQuestions)

	app.Get("/questions", h.Trivia.GetQuestions)
	app.Post("/questions", h.Trivia.CreateOrSearchQuestions)
	app.Delete("/questions/:id<int>", h.Trivia.DeleteQuestion)

	app.Post("/quizzes", h.Trivia.PlayQuiz)

	if h.Health != nil {
		app.Get("/health", h.Health.Check)
	}
	if h.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(h.Metrics))
	}
}
