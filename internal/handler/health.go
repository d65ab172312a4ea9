package handler

import (
	"context"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// HealthHandler reports whether the store is reachable
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary Health check
// @Description Pings the database
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.db.PingContext(c.UserContext()); err != nil {
		return domain.NewInternalError("database unreachable", err)
	}
	return c.JSON(HealthResponse{Success: true, Status: "ok"})
}
