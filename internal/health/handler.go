package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db      Pinger
	timeout time.Duration
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db, timeout: 2 * time.Second}
}

type Response struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}

// Check godoc
// @Summary Liveness probe
// @Description Reports whether the service can reach postgres
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /healthz [get]
func (h *Handler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", "error", err)
		return c.Status(http.StatusServiceUnavailable).JSON(Response{
			Status:   "degraded",
			Database: "down",
		})
	}

	return c.Status(http.StatusOK).JSON(Response{
		Status:   "ok",
		Database: "up",
	})
}
