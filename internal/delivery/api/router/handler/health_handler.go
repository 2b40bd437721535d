package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing store is reachable. *sql.DB satisfies it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     HealthChecker `optional:"true"`
	Logger *slog.Logger
}

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	db     HealthChecker
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// Health answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) Health(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warn("Health check failed", slog.Any("error", err))

			return response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Database is unreachable", nil)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
