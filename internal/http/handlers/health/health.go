// Package health реализует HTTP-обработчик проверки состояния сервиса и его зависимостей.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/accounts-service/internal/http/response"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
)

const checkTimeout = 2 * time.Second

// Check проверяет одну зависимость.
type Check func(ctx context.Context) error

// Handler отвечает 200, если все зависимости доступны, иначе 503.
type Handler struct {
	log    *slog.Logger
	checks map[string]Check
}

// New создает Handler с набором именованных проверок.
func New(log *slog.Logger, checks map[string]Check) *Handler {
	return &Handler{
		log:    log,
		checks: checks,
	}
}

// ServeHTTP godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]any "Все зависимости доступны"
// @Failure 503 {object} map[string]any "Зависимость недоступна"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	components := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.log.Warn("dependency is unhealthy", slog.String("op", op), slog.String("component", name), sl.Err(err))
			components[name] = "unavailable"
			healthy = false
			continue
		}
		components[name] = "ok"
	}

	status := "ok"
	if !healthy {
		status = "degraded"
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status":     status,
		"components": components,
	}))
}
