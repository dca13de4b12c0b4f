// Package restore реализует HTTP-обработчик восстановления мягко удалённой записи.
package restore

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/http/response"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Handler обрабатывает восстановление учётной записи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики восстановления.
type Service interface {
	Restore(ctx context.Context, caller *models.User, targetUID string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Восстановить пользователя
// @Description Снимает отметку об удалении. Доступно только администратору.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Success 200 {object} response.Response "Запись восстановлена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /users/{id}/restore [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.restore"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	targetUID := chi.URLParam(r, "id")

	if err := h.service.Restore(r.Context(), middlewarectx.CallerFrom(r.Context()), targetUID); err != nil {
		log.Info("failed to restore user", slog.String("uid", targetUID), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("user restored", slog.String("uid", targetUID))
	render.JSON(w, r, response.OK())
}
