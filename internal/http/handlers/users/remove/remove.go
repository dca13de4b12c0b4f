// Package remove реализует HTTP-обработчик удаления учётной записи.
//
// Параметр full=true удаляет запись безвозвратно, по умолчанию выполняется мягкое удаление.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/http/response"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Handler обрабатывает запросы на удаление учётных записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис жизненного цикла учётных записей
}

// Service описывает интерфейс бизнес-логики удаления.
type Service interface {
	Delete(ctx context.Context, caller *models.User, targetUID string, isFull bool) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пользователя
// @Description Мягко или полностью удаляет учётную запись. Доступно только администратору.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Param full query bool false "Удалить безвозвратно"
// @Success 200 {object} response.Response "Запись удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный параметр full"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	targetUID := chi.URLParam(r, "id")

	isFull := false
	if raw := r.URL.Query().Get("full"); raw != "" {
		var err error
		isFull, err = strconv.ParseBool(raw)
		if err != nil {
			log.Info("invalid full parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid full parameter"))
			return
		}
	}

	if err := h.service.Delete(r.Context(), middlewarectx.CallerFrom(r.Context()), targetUID, isFull); err != nil {
		log.Info("failed to delete user", slog.String("uid", targetUID), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("user deleted", slog.String("uid", targetUID), slog.Bool("full", isFull))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"full": isFull,
	}))
}
