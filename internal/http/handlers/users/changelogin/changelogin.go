// Package changelogin реализует HTTP-обработчик смены логина.
package changelogin

import (
	"context"
	"encoding/json"
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

// Request: новый логин.
type Request struct {
	Login string `json:"login" example:"alice2"`
}

// Handler обрабатывает смену логина.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики смены логина.
type Service interface {
	ChangeLogin(ctx context.Context, caller *models.User, targetUID, newLogin string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сменить логин
// @Description Меняет логин пользователя. Новый логин должен быть свободен.
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Param request body Request true "Новый логин"
// @Success 200 {object} response.Response "Логин изменён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} response.ErrorResponse "Логин занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /users/{id}/login [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.changelogin"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	targetUID := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.service.ChangeLogin(r.Context(), middlewarectx.CallerFrom(r.Context()), targetUID, req.Login); err != nil {
		log.Info("failed to change login", slog.String("uid", targetUID), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("login changed", slog.String("uid", targetUID), slog.String("login", req.Login))
	render.JSON(w, r, response.OK())
}
