// Package bylogin реализует HTTP-обработчик поиска публичного профиля по логину.
package bylogin

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

// Handler обрабатывает поиск по логину.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска по логину.
type Service interface {
	FindByLogin(ctx context.Context, caller *models.User, login string) (*models.PublicProfile, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль по логину
// @Description Возвращает имя, пол, дату рождения и признак активности. Доступно только администратору.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param login path string true "Логин"
// @Success 200 {object} map[string]any "Профиль"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /users/by-login/{login} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.bylogin"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	login := chi.URLParam(r, "login")

	profile, err := h.service.FindByLogin(r.Context(), middlewarectx.CallerFrom(r.Context()), login)
	if err != nil {
		log.Info("failed to find user by login", slog.String("login", login), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"profile": profile,
	}))
}
