// Package byage реализует HTTP-обработчик выборки пользователей старше заданного возраста.
package byage

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

// Handler обрабатывает выборку по возрасту.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки по возрасту.
type Service interface {
	FindByAge(ctx context.Context, caller *models.User, minAgeYears int) ([]*models.User, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пользователи старше возраста
// @Description Возвращает пользователей, родившихся раньше чем age лет назад. Записи без даты рождения не попадают в выборку.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param age path int true "Возраст в полных годах"
// @Success 200 {object} map[string]any "Список пользователей"
// @Failure 400 {object} response.ErrorResponse "Возраст не является числом"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Отрицательный возраст"
// @Router /users/by-age/{age} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.byage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	years, err := strconv.Atoi(chi.URLParam(r, "age"))
	if err != nil {
		log.Info("failed to decode age from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("age must be an integer"))
		return
	}

	users, err := h.service.FindByAge(r.Context(), middlewarectx.CallerFrom(r.Context()), years)
	if err != nil {
		log.Info("failed to find users by age", slog.Int("age", years), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"users": users,
		"count": len(users),
	}))
}
