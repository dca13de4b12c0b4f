// Package profile реализует HTTP-обработчик частичного изменения профиля.
//
// Непереданные поля остаются без изменений, пустой запрос ничего не меняет.
package profile

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
	"github.com/magabrotheeeer/accounts-service/internal/lib/age"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Request: изменяемые поля профиля.
type Request struct {
	DisplayName *string `json:"display_name,omitempty" example:"Alice"`
	Gender      *int    `json:"gender,omitempty" example:"2"`
	Birthday    *string `json:"birthday,omitempty" example:"1990-02-28"`
}

// Handler обрабатывает изменение профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики изменения профиля.
type Service interface {
	UpdateProfile(ctx context.Context, caller *models.User, targetUID string, upd models.ProfileUpdate) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Изменить профиль
// @Description Меняет имя, пол и дату рождения. Доступно владельцу и администратору.
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "UID пользователя"
// @Param request body Request true "Изменяемые поля"
// @Success 200 {object} response.Response "Профиль изменён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /users/{id}/profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.profile"
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

	upd := models.ProfileUpdate{
		DisplayName: req.DisplayName,
		Gender:      req.Gender,
	}
	if req.Birthday != nil {
		birthday, err := age.ParseDate(*req.Birthday)
		if err != nil {
			log.Info("invalid birthday", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("birthday must be in format "+age.DateLayout))
			return
		}
		upd.Birthday = &birthday
	}

	if err := h.service.UpdateProfile(r.Context(), middlewarectx.CallerFrom(r.Context()), targetUID, upd); err != nil {
		log.Info("failed to update profile", slog.String("uid", targetUID), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("profile updated", slog.String("uid", targetUID))
	render.JSON(w, r, response.OK())
}
