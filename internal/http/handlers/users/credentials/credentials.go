// Package credentials реализует HTTP-обработчик повторной проверки своих учётных данных.
package credentials

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/http/response"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/lib/validate"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Query параметры запроса.
type Query struct {
	Login    string `validate:"required"`
	Password string `validate:"required"`
}

// Handler обрабатывает проверку учётных данных.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики проверки учётных данных.
type Service interface {
	VerifySelf(ctx context.Context, caller *models.User, login, password string) (*models.User, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Проверить свои учётные данные
// @Description Проверяет логин и пароль вызывающего. Логин должен совпадать с логином вызывающего.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param login query string true "Логин"
// @Param password query string true "Пароль"
// @Success 200 {object} map[string]any "Учётная запись"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 403 {object} response.ErrorResponse "Чужой логин"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /users/self/credentials [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.credentials"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := Query{
		Login:    r.URL.Query().Get("login"),
		Password: r.URL.Query().Get("password"),
	}
	if err := h.validate.Struct(q); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		render.JSON(w, r, response.Error("invalid query"))
		return
	}

	user, err := h.service.VerifySelf(r.Context(), middlewarectx.CallerFrom(r.Context()), q.Login, q.Password)
	if err != nil {
		log.Info("credentials not verified", slog.String("login", q.Login), sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
