// Package create реализует HTTP-обработчик создания учётной записи.
//
// Handler декодирует JSON-запрос, разбирает дату рождения и передаёт запрос сервису вместе
// с вызывающим из контекста. Проверка прав и формата полей выполняется в сервисе.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/http/response"
	"github.com/magabrotheeeer/accounts-service/internal/lib/age"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Request: данные новой учётной записи.
type Request struct {
	Login       string `json:"login" example:"alice"`
	Password    string `json:"password" example:"secret1"`
	DisplayName string `json:"display_name" example:"Alice"`
	Gender      int    `json:"gender" example:"1"`
	Birthday    string `json:"birthday,omitempty" example:"1990-02-28"`
	IsAdmin     bool   `json:"is_admin"`
}

// Handler управляет HTTP-запросами на создание учётных записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис жизненного цикла учётных записей
}

// Service описывает интерфейс бизнес-логики создания учётной записи.
type Service interface {
	Create(ctx context.Context, caller *models.User, req models.NewUser) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Создать учётную запись
// @Description Создаёт пользователя. Доступно только администратору.
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные новой учётной записи"
// @Success 201 {object} map[string]any "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 409 {object} response.ErrorResponse "Логин занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	newUser := models.NewUser{
		Login:       req.Login,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Gender:      req.Gender,
		IsAdmin:     req.IsAdmin,
	}
	if req.Birthday != "" {
		birthday, err := age.ParseDate(req.Birthday)
		if err != nil {
			log.Info("invalid birthday", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("birthday must be in format "+age.DateLayout))
			return
		}
		newUser.Birthday = &birthday
	}

	user, err := h.service.Create(r.Context(), middlewarectx.CallerFrom(r.Context()), newUser)
	if err != nil {
		log.Info("failed to create user", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("user created", slog.String("uid", user.UUID), slog.String("login", user.Login))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
