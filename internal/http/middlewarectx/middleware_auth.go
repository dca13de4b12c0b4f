// Package middlewarectx содержит HTTP middleware для определения вызывающего по JWT,
// ограничения частоты запросов и сбора метрик.
//
// Authenticate проверяет наличие токена в заголовке Authorization, определяет по нему
// вызывающего через Resolver и кладёт найденную запись в контекст запроса.
// Обработчики достают её через CallerFrom и передают в бизнес-слой явно.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/accounts-service/internal/http/response"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Caller: ключ для вызывающего в контексте.
const Caller Key = "caller"

// Resolver определяет вызывающего по токену.
type Resolver interface {
	ResolveCaller(ctx context.Context, token string) (*models.User, error)
}

// WithCaller возвращает контекст с вызывающим.
func WithCaller(ctx context.Context, caller *models.User) context.Context {
	return context.WithValue(ctx, Caller, caller)
}

// CallerFrom достаёт вызывающего из контекста. nil, если запрос не прошёл Authenticate.
func CallerFrom(ctx context.Context) *models.User {
	caller, _ := ctx.Value(Caller).(*models.User)
	return caller
}

// Authenticate возвращает HTTP middleware, который определяет вызывающего по Bearer-токену.
//
// При отсутствии или невалидности токена отвечает 401, при недоступности хранилища: 503.
func Authenticate(resolver Resolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Authenticate"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Info("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			caller, err := resolver.ResolveCaller(r.Context(), tokenStr)
			if err != nil {
				log.Info("caller not resolved", sl.Err(err))
				response.RenderError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}
