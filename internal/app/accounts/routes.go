// Package accounts собирает HTTP-процесс сервиса учётных записей: хранилище, миграции,
// кеш, брокер событий, маршруты и сервер.
package accounts

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// Регистрация swagger-спецификации.
	_ "github.com/magabrotheeeer/accounts-service/docs"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/byage"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/bylogin"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/changelogin"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/create"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/credentials"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/current"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/list"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/password"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/profile"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/remove"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/users/restore"
	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/lib/metrics"
	accountsservice "github.com/magabrotheeeer/accounts-service/internal/services/accounts"
	authservice "github.com/magabrotheeeer/accounts-service/internal/services/auth"
)

// Deps зависимости маршрутов.
type Deps struct {
	Manager      *accountsservice.Manager
	Resolver     *accountsservice.Resolver
	Auth         *authservice.AuthService
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	LoginLimiter *rate.Limiter
	HealthChecks map[string]health.Check
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics(deps.Metrics),
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.With(middlewarectx.RateLimit(deps.LoginLimiter, logger)).
			Post("/login", login.New(logger, deps.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Authenticate(deps.Resolver, logger))

			r.Get("/users/current", current.New(logger, deps.Manager).ServeHTTP)
			r.Get("/users/self/credentials", credentials.New(logger, deps.Manager).ServeHTTP)
			r.Get("/users/by-login/{login}", bylogin.New(logger, deps.Manager).ServeHTTP)
			r.Get("/users/by-age/{age}", byage.New(logger, deps.Manager).ServeHTTP)
			r.Get("/users", list.New(logger, deps.Manager).ServeHTTP)
			r.Post("/users", create.New(logger, deps.Manager).ServeHTTP)
			r.Put("/users/{id}/profile", profile.New(logger, deps.Manager).ServeHTTP)
			r.Put("/users/{id}/password", password.New(logger, deps.Manager).ServeHTTP)
			r.Put("/users/{id}/login", changelogin.New(logger, deps.Manager).ServeHTTP)
			r.Put("/users/{id}/restore", restore.New(logger, deps.Manager).ServeHTTP)
			r.Delete("/users/{id}", remove.New(logger, deps.Manager).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, deps.HealthChecks).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
