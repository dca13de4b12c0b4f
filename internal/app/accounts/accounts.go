package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/accounts-service/internal/cache"
	"github.com/magabrotheeeer/accounts-service/internal/config"
	"github.com/magabrotheeeer/accounts-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/accounts-service/internal/lib/jwt"
	"github.com/magabrotheeeer/accounts-service/internal/lib/metrics"
	"github.com/magabrotheeeer/accounts-service/internal/lib/password"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/migrations"
	"github.com/magabrotheeeer/accounts-service/internal/rabbitmq"
	accountsservice "github.com/magabrotheeeer/accounts-service/internal/services/accounts"
	authservice "github.com/magabrotheeeer/accounts-service/internal/services/auth"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-процесс сервиса учётных записей.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New поднимает зависимости и собирает HTTP-сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.accounts.New"

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = repository.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		_ = cacheRedis.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// очередь аудита объявляется и здесь, чтобы события не терялись до запуска потребителя
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.AuditQueues(cfg.AuditQueue))
	if err != nil {
		_ = conn.Close()
		_ = cacheRedis.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL,
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
	)
	creds := password.NewBcrypt(bcrypt.DefaultCost)

	manager := accountsservice.NewManager(db, creds, logger,
		accountsservice.WithCache(cacheRedis),
		accountsservice.WithEvents(rabbitmq.NewPublisher(ch, cfg.Exchange)),
		accountsservice.WithMetrics(appMetrics),
	)
	resolver := accountsservice.NewResolver(db, tokens, cacheRedis, cfg.IdentityTTL, logger)
	authService := authservice.NewAuthService(db, creds, tokens)

	if cfg.AdminPassword != "" {
		if _, err = manager.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword, cfg.AdminDisplayName); err != nil {
			logger.Error("failed to bootstrap administrator", sl.Err(err))
		}
	} else {
		logger.Warn("bootstrap administrator password is not set, bootstrap skipped")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Manager:      manager,
		Resolver:     resolver,
		Auth:         authService,
		Metrics:      appMetrics,
		Gatherer:     registry,
		LoginLimiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		HealthChecks: map[string]health.Check{
			"postgres": db.Ping,
			"redis":    cacheRedis.Ping,
		},
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Warn("failed to close rabbitmq channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Warn("failed to close rabbitmq connection", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
