package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/accounts-service/internal/app/auditconsumer"
	"github.com/magabrotheeeer/accounts-service/internal/config"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	level := slog.LevelInfo
	if cfg.Env == "local" || cfg.Env == "dev" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	logger.Info("starting audit-consumer", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := auditconsumer.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("audit-consumer stopped gracefully")
}
