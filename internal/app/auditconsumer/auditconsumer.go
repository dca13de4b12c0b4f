// Package auditconsumer собирает процесс, который читает очередь аудита и пишет события в журнал.
package auditconsumer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/accounts-service/internal/config"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/rabbitmq"
	"github.com/magabrotheeeer/accounts-service/internal/services/audit"
)

// App процесс потребителя аудита.
type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	queue   string
	handler func([]byte) error
	logger  *slog.Logger
}

// New подключается к брокеру и объявляет очередь аудита.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.auditconsumer.New"

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.AuditQueues(cfg.AuditQueue))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		conn:    conn,
		ch:      ch,
		queue:   cfg.AuditQueue,
		handler: dropMalformed(audit.NewHandler(logger).Handle),
		logger:  logger,
	}, nil
}

// Run потребляет очередь до отмены ctx и дожидается завершения обработчиков.
func (a *App) Run(ctx context.Context) error {
	done, err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, a.queue, a.handler)
	if err != nil {
		a.logger.Error("failed to start audit consumer", slog.String("queue", a.queue), sl.Err(err))
		a.close()
		return err
	}
	a.logger.Info("audit consumer started", slog.String("queue", a.queue))

	<-done
	a.logger.Info("audit consumer shutting down gracefully")
	a.close()
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
}

// dropMalformed переводит ошибку разбора события в отказ без повторной доставки.
func dropMalformed(handle func([]byte) error) func([]byte) error {
	return func(body []byte) error {
		err := handle(body)
		if errors.Is(err, audit.ErrMalformed) {
			return fmt.Errorf("%w: %v", rabbitmq.ErrDrop, err)
		}
		return err
	}
}
