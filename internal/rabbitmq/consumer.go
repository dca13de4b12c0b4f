package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
)

// ErrDrop обработчик возвращает эту ошибку для сообщений, которые нельзя обработать повторно.
// Такие сообщения отклоняются без возврата в очередь.
var ErrDrop = errors.New("drop message")

// Acknowledger часть amqp.Delivery, нужная для подтверждения.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// ConsumerMessage запускает потребление очереди queueName.
// Возвращаемый канал закрывается, когда все обработчики завершились.
func ConsumerMessage(ctx context.Context, log *slog.Logger, ch *amqp.Channel, queueName string, handler func([]byte) error) (<-chan struct{}, error) {
	const op = "rabbitmq.ConsumerMessage"
	delivery, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	done := make(chan struct{})
	sem := make(chan struct{}, prefetchCount)
	var wg sync.WaitGroup
	go func() {
		defer close(done)
		defer wg.Wait()
		for {
			select {
			case d, ok := <-delivery:
				if !ok {
					return
				}
				sem <- struct{}{}
				wg.Add(1)
				go func(d amqp.Delivery) {
					defer wg.Done()
					defer func() { <-sem }()
					settle(log, d, d.Body, handler)
				}(d)
			case <-ctx.Done():
				return
			}
		}
	}()
	return done, nil
}

func settle(log *slog.Logger, ack Acknowledger, body []byte, handler func([]byte) error) {
	err := handler(body)
	switch {
	case err == nil:
		if ackErr := ack.Ack(false); ackErr != nil {
			log.Error("failed to ack message", sl.Err(ackErr))
		}
	case errors.Is(err, ErrDrop):
		log.Warn("dropping message", sl.Err(err))
		if nackErr := ack.Nack(false, false); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
	default:
		log.Error("failed to handle message, requeueing", sl.Err(err))
		if nackErr := ack.Nack(false, true); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
	}
}
