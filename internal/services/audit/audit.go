// Package audit записывает события жизненного цикла учётных записей в структурированный журнал.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// ErrMalformed сообщение не является корректным событием и не будет обработано повторно.
var ErrMalformed = errors.New("malformed event")

// Handler обрабатывает события из очереди аудита.
type Handler struct {
	log *slog.Logger
}

// NewHandler создаёт обработчик.
func NewHandler(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// Handle разбирает событие и пишет его в журнал.
func (h *Handler) Handle(body []byte) error {
	const op = "audit.Handle"

	var event models.UserEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMalformed, err)
	}
	if !slices.Contains(models.AllEventTypes, event.Type) {
		return fmt.Errorf("%s: %w: unknown type %q", op, ErrMalformed, event.Type)
	}
	if event.UserUID == "" {
		return fmt.Errorf("%s: %w: empty user uid", op, ErrMalformed)
	}

	h.log.Info("user event",
		slog.String("event", string(event.Type)),
		slog.String("user_uid", event.UserUID),
		slog.String("login", event.Login),
		slog.String("actor", event.Actor),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
