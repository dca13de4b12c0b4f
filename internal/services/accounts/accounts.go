// Package accounts управляет жизненным циклом учётных записей: создание, изменение,
// мягкое и полное удаление, восстановление и выборки. Каждая операция получает
// вызывающего явно и проверяет права через пакет permission.
package accounts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/accounts-service/internal/cache"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

// UserRepository описывает контракт хранилища учётных записей.
type UserRepository interface {
	// GetUser возвращает пользователя по UID или repository.ErrUserNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// GetUserByLogin возвращает пользователя по логину или repository.ErrUserNotFound.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// LoginTaken проверяет занятость логина всеми записями, кроме exceptUID.
	LoginTaken(ctx context.Context, login, exceptUID string) (bool, error)
	// CreateUser сохраняет пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// UpdateUser перезаписывает изменяемые поля.
	UpdateUser(ctx context.Context, user models.User) error
	// RemoveUser удаляет запись безвозвратно.
	RemoveUser(ctx context.Context, userUID string) error
	// ListActiveUsers возвращает неудалённых пользователей по возрастанию created_at.
	ListActiveUsers(ctx context.Context) ([]*models.User, error)
	// ListUsersBornBefore возвращает пользователей с датой рождения раньше date.
	ListUsersBornBefore(ctx context.Context, date time.Time) ([]*models.User, error)
	// CountUsers возвращает общее количество записей.
	CountUsers(ctx context.Context) (int, error)
}

// Credentials хеширует и проверяет пароли.
type Credentials interface {
	Hash(raw string) (string, error)
	Verify(stored, raw string) error
}

// Cache хранит разрешённых вызывающих.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher публикует события жизненного цикла.
type EventPublisher interface {
	Publish(ctx context.Context, event models.UserEvent) error
}

// OperationObserver учитывает исходы операций.
type OperationObserver interface {
	ObserveOperation(operation, outcome string)
}

// Manager реализует операции жизненного цикла учётных записей.
type Manager struct {
	repo    UserRepository
	creds   Credentials
	cache   Cache
	events  EventPublisher
	metrics OperationObserver
	log     *slog.Logger
	now     func() time.Time
}

// Option настраивает Manager.
type Option func(*Manager)

// WithCache включает инвалидацию кеша вызывающих при изменениях.
func WithCache(c Cache) Option {
	return func(m *Manager) { m.cache = c }
}

// WithEvents включает публикацию событий.
func WithEvents(p EventPublisher) Option {
	return func(m *Manager) { m.events = p }
}

// WithMetrics включает учёт операций.
func WithMetrics(o OperationObserver) Option {
	return func(m *Manager) { m.metrics = o }
}

// WithClock подменяет часы.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager создаёт Manager.
func NewManager(repo UserRepository, creds Credentials, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		repo:  repo,
		creds: creds,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// storeErr переводит ошибку хранилища в таксономию apperr.
func storeErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return apperr.NotFound("user not found")
	case errors.Is(err, repository.ErrLoginTaken):
		return apperr.Conflict("login already taken")
	default:
		return apperr.Storage(err)
	}
}

func (m *Manager) observe(operation string, err error) {
	if m.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = apperr.KindOf(err).String()
	}
	m.metrics.ObserveOperation(operation, outcome)
}

// changed сбрасывает кеш цели и публикует событие. Ошибки только логируются.
func (m *Manager) changed(ctx context.Context, eventType models.EventType, target *models.User, caller *models.User) {
	if m.cache != nil {
		if err := m.cache.Invalidate(ctx, cache.IdentityKey(target.UUID)); err != nil {
			m.log.Warn("failed to invalidate identity cache",
				slog.String("user_uid", target.UUID), sl.Err(err))
		}
	}
	if m.events == nil {
		return
	}
	event := models.UserEvent{
		Type:       eventType,
		UserUID:    target.UUID,
		Login:      target.Login,
		Actor:      caller.Login,
		OccurredAt: m.now().UTC(),
	}
	if err := m.events.Publish(ctx, event); err != nil {
		m.log.Warn("failed to publish user event",
			slog.String("event", string(eventType)),
			slog.String("user_uid", target.UUID),
			sl.Err(err))
	}
}
