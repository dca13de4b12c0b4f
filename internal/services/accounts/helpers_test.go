package accounts_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/accounts-service/internal/lib/password"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	"github.com/magabrotheeeer/accounts-service/internal/services/accounts"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// memStore хранилище в памяти с теми же контрактами ошибок, что и PostgreSQL.
type memStore struct {
	mu    sync.Mutex
	seq   int
	users map[string]*models.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.User)}
}

func clone(u *models.User) *models.User {
	c := *u
	return &c
}

func (s *memStore) seed(u models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if u.UUID == "" {
		u.UUID = fmt.Sprintf("uid-%d", s.seq)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = fixedNow.Add(time.Duration(s.seq) * time.Minute)
	}
	s.users[u.UUID] = clone(&u)
	return clone(&u)
}

func (s *memStore) get(uid string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return nil
	}
	return clone(u)
}

func (s *memStore) GetUser(_ context.Context, userUID string) (*models.User, error) {
	if u := s.get(userUID); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("storage.GetUser: %w", repository.ErrUserNotFound)
}

func (s *memStore) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Login == login {
			return clone(u), nil
		}
	}
	return nil, fmt.Errorf("storage.GetUserByLogin: %w", repository.ErrUserNotFound)
}

func (s *memStore) loginTakenLocked(login, exceptUID string) bool {
	for uid, u := range s.users {
		if u.Login == login && uid != exceptUID {
			return true
		}
	}
	return false
}

func (s *memStore) LoginTaken(_ context.Context, login, exceptUID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginTakenLocked(login, exceptUID), nil
}

func (s *memStore) CreateUser(_ context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loginTakenLocked(user.Login, "") {
		return "", fmt.Errorf("storage.CreateUser: %w", repository.ErrLoginTaken)
	}
	s.seq++
	user.UUID = fmt.Sprintf("uid-%d", s.seq)
	s.users[user.UUID] = clone(&user)
	return user.UUID, nil
}

func (s *memStore) UpdateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.UUID]; !ok {
		return fmt.Errorf("storage.UpdateUser: %w", repository.ErrUserNotFound)
	}
	if s.loginTakenLocked(user.Login, user.UUID) {
		return fmt.Errorf("storage.UpdateUser: %w", repository.ErrLoginTaken)
	}
	s.users[user.UUID] = clone(&user)
	return nil
}

func (s *memStore) RemoveUser(_ context.Context, userUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userUID]; !ok {
		return fmt.Errorf("storage.RemoveUser: %w", repository.ErrUserNotFound)
	}
	delete(s.users, userUID)
	return nil
}

func (s *memStore) list(keep func(u *models.User) bool) []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.User, 0)
	for _, u := range s.users {
		if keep(u) {
			result = append(result, clone(u))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result
}

func (s *memStore) ListActiveUsers(_ context.Context) ([]*models.User, error) {
	return s.list(func(u *models.User) bool { return !u.IsRevoked() }), nil
}

func (s *memStore) ListUsersBornBefore(_ context.Context, date time.Time) ([]*models.User, error) {
	return s.list(func(u *models.User) bool { return u.Birthday != nil && u.Birthday.Before(date) }), nil
}

func (s *memStore) CountUsers(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

// plainCreds обратимое "хеширование" для проверки, что в хранилище не попадает сырой пароль.
type plainCreds struct{}

func (plainCreds) Hash(raw string) (string, error) { return "hashed:" + raw, nil }

func (plainCreds) Verify(stored, raw string) error {
	if stored != "hashed:"+raw {
		return password.ErrMismatch
	}
	return nil
}

// memCache кеш в памяти с JSON-сериализацией, как у Redis.
type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, result any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.invalidated = append(c.invalidated, key)
	return nil
}

// recorder запоминает опубликованные события.
type recorder struct {
	mu     sync.Mutex
	events []models.UserEvent
}

func (r *recorder) Publish(_ context.Context, event models.UserEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) types() []models.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.EventType, 0, len(r.events))
	for _, e := range r.events {
		result = append(result, e.Type)
	}
	return result
}

// UserRepoMock мок хранилища для проверки путей с ошибками.
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) LoginTaken(ctx context.Context, login, exceptUID string) (bool, error) {
	args := m.Called(ctx, login, exceptUID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) UpdateUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepoMock) RemoveUser(ctx context.Context, userUID string) error {
	return m.Called(ctx, userUID).Error(0)
}

func (m *UserRepoMock) ListActiveUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *UserRepoMock) ListUsersBornBefore(ctx context.Context, date time.Time) ([]*models.User, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *UserRepoMock) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// ObserverMock мок счётчика операций.
type ObserverMock struct {
	mock.Mock
}

func (m *ObserverMock) ObserveOperation(operation, outcome string) {
	m.Called(operation, outcome)
}

func ptr[T any](v T) *T { return &v }

func newBareManager(store *memStore, events *recorder) *accounts.Manager {
	return accounts.NewManager(store, plainCreds{}, discardLogger(),
		accounts.WithEvents(events),
		accounts.WithClock(clock),
	)
}
