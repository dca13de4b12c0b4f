//go:build integration

package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/accounts-service/internal/migrations"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его UID
func (f *TestDataFactory) CreateUser(t *testing.T, login string, birthday *time.Time, revoked bool) string {
	t.Helper()
	now := time.Now().UTC()
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users (login, password_hash, display_name, gender, birthday,
			created_at, created_by, modified_at, modified_by)
		VALUES ($1, 'hash', 'Test', 1, $2, $3, 'Admin', $3, 'Admin') RETURNING uid`,
		login, nullTime(birthday), now).Scan(&uid)
	require.NoError(t, err)

	if revoked {
		_, err = f.storage.DB.Exec(`UPDATE users SET revoked_at = $1, revoked_by = 'Admin' WHERE uid = $2`, now, uid)
		require.NoError(t, err)
	}
	return uid
}

func newUser(login string) models.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return models.User{
		Login:        login,
		PasswordHash: "hash",
		DisplayName:  "Test",
		Gender:       1,
		CreatedAt:    now,
		CreatedBy:    "Admin",
		ModifiedAt:   now,
		ModifiedBy:   "Admin",
	}
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL и применяет миграции
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(3 * time.Minute),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	port, err := postgresContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err, "Failed to get port")

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "Failed to get host")

	connStr := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "Failed to create storage after retries")

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath), "Failed to apply migrations")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if postgresContainer != nil {
			_ = postgresContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
