package list

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListActive(ctx context.Context, caller *models.User) ([]*models.User, error) {
	args := m.Called(ctx, caller)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	admin := &models.User{UUID: "u0", Login: "admin", IsAdmin: true}

	t.Run("порядок сохраняется", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("ListActive", mock.Anything, admin).Return([]*models.User{
			{UUID: "u0", Login: "admin"},
			{UUID: "u1", Login: "alice"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(middlewarectx.WithCaller(req.Context(), admin))
		w := httptest.NewRecorder()

		New(logger, mockService).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got struct {
			Data struct {
				Users []models.User `json:"users"`
				Count int           `json:"count"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 2, got.Data.Count)
		require.Len(t, got.Data.Users, 2)
		assert.Equal(t, "admin", got.Data.Users[0].Login)
		assert.Equal(t, "alice", got.Data.Users[1].Login)
	})

	t.Run("пустой список", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("ListActive", mock.Anything, admin).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(middlewarectx.WithCaller(req.Context(), admin))
		w := httptest.NewRecorder()

		New(logger, mockService).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"users":[]`)
	})

	t.Run("не администратор", func(t *testing.T) {
		alice := &models.User{UUID: "u1", Login: "alice"}
		mockService := new(MockService)
		mockService.On("ListActive", mock.Anything, alice).Return(nil, apperr.Forbidden("administrator rights required"))

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(middlewarectx.WithCaller(req.Context(), alice))
		w := httptest.NewRecorder()

		New(logger, mockService).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertExpectations(t)
	})
}
