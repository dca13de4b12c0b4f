package credentials

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// MockService реализует интерфейс credentials.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) VerifySelf(ctx context.Context, caller *models.User, login, password string) (*models.User, error) {
	args := m.Called(ctx, caller, login, password)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCredentialsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	alice := &models.User{UUID: "u1", Login: "alice", PasswordHash: "hash"}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "пароль подошёл",
			url:  "/users/self/credentials?login=alice&password=secret1",
			setupMock: func(m *MockService) {
				m.On("VerifySelf", mock.Anything, alice, "alice", "secret1").Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"login":"alice"`,
		},
		{
			name: "неверный пароль",
			url:  "/users/self/credentials?login=alice&password=wrong1",
			setupMock: func(m *MockService) {
				m.On("VerifySelf", mock.Anything, alice, "alice", "wrong1").
					Return(nil, apperr.Unauthenticated("invalid credentials"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid credentials"}`,
		},
		{
			name: "чужой логин",
			url:  "/users/self/credentials?login=bob&password=secret1",
			setupMock: func(m *MockService) {
				m.On("VerifySelf", mock.Anything, alice, "bob", "secret1").
					Return(nil, apperr.Forbidden("cannot verify credentials of another user"))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `cannot verify credentials of another user`,
		},
		{
			name:           "нет пароля",
			url:            "/users/self/credentials?login=alice",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is a required field`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = req.WithContext(middlewarectx.WithCaller(req.Context(), alice))
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), `"hash"`)
			mockService.AssertExpectations(t)
		})
	}
}
