package password

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// MockService реализует интерфейс password.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ChangePassword(ctx context.Context, caller *models.User, targetUID, newPassword string) error {
	args := m.Called(ctx, caller, targetUID, newPassword)
	return args.Error(0)
}

func TestPasswordHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	alice := &models.User{UUID: "u1", Login: "alice"}

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "смена своего пароля",
			id:   "u1",
			body: `{"password":"newSecret1"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, alice, "u1", "newSecret1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "некорректный JSON",
			id:             "u1",
			body:           `password`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "недопустимые символы",
			id:   "u1",
			body: `{"password":"пароль"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, alice, "u1", "пароль").
					Return(apperr.Validation("password may contain only latin letters and digits"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `password may contain only latin letters and digits`,
		},
		{
			name: "чужой пароль",
			id:   "u2",
			body: `{"password":"newSecret1"}`,
			setupMock: func(m *MockService) {
				m.On("ChangePassword", mock.Anything, alice, "u2", "newSecret1").
					Return(apperr.Forbidden("only the owner or an administrator may do this"))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"status":"Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id+"/password", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(middlewarectx.WithCaller(ctx, alice))
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
