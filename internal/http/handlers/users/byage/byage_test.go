package byage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/accounts-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// MockService реализует интерфейс byage.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) FindByAge(ctx context.Context, caller *models.User, minAgeYears int) ([]*models.User, error) {
	args := m.Called(ctx, caller, minAgeYears)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestByAgeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	admin := &models.User{UUID: "u0", Login: "admin", IsAdmin: true}

	tests := []struct {
		name           string
		age            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "есть совпадения",
			age:  "18",
			setupMock: func(m *MockService) {
				m.On("FindByAge", mock.Anything, admin, 18).Return([]*models.User{{UUID: "u1", Login: "alice"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":1`,
		},
		{
			name: "нет совпадений",
			age:  "150",
			setupMock: func(m *MockService) {
				m.On("FindByAge", mock.Anything, admin, 150).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"users":[]`,
		},
		{
			name:           "не число",
			age:            "old",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"age must be an integer"}`,
		},
		{
			name: "отрицательный возраст",
			age:  "-1",
			setupMock: func(m *MockService) {
				m.On("FindByAge", mock.Anything, admin, -1).Return(nil, apperr.Validation("age must not be negative"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `age must not be negative`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, "/users/by-age/"+tt.age, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("age", tt.age)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req.WithContext(middlewarectx.WithCaller(ctx, admin)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
