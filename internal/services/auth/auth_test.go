package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	customjwt "github.com/magabrotheeeer/accounts-service/internal/lib/jwt"
	"github.com/magabrotheeeer/accounts-service/internal/lib/password"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	services "github.com/magabrotheeeer/accounts-service/internal/services/auth"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для выпуска токенов
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(userUID, login string) (string, error) {
	args := m.Called(userUID, login)
	return args.String(0), args.Error(1)
}

func TestAuthService_Authenticate(t *testing.T) {
	creds := password.NewBcrypt(bcrypt.MinCost)
	hashed, err := creds.Hash("correct1")
	require.NoError(t, err)

	revokedAt := time.Now()
	active := &models.User{UUID: "u1", Login: "alice", PasswordHash: hashed}
	revoked := &models.User{UUID: "u2", Login: "bob", PasswordHash: hashed, RevokedAt: &revokedAt}

	tests := []struct {
		name       string
		login      string
		password   string
		setupMocks func(r *UserRepoMock)
		wantUID    string
		wantKind   apperr.Kind
	}{
		{
			name:     "valid credentials",
			login:    "alice",
			password: "correct1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByLogin", mock.Anything, "alice").Return(active, nil).Once()
			},
			wantUID: "u1",
		},
		{
			name:     "revoked account still authenticates",
			login:    "bob",
			password: "correct1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByLogin", mock.Anything, "bob").Return(revoked, nil).Once()
			},
			wantUID: "u2",
		},
		{
			name:     "wrong password",
			login:    "alice",
			password: "Correct1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByLogin", mock.Anything, "alice").Return(active, nil).Once()
			},
			wantKind: apperr.KindUnauthenticated,
		},
		{
			name:     "unknown login",
			login:    "ghost",
			password: "correct1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByLogin", mock.Anything, "ghost").
					Return(nil, repository.ErrUserNotFound).Once()
			},
			wantKind: apperr.KindUnauthenticated,
		},
		{
			name:     "storage failure",
			login:    "alice",
			password: "correct1",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByLogin", mock.Anything, "alice").Return(nil, errors.New("db error")).Once()
			},
			wantKind: apperr.KindStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setupMocks(repo)
			svc := services.NewAuthService(repo, creds, new(JwtMakerMock))

			user, err := svc.Authenticate(context.Background(), tt.login, tt.password)
			if tt.wantKind != apperr.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUID, user.UUID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	creds := password.NewBcrypt(bcrypt.MinCost)
	hashed, err := creds.Hash("correct1")
	require.NoError(t, err)
	user := &models.User{UUID: "u1", Login: "alice", PasswordHash: hashed}

	tests := []struct {
		name       string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    bool
		errMsg     string
	}{
		{
			name:     "successful login",
			password: "correct1",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "alice").Return(user, nil).Once()
				j.On("GenerateToken", "u1", "alice").Return("jwt-token-123", nil).Once()
			},
			wantToken: "jwt-token-123",
		},
		{
			name:     "wrong password",
			password: "wrong1",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "alice").Return(user, nil).Once()
			},
			wantErr: true,
			errMsg:  "invalid credentials",
		},
		{
			name:     "token generation error",
			password: "correct1",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "alice").Return(user, nil).Once()
				j.On("GenerateToken", "u1", "alice").Return("", errors.New("token error")).Once()
			},
			wantErr: true,
			errMsg:  "token error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repo, jwtMock)
			svc := services.NewAuthService(repo, creds, jwtMock)

			token, err := svc.Login(context.Background(), "alice", tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginTokenResolvesToUser(t *testing.T) {
	creds := password.NewBcrypt(bcrypt.MinCost)
	hashed, err := creds.Hash("correct1")
	require.NoError(t, err)

	repo := new(UserRepoMock)
	repo.On("GetUserByLogin", mock.Anything, "alice").
		Return(&models.User{UUID: "u1", Login: "alice", PasswordHash: hashed}, nil).Once()

	maker := customjwt.NewJWTMaker("secret", time.Hour)
	svc := services.NewAuthService(repo, creds, maker)

	token, err := svc.Login(context.Background(), "alice", "correct1")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "alice", claims.Login)
}
