// Package services содержит проверку логина и пароля и выпуск токенов идентичности.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

// UserRepository описывает контракт для поиска пользователя по логину.
type UserRepository interface {
	// GetUserByLogin возвращает пользователя по логину или repository.ErrUserNotFound.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

// Credentials проверяет пароль по сохранённому хешу.
type Credentials interface {
	Verify(stored, raw string) error
}

// TokenIssuer выпускает подписанный токен для пользователя.
type TokenIssuer interface {
	GenerateToken(userUID, login string) (string, error)
}

// ErrInvalidCredentials логин не найден или пароль не подошёл.
var ErrInvalidCredentials = apperr.Unauthenticated("invalid credentials")

// AuthService отвечает за аутентификацию и выпуск токенов.
type AuthService struct {
	users  UserRepository
	creds  Credentials
	tokens TokenIssuer
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, creds Credentials, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		creds:  creds,
		tokens: tokens,
	}
}

// Authenticate ищет пользователя по точному совпадению логина и проверяет пароль.
// Удалённые учётные записи не отклоняются.
func (s *AuthService) Authenticate(ctx context.Context, login, rawPassword string) (*models.User, error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if err := s.creds.Verify(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login аутентифицирует пользователя и выпускает токен, subject которого равен UID.
func (s *AuthService) Login(ctx context.Context, login, rawPassword string) (string, error) {
	user, err := s.Authenticate(ctx, login, rawPassword)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.GenerateToken(user.UUID, user.Login)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnknown, "failed to issue token", err)
	}
	return token, nil
}
