package accounts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/accounts-service/internal/cache"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/lib/jwt"
	"github.com/magabrotheeeer/accounts-service/internal/lib/sl"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

// TokenParser проверяет токен и возвращает его claims.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// Resolver определяет вызывающего по токену.
type Resolver struct {
	repo   UserRepository
	tokens TokenParser
	cache  Cache
	ttl    time.Duration
	log    *slog.Logger
}

// NewResolver создаёт Resolver. cache может быть nil, тогда каждый запрос читает хранилище.
func NewResolver(repo UserRepository, tokens TokenParser, cache Cache, ttl time.Duration, log *slog.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		tokens: tokens,
		cache:  cache,
		ttl:    ttl,
		log:    log,
	}
}

// ResolveCaller возвращает запись пользователя, на которого выписан токен.
// Хеш пароля в возвращаемой записи может отсутствовать.
func (r *Resolver) ResolveCaller(ctx context.Context, token string) (*models.User, error) {
	claims, err := r.tokens.ParseToken(token)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnauthenticated, "invalid token", err)
	}
	userUID := claims.Subject
	if userUID == "" {
		return nil, apperr.Unauthenticated("token has no subject")
	}

	key := cache.IdentityKey(userUID)
	if r.cache != nil {
		var cached models.User
		found, err := r.cache.Get(ctx, key, &cached)
		if err != nil {
			r.log.Warn("identity cache read failed", slog.String("user_uid", userUID), sl.Err(err))
		}
		if found && cached.UUID == userUID {
			return &cached, nil
		}
	}

	user, err := r.repo.GetUser(ctx, userUID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Unauthenticated("caller not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, user, r.ttl); err != nil {
			r.log.Warn("identity cache write failed", slog.String("user_uid", userUID), sl.Err(err))
		}
	}
	return user, nil
}
