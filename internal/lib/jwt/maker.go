// Package jwt реализует выпуск и проверку подписанных токенов идентичности.
//
// Maker определяет интерфейс для создания и проверки JWT токенов.
// MakerImpl: конкретная реализация с HMAC-SHA256, сроком жизни, издателем и аудиторией.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Subject токена содержит идентификатор пользователя, по нему резолвится вызывающий.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с указанным UID и логином.
	GenerateToken(userUID, login string) (string, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
	issuer    string
	audience  string
	now       func() time.Time
}

// Option настраивает MakerImpl.
type Option func(*MakerImpl)

// WithIssuer задаёт издателя (claim iss), проверяется при парсинге.
func WithIssuer(issuer string) Option {
	return func(m *MakerImpl) { m.issuer = issuer }
}

// WithAudience задаёт аудиторию (claim aud), проверяется при парсинге.
func WithAudience(audience string) Option {
	return func(m *MakerImpl) { m.audience = audience }
}

// WithClock подменяет часы, используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) { m.now = now }
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration, opts ...Option) *MakerImpl {
	m := &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
