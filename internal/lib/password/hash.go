// Package password реализует проверку учётных данных пользователя.
//
// Bcrypt хранит пароли в виде bcrypt-хешей и сравнивает их с введённым паролем.
// Бизнес-слой зависит только от интерфейса с методами Hash и Verify,
// поэтому способ хранения меняется без изменения правил доступа.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch введённый пароль не соответствует сохранённому.
var ErrMismatch = errors.New("password mismatch")

// Bcrypt проверяет пароли по bcrypt-хешам.
type Bcrypt struct {
	cost int
}

// NewBcrypt создаёт Bcrypt с заданной стоимостью, ноль означает bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля.
func (b *Bcrypt) Hash(raw string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), b.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Verify возвращает nil, если пароль соответствует хешу, иначе ErrMismatch.
func (b *Bcrypt) Verify(stored, raw string) error {
	return CompareHash(stored, raw)
}

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш с DefaultCost.
func GetHash(password string) (string, error) {
	return NewBcrypt(bcrypt.DefaultCost).Hash(password)
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе ошибку, оборачивающую ErrMismatch.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMismatch, err)
	}
	return nil
}
