// Package validate проверяет формат полей учётной записи.
//
// Правила:
//   - логин и пароль: только латинские буквы и цифры (тег alphanum);
//   - имя: только латинские или кириллические буквы (тег letters).
package validate

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator"
)

// TagLetters имя тега для проверки имени пользователя.
const TagLetters = "letters"

var lettersRegexp = regexp.MustCompile(`^[A-Za-z\x{0400}-\x{04FF}]+$`)

// Ошибки формата.
var (
	ErrInvalidLogin       = errors.New("login may contain only latin letters and digits")
	ErrInvalidPassword    = errors.New("password may contain only latin letters and digits")
	ErrInvalidDisplayName = errors.New("name may contain only latin or cyrillic letters")
)

// New возвращает валидатор с зарегистрированным тегом letters. Паникует, если тег не зарегистрировался.
// Используется и в обработчиках для проверки тел запросов.
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(TagLetters, func(fl validator.FieldLevel) bool {
		return lettersRegexp.MatchString(fl.Field().String())
	}); err != nil {
		panic("validate: register " + TagLetters + ": " + err.Error())
	}
	return v
}

var std = New()

// Login проверяет формат логина.
func Login(login string) error {
	if err := std.Var(login, "required,alphanum"); err != nil {
		return ErrInvalidLogin
	}
	return nil
}

// Password проверяет формат пароля.
func Password(password string) error {
	if err := std.Var(password, "required,alphanum"); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// DisplayName проверяет формат имени.
func DisplayName(name string) error {
	if err := std.Var(name, "required,"+TagLetters); err != nil {
		return ErrInvalidDisplayName
	}
	return nil
}
