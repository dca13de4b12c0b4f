// Package apperr описывает таксономию ошибок, которую бизнес-слой возвращает транспортному уровню.
//
// Каждая ошибка несёт Kind (вид результата) и человеко-читаемую причину. Транспорт решает,
// в какой статус-код превратить вид, бизнес-слой про статусы ничего не знает.
package apperr

import (
	"errors"
	"fmt"
)

// Kind вид ошибки бизнес-операции.
type Kind uint8

const (
	// KindUnknown: ошибка не из таксономии.
	KindUnknown Kind = iota
	// KindUnauthenticated: вызывающий не определён (нет токена, токен невалиден, записи нет).
	KindUnauthenticated
	// KindForbidden: вызывающий определён, но прав недостаточно.
	KindForbidden
	// KindValidation: нарушение формата или бизнес-правила.
	KindValidation
	// KindNotFound: целевой идентификатор не найден.
	KindNotFound
	// KindConflict: нарушение уникальности логина.
	KindConflict
	// KindStorage: хранилище недоступно или вернуло ошибку.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Error ошибка бизнес-слоя.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по виду, что позволяет писать errors.Is(err, apperr.ErrForbidden).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Reason == "" && t.Err == nil && t.Kind == e.Kind
}

// Образцы для errors.Is.
var (
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrStorage         = &Error{Kind: KindStorage}
)

// New создаёт ошибку заданного вида.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Wrap создаёт ошибку заданного вида поверх исходной.
func Wrap(kind Kind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// Unauthenticated ошибка неопределённого вызывающего.
func Unauthenticated(reason string) *Error { return New(KindUnauthenticated, reason) }

// Forbidden ошибка недостаточных прав.
func Forbidden(reason string) *Error { return New(KindForbidden, reason) }

// Validation ошибка формата или бизнес-правила.
func Validation(reason string) *Error { return New(KindValidation, reason) }

// NotFound ошибка отсутствующей цели.
func NotFound(reason string) *Error { return New(KindNotFound, reason) }

// Conflict ошибка уникальности.
func Conflict(reason string) *Error { return New(KindConflict, reason) }

// Storage оборачивает ошибку хранилища без изменений.
func Storage(err error) *Error { return Wrap(KindStorage, "storage failure", err) }

// KindOf возвращает вид ошибки или KindUnknown, если ошибка не из таксономии.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ReasonOf возвращает причину ошибки для отображения клиенту.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
