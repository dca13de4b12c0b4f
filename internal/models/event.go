package models

import "time"

// EventType тип события жизненного цикла пользователя.
// Значение совпадает с routing key в брокере.
type EventType string

// События жизненного цикла.
const (
	EventUserCreated         EventType = "user.created"
	EventUserUpdated         EventType = "user.updated"
	EventUserPasswordChanged EventType = "user.password_changed"
	EventUserLoginChanged    EventType = "user.login_changed"
	EventUserRevoked         EventType = "user.revoked"
	EventUserRestored        EventType = "user.restored"
	EventUserDeleted         EventType = "user.deleted"
)

// AllEventTypes перечисляет все типы событий, используется при привязке очереди аудита.
var AllEventTypes = []EventType{
	EventUserCreated,
	EventUserUpdated,
	EventUserPasswordChanged,
	EventUserLoginChanged,
	EventUserRevoked,
	EventUserRestored,
	EventUserDeleted,
}

// UserEvent событие об изменении учётной записи.
type UserEvent struct {
	Type       EventType `json:"type"`
	UserUID    string    `json:"user_uid"`
	Login      string    `json:"login"`
	Actor      string    `json:"actor"` // Логин того, кто выполнил операцию
	OccurredAt time.Time `json:"occurred_at"`
}
