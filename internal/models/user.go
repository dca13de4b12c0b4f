// Package models содержит доменную модель учётной записи пользователя,
// проекции для чтения и структуры частичного обновления.
// Структуры используются в бизнес‑логике, хранилище и транспортном слое.
package models

import "time"

// User представляет учётную запись пользователя.
// Наличие RevokedAt означает мягкое удаление.
type User struct {
	UUID         string     `json:"id"`           // Уникальный идентификатор, неизменяем после создания
	Login        string     `json:"login"`        // Логин (уникальный, только латиница и цифры)
	PasswordHash string     `json:"-"`            // Хэш пароля, наружу не отдаётся
	DisplayName  string     `json:"display_name"` // Имя (латиница или кириллица)
	Gender       int        `json:"gender"`       // Код пола, не валидируется
	Birthday     *time.Time `json:"birthday,omitempty"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `json:"created_by"`
	ModifiedAt   time.Time  `json:"modified_at"`
	ModifiedBy   string     `json:"modified_by"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	RevokedBy    string     `json:"revoked_by,omitempty"`
}

// IsRevoked сообщает, удалена ли запись мягко.
func (u *User) IsRevoked() bool {
	return u.RevokedAt != nil
}

// PublicProfile сокращённая проекция пользователя для поиска по логину.
type PublicProfile struct {
	DisplayName string     `json:"display_name"`
	Gender      int        `json:"gender"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// Profile возвращает публичную проекцию пользователя.
func (u *User) Profile() PublicProfile {
	return PublicProfile{
		DisplayName: u.DisplayName,
		Gender:      u.Gender,
		Birthday:    u.Birthday,
		IsActive:    !u.IsRevoked(),
	}
}

// NewUser запрос на создание пользователя.
type NewUser struct {
	Login       string
	Password    string
	DisplayName string
	Gender      int
	Birthday    *time.Time
	IsAdmin     bool
}

// ProfileUpdate набор изменяемых полей профиля.
// nil означает, что поле не передано и остаётся без изменений.
type ProfileUpdate struct {
	DisplayName *string
	Gender      *int
	Birthday    *time.Time
}

// IsEmpty сообщает, что ни одно поле не передано.
func (p ProfileUpdate) IsEmpty() bool {
	return p.DisplayName == nil && p.Gender == nil && p.Birthday == nil
}
