package accounts

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/accounts-service/internal/lib/age"
	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	"github.com/magabrotheeeer/accounts-service/internal/services/permission"
	"github.com/magabrotheeeer/accounts-service/internal/storage/repository"
)

// ViewSelf возвращает запись вызывающего.
func (m *Manager) ViewSelf(_ context.Context, caller *models.User) (*models.User, error) {
	if err := permission.Authorize(permission.Request{Caller: caller, Action: permission.ActionViewSelf}); err != nil {
		return nil, err
	}
	return caller, nil
}

// ListActive возвращает неудалённые записи в порядке создания.
func (m *Manager) ListActive(ctx context.Context, caller *models.User) (_ []*models.User, err error) {
	defer func() { m.observe("list_active", err) }()

	if err = permission.Authorize(permission.Request{Caller: caller, Action: permission.ActionList}); err != nil {
		return nil, err
	}
	users, err := m.repo.ListActiveUsers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// FindByLogin возвращает публичный профиль пользователя, включая удалённых.
func (m *Manager) FindByLogin(ctx context.Context, caller *models.User, login string) (_ *models.PublicProfile, err error) {
	defer func() { m.observe("find_by_login", err) }()

	if err = permission.Authorize(permission.Request{Caller: caller, Action: permission.ActionLookup}); err != nil {
		return nil, err
	}
	user, err := m.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, storeErr(err)
	}
	profile := user.Profile()
	return &profile, nil
}

// FindByAge возвращает пользователей, родившихся раньше чем minAgeYears лет назад от сегодняшнего дня.
func (m *Manager) FindByAge(ctx context.Context, caller *models.User, minAgeYears int) (_ []*models.User, err error) {
	defer func() { m.observe("find_by_age", err) }()

	if err = permission.Authorize(permission.Request{Caller: caller, Action: permission.ActionLookup}); err != nil {
		return nil, err
	}
	if minAgeYears < 0 {
		return nil, apperr.Validation("age must not be negative")
	}
	users, err := m.repo.ListUsersBornBefore(ctx, age.Cutoff(m.now(), minAgeYears))
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// VerifySelf повторно проверяет учётные данные вызывающего.
// Проверять можно только свой логин.
func (m *Manager) VerifySelf(ctx context.Context, caller *models.User, login, password string) (_ *models.User, err error) {
	defer func() { m.observe("verify_self", err) }()

	if err = permission.Authorize(permission.Request{Caller: caller, Action: permission.ActionViewSelf}); err != nil {
		return nil, err
	}
	if login != caller.Login {
		return nil, apperr.Forbidden("cannot verify credentials of another user")
	}

	// запись из кеша не содержит хеша пароля, поэтому читаем из хранилища
	user, err := m.repo.GetUserByLogin(ctx, login)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return nil, storeErr(err)
	}
	if err = m.creds.Verify(user.PasswordHash, password); err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	return user, nil
}
