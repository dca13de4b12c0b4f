package accounts

import (
	"context"

	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/lib/validate"
	"github.com/magabrotheeeer/accounts-service/internal/models"
	"github.com/magabrotheeeer/accounts-service/internal/services/permission"
)

// Create создаёт учётную запись от имени caller и возвращает сохранённую запись.
func (m *Manager) Create(ctx context.Context, caller *models.User, req models.NewUser) (_ *models.User, err error) {
	defer func() { m.observe("create", err) }()

	if err = permission.Authorize(permission.Request{
		Caller:     caller,
		Action:     permission.ActionCreate,
		GrantAdmin: req.IsAdmin,
	}); err != nil {
		return nil, err
	}
	if err = validateNewUser(req); err != nil {
		return nil, err
	}

	taken, err := m.repo.LoginTaken(ctx, req.Login, "")
	if err != nil {
		return nil, storeErr(err)
	}
	if taken {
		return nil, apperr.Conflict("login already taken")
	}

	hash, err := m.creds.Hash(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to hash password", err)
	}

	now := m.now().UTC()
	user := models.User{
		Login:        req.Login,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Gender:       req.Gender,
		Birthday:     req.Birthday,
		IsAdmin:      req.IsAdmin,
		CreatedAt:    now,
		CreatedBy:    caller.Login,
		ModifiedAt:   now,
		ModifiedBy:   caller.Login,
	}
	// уникальный индекс остаётся арбитром при гонке двух созданий
	uid, err := m.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, storeErr(err)
	}
	user.UUID = uid

	m.changed(ctx, models.EventUserCreated, &user, caller)
	return &user, nil
}

func validateNewUser(req models.NewUser) error {
	if err := validate.Login(req.Login); err != nil {
		return apperr.Validation(err.Error())
	}
	if err := validate.Password(req.Password); err != nil {
		return apperr.Validation(err.Error())
	}
	if err := validate.DisplayName(req.DisplayName); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}

// UpdateProfile применяет переданные поля профиля. Отсутствующие поля не меняются.
func (m *Manager) UpdateProfile(ctx context.Context, caller *models.User, targetUID string, upd models.ProfileUpdate) (err error) {
	defer func() { m.observe("update_profile", err) }()

	target, err := m.authorizeEdit(ctx, caller, targetUID, permission.ActionUpdateProfile, func() error {
		if upd.DisplayName == nil {
			return nil
		}
		if err := validate.DisplayName(*upd.DisplayName); err != nil {
			return apperr.Validation(err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}
	if upd.IsEmpty() {
		return nil
	}

	if upd.DisplayName != nil {
		target.DisplayName = *upd.DisplayName
	}
	if upd.Gender != nil {
		target.Gender = *upd.Gender
	}
	if upd.Birthday != nil {
		birthday := *upd.Birthday
		target.Birthday = &birthday
	}

	if err = m.persist(ctx, target, caller); err != nil {
		return err
	}
	m.changed(ctx, models.EventUserUpdated, target, caller)
	return nil
}

// ChangePassword заменяет пароль целевой записи.
func (m *Manager) ChangePassword(ctx context.Context, caller *models.User, targetUID, newPassword string) (err error) {
	defer func() { m.observe("change_password", err) }()

	target, err := m.authorizeEdit(ctx, caller, targetUID, permission.ActionChangePassword, func() error {
		if err := validate.Password(newPassword); err != nil {
			return apperr.Validation(err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}
	hash, err := m.creds.Hash(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.KindUnknown, "failed to hash password", err)
	}
	target.PasswordHash = hash

	if err = m.persist(ctx, target, caller); err != nil {
		return err
	}
	m.changed(ctx, models.EventUserPasswordChanged, target, caller)
	return nil
}

// ChangeLogin меняет логин целевой записи. Логин должен быть свободен среди остальных записей.
func (m *Manager) ChangeLogin(ctx context.Context, caller *models.User, targetUID, newLogin string) (err error) {
	defer func() { m.observe("change_login", err) }()

	target, err := m.authorizeEdit(ctx, caller, targetUID, permission.ActionChangeLogin, func() error {
		if err := validate.Login(newLogin); err != nil {
			return apperr.Validation(err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}
	taken, err := m.repo.LoginTaken(ctx, newLogin, target.UUID)
	if err != nil {
		return storeErr(err)
	}
	if taken {
		return apperr.Conflict("login already taken")
	}
	target.Login = newLogin

	if err = m.persist(ctx, target, caller); err != nil {
		return err
	}
	m.changed(ctx, models.EventUserLoginChanged, target, caller)
	return nil
}

// Restore снимает отметку об удалении. Для активной записи ничего не делает.
func (m *Manager) Restore(ctx context.Context, caller *models.User, targetUID string) (err error) {
	defer func() { m.observe("restore", err) }()

	if err = permission.Authorize(permission.Request{
		Caller:    caller,
		TargetUID: targetUID,
		Action:    permission.ActionRestore,
	}); err != nil {
		return err
	}

	target, err := m.loadTarget(ctx, targetUID)
	if err != nil {
		return err
	}
	if !target.IsRevoked() {
		return nil
	}
	target.RevokedAt = nil
	target.RevokedBy = ""

	if err = m.persist(ctx, target, caller); err != nil {
		return err
	}
	m.changed(ctx, models.EventUserRestored, target, caller)
	return nil
}

// Delete удаляет запись: мягко (отметка revokedAt/revokedBy) или полностью при isFull.
func (m *Manager) Delete(ctx context.Context, caller *models.User, targetUID string, isFull bool) (err error) {
	defer func() { m.observe("delete", err) }()

	if err = permission.Authorize(permission.Request{
		Caller:    caller,
		TargetUID: targetUID,
		Action:    permission.ActionDelete,
	}); err != nil {
		return err
	}

	target, err := m.loadTarget(ctx, targetUID)
	if err != nil {
		return err
	}

	if isFull {
		if err = m.repo.RemoveUser(ctx, target.UUID); err != nil {
			return storeErr(err)
		}
		m.changed(ctx, models.EventUserDeleted, target, caller)
		return nil
	}

	now := m.now().UTC()
	target.RevokedAt = &now
	target.RevokedBy = caller.Login
	if err = m.persist(ctx, target, caller); err != nil {
		return err
	}
	m.changed(ctx, models.EventUserRevoked, target, caller)
	return nil
}

// authorizeEdit проверяет право caller изменить запись targetUID, затем формат входных данных,
// и возвращает загруженную цель. При правке самого себя признак удаления берётся из хранилища:
// caller мог быть прочитан из кеша до мягкого удаления.
func (m *Manager) authorizeEdit(ctx context.Context, caller *models.User, targetUID string, action permission.Action, check func() error) (*models.User, error) {
	req := permission.Request{Caller: caller, TargetUID: targetUID, Action: action}

	if caller == nil || caller.UUID == "" || caller.UUID != targetUID {
		if err := permission.Authorize(req); err != nil {
			return nil, err
		}
		if err := check(); err != nil {
			return nil, err
		}
		return m.loadTarget(ctx, targetUID)
	}

	target, err := m.loadTarget(ctx, targetUID)
	if err != nil {
		return nil, err
	}
	fresh := *caller
	fresh.RevokedAt = target.RevokedAt
	fresh.RevokedBy = target.RevokedBy
	req.Caller = &fresh
	if err := permission.Authorize(req); err != nil {
		return nil, err
	}
	if err := check(); err != nil {
		return nil, err
	}
	return target, nil
}

func (m *Manager) loadTarget(ctx context.Context, targetUID string) (*models.User, error) {
	target, err := m.repo.GetUser(ctx, targetUID)
	if err != nil {
		return nil, storeErr(err)
	}
	return target, nil
}

// persist ставит отметку об изменении и сохраняет запись.
func (m *Manager) persist(ctx context.Context, target *models.User, caller *models.User) error {
	target.ModifiedAt = m.now().UTC()
	target.ModifiedBy = caller.Login
	if err := m.repo.UpdateUser(ctx, *target); err != nil {
		return storeErr(err)
	}
	return nil
}
