package accounts

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/accounts-service/internal/lib/apperr"
	"github.com/magabrotheeeer/accounts-service/internal/models"
)

// SystemActor логин, которым подписываются изменения, сделанные самим сервисом.
const SystemActor = "system"

// EnsureAdmin создаёт администратора, если хранилище пустое.
// Возвращает true, если запись была создана.
func (m *Manager) EnsureAdmin(ctx context.Context, login, password, displayName string) (bool, error) {
	const op = "accounts.EnsureAdmin"
	log := m.log.With(slog.String("op", op))

	count, err := m.repo.CountUsers(ctx)
	if err != nil {
		return false, storeErr(err)
	}
	if count > 0 {
		log.Debug("users exist, bootstrap skipped", slog.Int("count", count))
		return false, nil
	}

	req := models.NewUser{
		Login:       login,
		Password:    password,
		DisplayName: displayName,
		IsAdmin:     true,
	}
	if err = validateNewUser(req); err != nil {
		return false, err
	}
	hash, err := m.creds.Hash(req.Password)
	if err != nil {
		return false, apperr.Wrap(apperr.KindUnknown, "failed to hash password", err)
	}

	now := m.now().UTC()
	admin := models.User{
		Login:        req.Login,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		IsAdmin:      true,
		CreatedAt:    now,
		CreatedBy:    SystemActor,
		ModifiedAt:   now,
		ModifiedBy:   SystemActor,
	}
	uid, err := m.repo.CreateUser(ctx, admin)
	if err != nil {
		return false, storeErr(err)
	}
	admin.UUID = uid

	m.changed(ctx, models.EventUserCreated, &admin, &models.User{Login: SystemActor})
	log.Info("bootstrap administrator created", slog.String("login", admin.Login), slog.String("user_uid", uid))
	return true, nil
}
