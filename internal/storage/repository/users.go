package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/accounts-service/internal/models"
)

const userColumns = `uid, login, password_hash, display_name, gender, birthday, is_admin,
			      created_at, created_by, modified_at, modified_by, revoked_at, revoked_by`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u         models.User
		birthday  sql.NullTime
		revokedAt sql.NullTime
	)
	if err := row.Scan(&u.UUID, &u.Login, &u.PasswordHash, &u.DisplayName, &u.Gender, &birthday,
		&u.IsAdmin, &u.CreatedAt, &u.CreatedBy, &u.ModifiedAt, &u.ModifiedBy, &revokedAt, &u.RevokedBy); err != nil {
		return nil, err
	}
	if birthday.Valid {
		u.Birthday = &birthday.Time
	}
	if revokedAt.Valid {
		u.RevokedAt = &revokedAt.Time
	}
	return &u, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// CreateUser сохраняет нового пользователя в базу данных и возвращает его UID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO users (login, password_hash, display_name, gender, birthday, is_admin,
			      created_at, created_by, modified_at, modified_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Login, user.PasswordHash, user.DisplayName, user.Gender, nullTime(user.Birthday), user.IsAdmin,
		user.CreatedAt, user.CreatedBy, user.ModifiedAt, user.ModifiedBy).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrLoginTaken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	// некорректный UUID не может указывать на запись
	if _, err := uuid.Parse(userUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE uid = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByLogin возвращает пользователя по точному совпадению логина.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE login = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, login))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// LoginTaken проверяет, занят ли логин какой-либо записью, кроме exceptUID.
// Пустой exceptUID означает проверку по всем записям.
func (s *Storage) LoginTaken(ctx context.Context, login, exceptUID string) (bool, error) {
	const op = "storage.LoginTaken"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM users
			      WHERE login = $1 AND ($2 = '' OR uid::text <> $2)
			  )`
	var taken bool
	if err := s.DB.QueryRowContext(ctx, query, login, exceptUID).Scan(&taken); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return taken, nil
}

// UpdateUser перезаписывает изменяемые поля пользователя.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) error {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET login = $1, password_hash = $2, display_name = $3, gender = $4, birthday = $5,
			      is_admin = $6, modified_at = $7, modified_by = $8, revoked_at = $9, revoked_by = $10
			  WHERE uid = $11`
	result, err := s.DB.ExecContext(ctx, query,
		user.Login, user.PasswordHash, user.DisplayName, user.Gender, nullTime(user.Birthday),
		user.IsAdmin, user.ModifiedAt, user.ModifiedBy, nullTime(user.RevokedAt), user.RevokedBy, user.UUID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrLoginTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// RemoveUser безвозвратно удаляет пользователя.
func (s *Storage) RemoveUser(ctx context.Context, userUID string) error {
	const op = "storage.RemoveUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := uuid.Parse(userUID); err != nil {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE uid = $1`, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// ListActiveUsers возвращает неудалённых пользователей в порядке создания.
func (s *Storage) ListActiveUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListActiveUsers"
	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE revoked_at IS NULL
			  ORDER BY created_at`
	return s.listUsers(ctx, op, query)
}

// ListUsersBornBefore возвращает пользователей с датой рождения строго раньше date.
// Пользователи без даты рождения не попадают в выборку.
func (s *Storage) ListUsersBornBefore(ctx context.Context, date time.Time) ([]*models.User, error) {
	const op = "storage.ListUsersBornBefore"
	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE birthday < $1
			  ORDER BY created_at`
	return s.listUsers(ctx, op, query, date)
}

// CountUsers возвращает общее количество записей, включая мягко удалённые.
func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.CountUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

func (s *Storage) listUsers(ctx context.Context, op, query string, args ...any) ([]*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
