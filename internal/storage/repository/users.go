package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

const userColumns = `id, email, name, avatar_url, subscription_type,
			      subscription_expires_at, trial_ends_at, created_at, updated_at`

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var avatarURL sql.NullString
	var subscriptionExpiresAt, trialEndsAt sql.NullTime
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &avatarURL, &u.SubscriptionType,
		&subscriptionExpiresAt, &trialEndsAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if avatarURL.Valid {
		u.AvatarURL = &avatarURL.String
	}
	if subscriptionExpiresAt.Valid {
		u.SubscriptionExpiresAt = &subscriptionExpiresAt.Time
	}
	if trialEndsAt.Valid {
		u.TrialEndsAt = &trialEndsAt.Time
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя и возвращает созданную запись.
// Нарушение уникальности электронной почты транслируется в ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, name, avatar_url, subscription_type, trial_ends_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + userColumns
	row := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Name, user.AvatarURL, user.SubscriptionType, user.TrialEndsAt)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// UserExists проверяет существование пользователя по его ID.
func (s *Storage) UserExists(ctx context.Context, id int) (bool, error) {
	const op = "storage.UserExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// UpdateUser применяет частичное обновление пользователя и возвращает
// обновлённую запись. Обновляются только заданные поля, updated_at — всегда.
// Отсутствие записи транслируется в ErrNotFound.
func (s *Storage) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sets := []string{"updated_at = now()"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if patch.Email.Set {
		sets = append(sets, "email = "+arg(patch.Email.Value))
	}
	if patch.Name.Set {
		sets = append(sets, "name = "+arg(patch.Name.Value))
	}
	if patch.AvatarURL.Set {
		sets = append(sets, "avatar_url = "+arg(patch.AvatarURL.Value))
	}
	if patch.SubscriptionType.Set {
		sets = append(sets, "subscription_type = "+arg(patch.SubscriptionType.Value))
	}
	if patch.SubscriptionExpiresAt.Set {
		sets = append(sets, "subscription_expires_at = "+arg(patch.SubscriptionExpiresAt.Value))
	}
	if patch.TrialEndsAt.Set {
		sets = append(sets, "trial_ends_at = "+arg(patch.TrialEndsAt.Value))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args))
	row := s.DB.QueryRowContext(ctx, query, args...)

	updated, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}
