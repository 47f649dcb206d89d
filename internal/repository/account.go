package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/softsales/api/internal/entity"
)

func (r *Repository) CreateAccount(ctx context.Context, a entity.Account) error {
	const q = `
	INSERT INTO accounts (id, login, password_hash, role, created_at)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, a.ID, a.Login, a.PasswordHash, a.Role, a.CreatedAt)

	return err
}

func (r *Repository) AccountByLogin(ctx context.Context, login string) (entity.Account, error) {
	const q = `
	SELECT id, login, password_hash, role, created_at
	FROM accounts
	WHERE login = $1`

	var a entity.Account

	err := r.db.QueryRow(ctx, q, login).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Account{}, fmt.Errorf("account %q: %w", login, entity.ErrNotFound)
	}

	if err != nil {
		return entity.Account{}, err
	}

	return a, nil
}

func (r *Repository) SaveRefreshToken(ctx context.Context, t entity.RefreshToken) error {
	const q = `
	INSERT INTO refresh_tokens (id, user_id, token, expires_at)
	VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, t.ID, t.UserID, t.Token, t.ExpiresAt)

	return err
}

func (r *Repository) RefreshTokenByToken(ctx context.Context, token string) (entity.RefreshToken, error) {
	const q = `
	SELECT id, user_id, token, expires_at
	FROM refresh_tokens
	WHERE token = $1`

	var t entity.RefreshToken

	err := r.db.QueryRow(ctx, q, token).Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.RefreshToken{}, fmt.Errorf("refresh token: %w", entity.ErrNotFound)
	}

	if err != nil {
		return entity.RefreshToken{}, err
	}

	return t, nil
}

func (r *Repository) Account(ctx context.Context, id uuid.UUID) (entity.Account, error) {
	const q = `
	SELECT id, login, password_hash, role, created_at
	FROM accounts
	WHERE id = $1`

	var a entity.Account

	err := r.db.QueryRow(ctx, q, id).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Account{}, fmt.Errorf("account %s: %w", id, entity.ErrNotFound)
	}

	if err != nil {
		return entity.Account{}, err
	}

	return a, nil
}

// RotateRefreshToken replaces the stored token in place, keeping its row.
func (r *Repository) RotateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	const q = `UPDATE refresh_tokens SET token = $1, expires_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, token, expiresAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("refresh token %s: %w", id, entity.ErrNotFound)
	}

	return nil
}

func (r *Repository) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) error {
	const q = `DELETE FROM refresh_tokens WHERE expires_at <= $1`

	_, err := r.db.Exec(ctx, q, now)

	return err
}
