package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SavePasswordDigest добавляет новый дайджест пароля (история append-only).
func (s *Storage) SavePasswordDigest(ctx context.Context, digest *models.PasswordDigest) error {
	const op = "storage.postgres.SavePasswordDigest"

	query := `
        INSERT INTO password_digests(user_id, digest, created_at)
        VALUES ($1, $2, $3)
    `

	_, err := s.db.Exec(ctx, query,
		digest.UserID,
		digest.Digest,
		digest.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LatestPasswordDigest возвращает самый свежий дайджест пользователя.
func (s *Storage) LatestPasswordDigest(ctx context.Context, userID uuid.UUID) (*models.PasswordDigest, error) {
	const op = "storage.postgres.LatestPasswordDigest"

	query := `
        SELECT user_id, digest, created_at
        FROM password_digests
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT 1
    `

	var digest models.PasswordDigest
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&digest.UserID,
		&digest.Digest,
		&digest.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &digest, nil
}

// SaveOneTimeToken сохраняет хэш выпущенного одноразового токена.
func (s *Storage) SaveOneTimeToken(ctx context.Context, token *models.OneTimeToken) error {
	const op = "storage.postgres.SaveOneTimeToken"

	query := `
        INSERT INTO one_time_tokens(token_hash, user_id, kind, created_at, expires_at, used)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := s.db.Exec(ctx, query,
		token.TokenHash,
		token.UserID,
		token.Kind,
		token.CreatedAt,
		token.ExpiresAt,
		token.Used,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeOneTimeToken пытается погасить одноразовый токен.
// Возвращает:
//
//	(true, nil)  — токен был активен и погашен сейчас;
//	(false, nil) — токен существует, но уже был использован;
//	(false, ErrNotFound) — токен не найден.
func (s *Storage) ConsumeOneTimeToken(ctx context.Context, hash string) (bool, error) {
	const op = "storage.postgres.ConsumeOneTimeToken"

	const upd = `
		UPDATE one_time_tokens
		SET used = TRUE
		WHERE token_hash = $1 AND used = FALSE
		RETURNING user_id
	`

	var userID string
	err := s.db.QueryRow(ctx, upd, hash).Scan(&userID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	const sel = `
		SELECT used
		FROM one_time_tokens
		WHERE token_hash = $1
	`

	var used bool
	err = s.db.QueryRow(ctx, sel, hash).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return false, nil
}

// DeleteExpiredOneTimeTokens удаляет все просроченные одноразовые токены.
func (s *Storage) DeleteExpiredOneTimeTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredOneTimeTokens"

	query := `
        DELETE FROM one_time_tokens
        WHERE expires_at <= $1
    `

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
