package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avilovaa/kinship/auth-service/internal/models"
	"github.com/avilovaa/kinship/auth-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuthRecordByUserID находит запись аутентификации по владельцу.
func (s *Storage) AuthRecordByUserID(ctx context.Context, userID uuid.UUID) (*models.AuthRecord, error) {
	const op = "storage.postgres.AuthRecordByUserID"

	query := `
        SELECT user_id, access_token, refresh_token, previous_refresh_token, created_at, updated_at
        FROM auth_records
        WHERE user_id = $1
    `

	var record models.AuthRecord
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&record.UserID,
		&record.Access,
		&record.Refresh,
		&record.PrevRefresh,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

// UpsertAuthRecord создаёт запись либо перезаписывает её поля на месте.
// created_at выставляется только при вставке; содержимое полей целиком
// определяется движком ротации (last-writer-wins при конкурентной записи).
func (s *Storage) UpsertAuthRecord(ctx context.Context, record *models.AuthRecord) error {
	const op = "storage.postgres.UpsertAuthRecord"

	query := `
        INSERT INTO auth_records(user_id, access_token, refresh_token, previous_refresh_token, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id) DO UPDATE SET
            access_token = EXCLUDED.access_token,
            refresh_token = EXCLUDED.refresh_token,
            previous_refresh_token = EXCLUDED.previous_refresh_token,
            updated_at = EXCLUDED.updated_at
    `

	_, err := s.db.Exec(ctx, query,
		record.UserID,
		record.Access,
		record.Refresh,
		record.PrevRefresh,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
