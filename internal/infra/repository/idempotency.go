package repository

import (
	"context"
	"time"

	"rentride/internal/infra"
	"rentride/internal/pkg/pgconv"
	"rentride/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// Expired keys are reclaimed in place so a reused key starts a fresh
	// attempt instead of replaying stale state.
	tryInsertIdempotencyKeyQuery = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint           = EXCLUDED.endpoint,
    request_hash       = EXCLUDED.request_hash,
    status             = 'processing',
    response_body_hash = NULL,
    result_booking_id  = NULL,
    expires_at         = EXCLUDED.expires_at,
    updated_at         = NOW()
WHERE idempotency_keys.expires_at < NOW()
`

	getIdempotencyKeyQuery = `
SELECT key, user_id, request_hash, status, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

	updateIdempotencyKeyCompletedQuery = `
UPDATE idempotency_keys
SET status = 'completed', response_body_hash = $3, result_booking_id = $4, updated_at = NOW()
WHERE key = $1 AND user_id = $2
`

	deleteExpiredIdempotencyKeysQuery = `
DELETE FROM idempotency_keys
WHERE expires_at < NOW()
`
)

type IdempotencyRepository struct {
	db *pgxpool.Pool
}

func NewIdempotencyRepository(db *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, tryInsertIdempotencyKeyQuery, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	var (
		rm              commands.IdempotencyRecord
		resultBookingID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, getIdempotencyKeyQuery, key, userID).Scan(
		&rm.Key,
		&rm.UserID,
		&rm.RequestHash,
		&rm.Status,
		&resultBookingID,
		&rm.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	if resultBookingID.Valid {
		id := uuid.UUID(resultBookingID.Bytes)
		rm.ResultBookingID = &id
	}

	// Check if key has expired (treat as not found)
	if time.Now().After(rm.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return &rm, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx pgx.Tx, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error {
	_, err := tx.Exec(ctx, updateIdempotencyKeyCompletedQuery, key, userID, responseBodyHash, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysQuery)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return tag.RowsAffected(), nil
}
