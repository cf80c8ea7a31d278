package readrepo

import (
	"context"

	"rentride/internal/infra"
	"rentride/internal/pkg/pgconv"
	"rentride/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	getBookingByIDQuery = `
SELECT id, vehicle_id, user_id, slot_id,
       start_datetime, end_datetime,
       base_amount, security_deposit, platform_fee, total,
       hours, breakdown, used_daily_rate, status,
       created_at, updated_at
FROM bookings
WHERE id = $1
`

	getBookingsByUserIDQuery = `
SELECT id, vehicle_id, start_datetime, end_datetime, total, status, created_at
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC
`
)

type BookingViewRepository struct {
	db *pgxpool.Pool
}

func NewBookingViewRepository(db *pgxpool.Pool) *BookingViewRepository {
	return &BookingViewRepository{db: db}
}

func (r *BookingViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var rm queries.BookingView
	err := r.db.QueryRow(ctx, getBookingByIDQuery, id).Scan(
		&rm.ID,
		&rm.VehicleID,
		&rm.UserID,
		&rm.SlotID,
		&rm.StartDatetime,
		&rm.EndDatetime,
		&rm.BaseAmount,
		&rm.SecurityDeposit,
		&rm.PlatformFee,
		&rm.Total,
		&rm.Hours,
		&rm.Breakdown,
		&rm.UsedDailyRate,
		&rm.Status,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &rm, nil
}

func (r *BookingViewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, getBookingsByUserIDQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID,
			&item.VehicleID,
			&item.StartDatetime,
			&item.EndDatetime,
			&item.Total,
			&item.Status,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}
