package repository

import (
	"context"

	"rentride/internal/domain/booking"
	"rentride/internal/infra"
	"rentride/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const insertBookingQuery = `
INSERT INTO bookings (
	id, vehicle_id, user_id, slot_id,
	start_datetime, end_datetime,
	base_amount, security_deposit, platform_fee, total,
	hours, breakdown, used_daily_rate, status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING id
`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts a confirmed booking inside the caller's transaction. The
// bookings table carries an exclusion constraint on overlapping windows per
// vehicle; a violation means another booking won the race.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error) {
	price := b.Price()

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertBookingQuery,
		b.ID(),
		b.VehicleID(),
		b.UserID(),
		b.SlotID(),
		b.Window().Start(),
		b.Window().End(),
		price.BaseAmount,
		price.SecurityDeposit,
		price.PlatformFee,
		price.Total,
		price.Hours,
		price.Description,
		price.UsedDailyRate,
		string(b.Status()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) || pgconv.IsExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking window conflicts with an existing booking", err, infra.KindConflict)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking references a missing vehicle or slot", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	return id, nil
}
