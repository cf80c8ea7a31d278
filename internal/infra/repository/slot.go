package repository

import (
	"context"
	"time"

	"rentride/internal/domain/slot"
	"rentride/internal/infra"
	"rentride/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const activeSlotsQuery = `
SELECT id, vehicle_id, start_datetime, end_datetime,
       hourly_rate, daily_rate, min_rental_hours, max_rental_hours, is_active
FROM availability_slots
WHERE vehicle_id = $1
  AND is_active = TRUE
ORDER BY start_datetime
`

// SlotRepository loads the published availability slots. It serves both the
// quote read path and the submit-time re-validation, so every call hits the
// database; slots are never cached.
type SlotRepository struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) ActiveSlots(ctx context.Context, vehicleID uuid.UUID) ([]slot.Slot, error) {
	rows, err := r.db.Query(ctx, activeSlotsQuery, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability slots", err)
	}
	defer rows.Close()

	var slots []slot.Slot
	for rows.Next() {
		var (
			id, vID    uuid.UUID
			start, end time.Time
			hourlyRate int64
			dailyRate  pgtype.Int8
			minHours   int
			maxHours   int
			isActive   bool
		)
		if err := rows.Scan(&id, &vID, &start, &end, &hourlyRate, &dailyRate, &minHours, &maxHours, &isActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability slot", err)
		}

		s, err := slot.NewSlot(id, vID, start, end, hourlyRate, pgconv.Int64PtrFromPgtype(dailyRate), minHours, maxHours, isActive)
		if err != nil {
			return nil, infra.WrapRepoErr("stored slot failed validation", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability slots", err)
	}

	return slots, nil
}
