package queries

import (
	"context"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/slot"
	"rentride/internal/infra"
	"rentride/internal/pkg/errs"

	"github.com/google/uuid"
)

// SlotReader supplies the published availability slots for one vehicle.
// Only active slots reach the engine; inactive ones are filtered at the
// repository boundary.
type SlotReader interface {
	ActiveSlots(ctx context.Context, vehicleID uuid.UUID) ([]slot.Slot, error)
}

type AvailabilityQueries interface {
	HourOptions(ctx context.Context, vehicleID uuid.UUID, date booking.Date) ([]*HourOptionView, error)
}

type availabilityQueriesImpl struct {
	vehicleRepo VehicleRepository
	slotReader  SlotReader
}

func NewAvailabilityQueries(vehicleRepo VehicleRepository, slotReader SlotReader) AvailabilityQueries {
	return &availabilityQueriesImpl{
		vehicleRepo: vehicleRepo,
		slotReader:  slotReader,
	}
}

func (q *availabilityQueriesImpl) HourOptions(ctx context.Context, vehicleID uuid.UUID, date booking.Date) ([]*HourOptionView, error) {
	if _, err := q.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Wrap(err, "failed to find vehicle")
	}

	slots, err := q.slotReader.ActiveSlots(ctx, vehicleID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load availability slots")
	}

	options := booking.HourOptions(date, slots)

	// Empty is a valid outcome: the vehicle simply has no availability that day.
	views := make([]*HourOptionView, len(options))
	for i, opt := range options {
		view := &HourOptionView{
			Hour:       opt.Hour,
			SlotID:     opt.Slot.ID(),
			HourlyRate: opt.Slot.HourlyRate(),
		}
		if daily, ok := opt.Slot.DailyRate(); ok {
			view.DailyRate = &daily
		}
		views[i] = view
	}

	return views, nil
}
