package queries

import (
	"context"
	"time"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/pricing"
	"rentride/internal/infra"
	"rentride/internal/pkg/errs"
	"rentride/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteQueries interface {
	Evaluate(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, sameDay bool) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	vehicleRepo VehicleRepository
	slotReader  SlotReader
	fees        pricing.FeePolicy
}

func NewQuoteQueries(vehicleRepo VehicleRepository, slotReader SlotReader, fees pricing.FeePolicy) QuoteQueries {
	return &quoteQueriesImpl{
		vehicleRepo: vehicleRepo,
		slotReader:  slotReader,
		fees:        fees,
	}
}

func (q *quoteQueriesImpl) Evaluate(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, sameDay bool) (*QuoteView, error) {
	window, err := booking.NewWindow(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWindow)
	}

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

	result, err := shared.EvaluateQuote(window, slots, q.fees, sameDay)
	if err != nil {
		return nil, err
	}

	return toQuoteView(result), nil
}

func toQuoteView(r *shared.QuoteResult) *QuoteView {
	contributing := make([]uuid.UUID, len(r.Contributing))
	for i, s := range r.Contributing {
		contributing[i] = s.ID()
	}

	return &QuoteView{
		BaseAmount:          r.Price.BaseAmount.Amount(),
		SecurityDeposit:     r.Price.SecurityDeposit.Amount(),
		PlatformFee:         r.Price.PlatformFee.Amount(),
		Total:               r.Price.Total.Amount(),
		Hours:               r.Price.Hours,
		Breakdown:           r.Price.Description,
		UsedDailyRate:       r.Price.UsedDailyRate,
		GoverningSlotID:     r.Governing.ID(),
		ContributingSlotIDs: contributing,
	}
}
