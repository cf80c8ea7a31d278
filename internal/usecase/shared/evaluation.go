package shared

import (
	"fmt"
	"time"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/pricing"
	"rentride/internal/domain/slot"
	"rentride/internal/pkg/errs"
)

// GapError pinpoints the first uncovered instant of a rejected window so the
// client can explain where the booking becomes infeasible.
type GapError struct {
	At time.Time
}

func (e *GapError) Error() string {
	return fmt.Sprintf("availability gap at %s", e.At.UTC().Format(time.RFC3339))
}

// QuoteResult is a fully evaluated window: proven coverage, the governing
// slot, and the price under that slot.
type QuoteResult struct {
	Window       booking.Window
	Governing    slot.Slot
	Contributing []slot.Slot
	Price        pricing.Breakdown
}

// EvaluateQuote runs the full gate for a candidate window: coverage, then
// duration limits under the governing slot, then pricing. A window is never
// priced unless coverage holds.
func EvaluateQuote(w booking.Window, slots []slot.Slot, fees pricing.FeePolicy, sameDay bool) (*QuoteResult, error) {
	if !anyOverlap(w, slots) {
		return nil, errs.Mark(&GapError{At: w.Start()}, errs.ErrNoAvailability)
	}

	coverage := booking.CheckCoverage(w, slots)
	if !coverage.Covered() {
		return nil, errs.Mark(&GapError{At: coverage.GapAt()}, errs.ErrCoverageGap)
	}

	governing, ok := booking.GoverningSlot(w, coverage.Slots())
	if !ok {
		// Coverage guarantees the start instant is inside some slot.
		return nil, errs.New("covered window has no governing slot")
	}

	if err := booking.ValidateDuration(w, governing, sameDay); err != nil {
		return nil, errs.Mark(err, errs.ErrDurationViolation)
	}

	return &QuoteResult{
		Window:       w,
		Governing:    governing,
		Contributing: coverage.Slots(),
		Price:        pricing.Calculate(w, governing, fees),
	}, nil
}

func anyOverlap(w booking.Window, slots []slot.Slot) bool {
	for _, s := range slots {
		if s.Overlaps(w.Start(), w.End()) {
			return true
		}
	}
	return false
}
