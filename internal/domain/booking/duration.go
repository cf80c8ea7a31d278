package booking

import (
	"fmt"

	"rentride/internal/domain/slot"
)

type DurationBound string

const (
	BoundMinimum    DurationBound = "minimum"
	BoundSameDayMax DurationBound = "same_day_maximum"
)

// DurationError reports which rental-hour bound a window violates, carrying
// the limit and the actual duration so callers can explain the rejection.
type DurationError struct {
	Bound      DurationBound
	LimitHours int
	Hours      float64
}

func (e *DurationError) Error() string {
	switch e.Bound {
	case BoundMinimum:
		return fmt.Sprintf("rental duration %.2gh is below the minimum of %dh", e.Hours, e.LimitHours)
	case BoundSameDayMax:
		return fmt.Sprintf("rental duration %.2gh exceeds the same-day maximum of %dh", e.Hours, e.LimitHours)
	default:
		return fmt.Sprintf("rental duration %.2gh violates the %s bound of %dh", e.Hours, e.Bound, e.LimitHours)
	}
}

// ValidateDuration applies the governing slot's hour limits to the window.
// The maximum applies only to same-day bookings: multi-day rentals are
// intentionally exempt from the cap.
func ValidateDuration(w Window, governing slot.Slot, sameDay bool) error {
	hours := w.ExactHours()

	if hours < float64(governing.MinRentalHours()) {
		return &DurationError{
			Bound:      BoundMinimum,
			LimitHours: governing.MinRentalHours(),
			Hours:      hours,
		}
	}

	if sameDay && hours > float64(governing.MaxRentalHours()) {
		return &DurationError{
			Bound:      BoundSameDayMax,
			LimitHours: governing.MaxRentalHours(),
			Hours:      hours,
		}
	}

	return nil
}
