package booking

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidWindow = errors.New("window end must be after window start")

// Window is a candidate [start, end) rental range proposed by the customer.
// It exists only during validation and pricing, never as persisted state.
// All instants are UTC; callers converting from local display time must do
// so before constructing the window.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	start = start.UTC()
	end = end.UTC()

	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}

	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// ExactHours returns the window length in fractional hours. Duration limits
// compare against the exact value, not the billed one.
func (w Window) ExactHours() float64 {
	return w.Duration().Hours()
}

// BilledHours rounds partial hours up. Billing always charges whole hours in
// the provider's favor.
func (w Window) BilledHours() int {
	return int(math.Ceil(w.Duration().Hours()))
}
