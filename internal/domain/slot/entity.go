package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval  = errors.New("slot start must be before slot end")
	ErrNegativeRate     = errors.New("slot rate cannot be negative")
	ErrMissingRate      = errors.New("slot hourly rate is required")
	ErrInvalidHourLimit = errors.New("rental hour limits must be positive")
	ErrHourLimitOrder   = errors.New("min rental hours cannot exceed max rental hours")
)

// Slot is a priced rentability interval for one vehicle. The interval is
// half-open [start, end) and always expressed in UTC. Slots are immutable
// once constructed; the engine never mutates them.
type Slot struct {
	id             uuid.UUID
	vehicleID      uuid.UUID
	start          time.Time
	end            time.Time
	hourlyRate     int64 // minor currency units per hour
	dailyRate      *int64
	minRentalHours int
	maxRentalHours int
	isActive       bool
}

func NewSlot(
	id, vehicleID uuid.UUID,
	start, end time.Time,
	hourlyRate int64,
	dailyRate *int64,
	minRentalHours, maxRentalHours int,
	isActive bool,
) (Slot, error) {
	start = start.UTC()
	end = end.UTC()

	if !start.Before(end) {
		return Slot{}, ErrInvalidInterval
	}
	if hourlyRate < 0 {
		return Slot{}, ErrNegativeRate
	}
	if dailyRate != nil && *dailyRate < 0 {
		return Slot{}, ErrNegativeRate
	}
	if minRentalHours <= 0 || maxRentalHours <= 0 {
		return Slot{}, ErrInvalidHourLimit
	}
	if minRentalHours > maxRentalHours {
		return Slot{}, ErrHourLimitOrder
	}

	return Slot{
		id:             id,
		vehicleID:      vehicleID,
		start:          start,
		end:            end,
		hourlyRate:     hourlyRate,
		dailyRate:      dailyRate,
		minRentalHours: minRentalHours,
		maxRentalHours: maxRentalHours,
		isActive:       isActive,
	}, nil
}

func (s Slot) ID() uuid.UUID        { return s.id }
func (s Slot) VehicleID() uuid.UUID { return s.vehicleID }
func (s Slot) Start() time.Time     { return s.start }
func (s Slot) End() time.Time       { return s.end }
func (s Slot) HourlyRate() int64    { return s.hourlyRate }
func (s Slot) MinRentalHours() int  { return s.minRentalHours }
func (s Slot) MaxRentalHours() int  { return s.maxRentalHours }
func (s Slot) IsActive() bool       { return s.isActive }

// DailyRate returns the daily cap and whether one is configured. Absence
// means no daily discount is available for this slot.
func (s Slot) DailyRate() (int64, bool) {
	if s.dailyRate == nil {
		return 0, false
	}
	return *s.dailyRate, true
}

// Contains reports whether the instant t falls inside the half-open interval.
func (s Slot) Contains(t time.Time) bool {
	return !t.Before(s.start) && t.Before(s.end)
}

// Overlaps reports whether the slot intersects the half-open range
// [start, end).
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.start.Before(end) && s.end.After(start)
}
