//go:build unit || e2e

package builder

import (
	"time"

	"rentride/internal/domain/slot"

	"github.com/google/uuid"
)

// SlotBuilder constructs availability slots for tests. The default slot spans
// one full UTC day at ₹25/h with a ₹200 daily rate, min 2h, max 24h.
type SlotBuilder struct {
	ID             uuid.UUID
	VehicleID      uuid.UUID
	Start          time.Time
	End            time.Time
	HourlyRate     int64
	DailyRate      *int64
	MinRentalHours int
	MaxRentalHours int
	IsActive       bool
}

func NewSlotBuilder() *SlotBuilder {
	daily := int64(20000)
	return &SlotBuilder{
		ID:             uuid.New(),
		VehicleID:      uuid.New(),
		Start:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		HourlyRate:     2500,
		DailyRate:      &daily,
		MinRentalHours: 2,
		MaxRentalHours: 24,
		IsActive:       true,
	}
}

func (b *SlotBuilder) WithID(id uuid.UUID) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithVehicleID(id uuid.UUID) *SlotBuilder {
	b.VehicleID = id
	return b
}

func (b *SlotBuilder) WithInterval(start, end time.Time) *SlotBuilder {
	b.Start = start
	b.End = end
	return b
}

// WithHours positions the slot at the given hour offsets from the default
// day's midnight, mirroring the half-open hour ranges coverage works in.
func (b *SlotBuilder) WithHours(startHour, endHour int) *SlotBuilder {
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b.Start = base.Add(time.Duration(startHour) * time.Hour)
	b.End = base.Add(time.Duration(endHour) * time.Hour)
	return b
}

func (b *SlotBuilder) WithHourlyRate(rate int64) *SlotBuilder {
	b.HourlyRate = rate
	return b
}

func (b *SlotBuilder) WithDailyRate(rate int64) *SlotBuilder {
	b.DailyRate = &rate
	return b
}

func (b *SlotBuilder) WithoutDailyRate() *SlotBuilder {
	b.DailyRate = nil
	return b
}

func (b *SlotBuilder) WithRentalHours(minHours, maxHours int) *SlotBuilder {
	b.MinRentalHours = minHours
	b.MaxRentalHours = maxHours
	return b
}

func (b *SlotBuilder) Inactive() *SlotBuilder {
	b.IsActive = false
	return b
}

func (b *SlotBuilder) BuildDomain() (slot.Slot, error) {
	return slot.NewSlot(
		b.ID,
		b.VehicleID,
		b.Start,
		b.End,
		b.HourlyRate,
		b.DailyRate,
		b.MinRentalHours,
		b.MaxRentalHours,
		b.IsActive,
	)
}

// MustBuild panics on validation failure; for fixtures known to be valid.
func (b *SlotBuilder) MustBuild() slot.Slot {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}
