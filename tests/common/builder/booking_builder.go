//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rentride/internal/handler/dto/request"
	"rentride/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder constructs booking requests and views for tests. The default
// request is a same-day 10h window inside the default slot's day, quoted at
// the daily rate plus the default deposit and platform fee.
type BookingBuilder struct {
	BookingID   uuid.UUID
	VehicleID   uuid.UUID
	UserID      uuid.UUID
	SlotID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	SameDay     bool
	QuotedTotal int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:   uuid.New(),
		VehicleID:   uuid.New(),
		UserID:      uuid.New(),
		SlotID:      uuid.New(),
		StartTime:   time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
		SameDay:     true,
		QuotedTotal: 27000, // daily ₹200 + deposit ₹50 + 10% fee ₹20
	}
}

func (b *BookingBuilder) WithVehicleID(id uuid.UUID) *BookingBuilder {
	b.VehicleID = id
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithSameDay(sameDay bool) *BookingBuilder {
	b.SameDay = sameDay
	return b
}

func (b *BookingBuilder) WithQuotedTotal(total int64) *BookingBuilder {
	b.QuotedTotal = total
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VehicleID:   b.VehicleID,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		SameDay:     b.SameDay,
		QuotedTotal: b.QuotedTotal,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:              b.BookingID,
		VehicleID:       b.VehicleID,
		UserID:          b.UserID,
		SlotID:          b.SlotID,
		StartDatetime:   b.StartTime,
		EndDatetime:     b.EndTime,
		BaseAmount:      20000,
		SecurityDeposit: 5000,
		PlatformFee:     2000,
		Total:           b.QuotedTotal,
		Hours:           10,
		Breakdown:       "Daily rate (better than 10h × ₹25)",
		UsedDailyRate:   true,
		Status:          "confirmed",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
