package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VehicleView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotView struct {
	ID             uuid.UUID `json:"id"`
	VehicleID      uuid.UUID `json:"vehicle_id"`
	StartDatetime  time.Time `json:"start_datetime"`
	EndDatetime    time.Time `json:"end_datetime"`
	HourlyRate     int64     `json:"hourly_rate"`
	DailyRate      *int64    `json:"daily_rate,omitempty"`
	MinRentalHours int       `json:"min_rental_hours"`
	MaxRentalHours int       `json:"max_rental_hours"`
	IsActive       bool      `json:"is_active"`
}

type HourOptionView struct {
	Hour       int       `json:"hour"`
	SlotID     uuid.UUID `json:"slot_id"`
	HourlyRate int64     `json:"hourly_rate"`
	DailyRate  *int64    `json:"daily_rate,omitempty"`
}

type QuoteView struct {
	BaseAmount          int64       `json:"base_amount"`
	SecurityDeposit     int64       `json:"security_deposit"`
	PlatformFee         int64       `json:"platform_fee"`
	Total               int64       `json:"total"`
	Hours               int         `json:"hours"`
	Breakdown           string      `json:"breakdown"`
	UsedDailyRate       bool        `json:"used_daily_rate"`
	GoverningSlotID     uuid.UUID   `json:"governing_slot_id"`
	ContributingSlotIDs []uuid.UUID `json:"contributing_slot_ids"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	UserID          uuid.UUID `json:"user_id"`
	SlotID          uuid.UUID `json:"slot_id"`
	StartDatetime   time.Time `json:"start_datetime"`
	EndDatetime     time.Time `json:"end_datetime"`
	BaseAmount      int64     `json:"base_amount"`
	SecurityDeposit int64     `json:"security_deposit"`
	PlatformFee     int64     `json:"platform_fee"`
	Total           int64     `json:"total"`
	Hours           int       `json:"hours"`
	Breakdown       string    `json:"breakdown"`
	UsedDailyRate   bool      `json:"used_daily_rate"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Total         int64     `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}
