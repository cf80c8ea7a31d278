package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingVehicle = errors.New("booking requires a vehicle")
	ErrMissingUser    = errors.New("booking requires a user")
	ErrMissingSlot    = errors.New("booking requires a governing slot")
	ErrNegativeAmount = errors.New("booking amounts cannot be negative")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// PriceSpec carries the priced result of a validated window into the booking
// entity. Amounts are minor currency units.
type PriceSpec struct {
	BaseAmount      int64
	SecurityDeposit int64
	PlatformFee     int64
	Total           int64
	Hours           int
	Description     string
	UsedDailyRate   bool
}

// Booking is a confirmed rental of one vehicle over a validated window,
// priced against the governing slot at submission time.
type Booking struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	userID    uuid.UUID
	slotID    uuid.UUID
	window    Window
	price     PriceSpec
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(vehicleID, userID, slotID uuid.UUID, window Window, price PriceSpec) (*Booking, error) {
	if vehicleID == uuid.Nil {
		return nil, ErrMissingVehicle
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if slotID == uuid.Nil {
		return nil, ErrMissingSlot
	}
	if price.BaseAmount < 0 || price.SecurityDeposit < 0 || price.PlatformFee < 0 || price.Total < 0 {
		return nil, ErrNegativeAmount
	}

	return &Booking{
		id:        uuid.New(),
		vehicleID: vehicleID,
		userID:    userID,
		slotID:    slotID,
		window:    window,
		price:     price,
		status:    StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, vehicleID, userID, slotID uuid.UUID,
	window Window,
	price PriceSpec,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		vehicleID: vehicleID,
		userID:    userID,
		slotID:    slotID,
		window:    window,
		price:     price,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) HasEnded(now time.Time) bool {
	return now.After(b.window.End())
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) VehicleID() uuid.UUID { return b.vehicleID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) SlotID() uuid.UUID    { return b.slotID }
func (b *Booking) Window() Window       { return b.window }
func (b *Booking) Price() PriceSpec     { return b.price }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
