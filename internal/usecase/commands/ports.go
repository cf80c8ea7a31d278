package commands

import (
	"context"
	"time"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type VehicleSnapshot struct {
	ID       uuid.UUID
	Name     string
	City     string
	IsActive bool
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error)
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
}

type SlotRepository interface {
	ActiveSlots(ctx context.Context, vehicleID uuid.UUID) ([]slot.Slot, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx pgx.Tx, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error
}
