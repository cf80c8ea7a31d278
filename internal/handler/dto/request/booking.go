package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest submits a previously quoted window. QuotedTotal is the
// total the customer saw; if re-pricing against fresh slots disagrees, the
// booking is rejected rather than silently charging a different amount.
type CreateBookingRequest struct {
	VehicleID   uuid.UUID `json:"vehicle_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	SameDay     bool      `json:"same_day"`
	QuotedTotal int64     `json:"quoted_total" binding:"required"`
}
