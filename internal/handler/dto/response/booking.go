package response

import (
	"time"

	"rentride/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Total         int64     `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		VehicleID:       rm.VehicleID,
		UserID:          rm.UserID,
		SlotID:          rm.SlotID,
		StartDatetime:   rm.StartDatetime,
		EndDatetime:     rm.EndDatetime,
		BaseAmount:      rm.BaseAmount,
		SecurityDeposit: rm.SecurityDeposit,
		PlatformFee:     rm.PlatformFee,
		Total:           rm.Total,
		Hours:           rm.Hours,
		Breakdown:       rm.Breakdown,
		UsedDailyRate:   rm.UsedDailyRate,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:            rm.ID,
		VehicleID:     rm.VehicleID,
		StartDatetime: rm.StartDatetime,
		EndDatetime:   rm.EndDatetime,
		Total:         rm.Total,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}
