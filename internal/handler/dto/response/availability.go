package response

import (
	"rentride/internal/usecase/queries"

	"github.com/google/uuid"
)

// HourOptionResponse is one selectable start/end hour on the requested date.
// Overlapping slots produce one entry per slot for the same hour; the client
// disambiguates by slot_id.
type HourOptionResponse struct {
	Hour       int       `json:"hour"`
	SlotID     uuid.UUID `json:"slot_id"`
	HourlyRate int64     `json:"hourly_rate"`
	DailyRate  *int64    `json:"daily_rate,omitempty"`
}

type HourOptionsResponse struct {
	Date    string               `json:"date"`
	Options []HourOptionResponse `json:"options"`
}

func FromHourOptionViews(date string, views []*queries.HourOptionView) *HourOptionsResponse {
	options := make([]HourOptionResponse, len(views))
	for i, v := range views {
		options[i] = HourOptionResponse{
			Hour:       v.Hour,
			SlotID:     v.SlotID,
			HourlyRate: v.HourlyRate,
			DailyRate:  v.DailyRate,
		}
	}

	return &HourOptionsResponse{
		Date:    date,
		Options: options,
	}
}
