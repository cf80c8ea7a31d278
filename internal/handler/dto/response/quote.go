package response

import (
	"rentride/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
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

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		BaseAmount:          rm.BaseAmount,
		SecurityDeposit:     rm.SecurityDeposit,
		PlatformFee:         rm.PlatformFee,
		Total:               rm.Total,
		Hours:               rm.Hours,
		Breakdown:           rm.Breakdown,
		UsedDailyRate:       rm.UsedDailyRate,
		GoverningSlotID:     rm.GoverningSlotID,
		ContributingSlotIDs: rm.ContributingSlotIDs,
	}
}
