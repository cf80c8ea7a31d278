package request

import "time"

// QuoteRequest asks for a price on a candidate rental window. SameDay is the
// booking flow's explicit choice, not derived from the timestamps; it decides
// whether the slot's maximum-hours cap applies.
type QuoteRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	SameDay   bool      `json:"same_day"`
}
