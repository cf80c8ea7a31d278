package booking

import (
	"rentride/internal/domain/slot"
)

// HourOption is one selectable clock-hour on a given date, tagged with the
// slot that covers it. Slot choice matters because rates differ per slot.
type HourOption struct {
	Hour int
	Slot slot.Slot
}

// HourOptions lists the rentable clock-hours on date across the given slots.
// When several slots cover the same hour, one option is emitted per slot;
// deduplication is deliberately left to the caller so that overlapping owner
// slots stay visible instead of being silently merged.
//
// An empty result means no availability on that date, which is a normal
// outcome rather than an error.
func HourOptions(date Date, slots []slot.Slot) []HourOption {
	var options []HourOption

	for _, s := range slots {
		if !s.IsActive() {
			continue
		}
		if !date.Within(s.Start(), s.End()) {
			continue
		}

		startHour := 0
		if DateOf(s.Start()).Equal(date) {
			startHour = s.Start().Hour()
		}

		endHour := 23
		if DateOf(s.End()).Equal(date) {
			endHour = s.End().Hour()
		}

		for h := startHour; h <= endHour; h++ {
			options = append(options, HourOption{Hour: h, Slot: s})
		}
	}

	return options
}
