package pricing

import (
	"fmt"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/slot"
)

const hoursPerDay = 24

// Breakdown is the priced result for a validated window. Description mirrors
// the branch taken and is shown on receipts, so its wording is part of the
// contract, not decoration.
type Breakdown struct {
	BaseAmount      Money
	Description     string
	UsedDailyRate   bool
	SecurityDeposit Money
	PlatformFee     Money
	Total           Money
	Hours           int
}

// Calculate picks the cheapest combination of hourly and daily billing for
// the window under its governing slot, then applies the fee policy. Billed
// hours round up; the daily rate acts as a cap whenever charging it beats
// pure hourly billing.
func Calculate(w booking.Window, s slot.Slot, fees FeePolicy) Breakdown {
	hours := w.BilledHours()
	hourly := NewMoney(s.HourlyRate())

	base, description, usedDaily := baseAmount(hours, hourly, s)

	platformFee := fees.PlatformFee(base)
	total := base.Add(fees.SecurityDeposit).Add(platformFee)

	return Breakdown{
		BaseAmount:      base,
		Description:     description,
		UsedDailyRate:   usedDaily,
		SecurityDeposit: fees.SecurityDeposit,
		PlatformFee:     platformFee,
		Total:           total,
		Hours:           hours,
	}
}

func baseAmount(hours int, hourly Money, s slot.Slot) (Money, string, bool) {
	dailyAmount, hasDaily := s.DailyRate()
	if !hasDaily {
		cost := hourly.MulInt(int64(hours))
		return cost, fmt.Sprintf("%dh × %s", hours, hourly), false
	}

	daily := NewMoney(dailyAmount)

	if hours < hoursPerDay {
		hourlyCost := hourly.MulInt(int64(hours))
		if hourlyCost.GreaterThan(daily) {
			return daily, fmt.Sprintf("Daily rate (better than %dh × %s)", hours, hourly), true
		}
		return hourlyCost, fmt.Sprintf("%dh × %s", hours, hourly), false
	}

	fullDays := hours / hoursPerDay
	remainder := hours % hoursPerDay
	remainderCost := hourly.MulInt(int64(remainder))

	if remainderCost.GreaterThan(daily) {
		// The leftover hours cost more than another full day; charge the day.
		days := fullDays + 1
		return daily.MulInt(int64(days)), fmt.Sprintf("%d days × %s", days, daily), true
	}

	base := daily.MulInt(int64(fullDays)).Add(remainderCost)
	if remainder == 0 {
		return base, fmt.Sprintf("%d days × %s", fullDays, daily), true
	}
	return base, fmt.Sprintf("%d days × %s + %dh × %s", fullDays, daily, remainder, hourly), true
}
