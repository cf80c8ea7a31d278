package booking

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

const dateLayout = "2006-01-02"

// Date is a calendar date in UTC, used for per-day availability listings and
// for the same-day booking distinction.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.startOfDay().Format(dateLayout)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) startOfDay() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Within reports whether the date lies inside the calendar range spanned by
// the instants start and end (both date-inclusive).
func (d Date) Within(start, end time.Time) bool {
	day := d.startOfDay()
	first := DateOf(start).startOfDay()
	last := DateOf(end).startOfDay()
	return !day.Before(first) && !day.After(last)
}
