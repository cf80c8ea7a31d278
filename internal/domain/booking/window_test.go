//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentride/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func mustWindow(t *testing.T, startHour, endHour int) booking.Window {
	t.Helper()
	w, err := booking.NewWindow(
		baseDay.Add(time.Duration(startHour)*time.Hour),
		baseDay.Add(time.Duration(endHour)*time.Hour),
	)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	t.Run("end must be after start", func(t *testing.T) {
		_, err := booking.NewWindow(baseDay, baseDay)
		require.ErrorIs(t, err, booking.ErrInvalidWindow)

		_, err = booking.NewWindow(baseDay.Add(time.Hour), baseDay)
		require.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("instants are normalized to UTC", func(t *testing.T) {
		ist := time.FixedZone("IST", 19800)
		w, err := booking.NewWindow(
			time.Date(2026, 3, 10, 13, 30, 0, 0, ist),
			time.Date(2026, 3, 10, 18, 30, 0, 0, ist),
		)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, w.Start().Location())
		assert.Equal(t, baseDay.Add(8*time.Hour), w.Start())
	})
}

func TestWindowHours(t *testing.T) {
	w, err := booking.NewWindow(baseDay, baseDay.Add(90*time.Minute))
	require.NoError(t, err)

	// Duration limits use the exact value; billing rounds up.
	assert.Equal(t, 1.5, w.ExactHours())
	assert.Equal(t, 2, w.BilledHours())

	whole := mustWindow(t, 8, 18)
	assert.Equal(t, 10.0, whole.ExactHours())
	assert.Equal(t, 10, whole.BilledHours())
}
