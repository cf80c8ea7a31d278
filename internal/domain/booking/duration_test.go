//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentride/internal/domain/booking"
	"rentride/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDuration(t *testing.T) {
	governing := builder.NewSlotBuilder().
		WithHours(0, 48).
		WithRentalHours(2, 24).
		MustBuild()

	t.Run("within limits", func(t *testing.T) {
		err := booking.ValidateDuration(mustWindow(t, 8, 18), governing, true)
		require.NoError(t, err)
	})

	t.Run("below minimum", func(t *testing.T) {
		err := booking.ValidateDuration(mustWindow(t, 8, 9), governing, true)

		var durErr *booking.DurationError
		require.ErrorAs(t, err, &durErr)
		assert.Equal(t, booking.BoundMinimum, durErr.Bound)
		assert.Equal(t, 2, durErr.LimitHours)
		assert.Equal(t, 1.0, durErr.Hours)
	})

	t.Run("minimum uses exact hours, not billed hours", func(t *testing.T) {
		// 1.5h bills as 2h but is still below a 2h minimum.
		w, err := booking.NewWindow(baseDay.Add(8*time.Hour), baseDay.Add(8*time.Hour+90*time.Minute))
		require.NoError(t, err)

		var durErr *booking.DurationError
		require.ErrorAs(t, booking.ValidateDuration(w, governing, true), &durErr)
		assert.Equal(t, booking.BoundMinimum, durErr.Bound)
	})

	t.Run("same-day maximum exceeded", func(t *testing.T) {
		err := booking.ValidateDuration(mustWindow(t, 0, 30), governing, true)

		var durErr *booking.DurationError
		require.ErrorAs(t, err, &durErr)
		assert.Equal(t, booking.BoundSameDayMax, durErr.Bound)
		assert.Equal(t, 24, durErr.LimitHours)
	})

	t.Run("cross-day booking is exempt from the maximum", func(t *testing.T) {
		// The identical 30h window passes when it is not a same-day booking.
		err := booking.ValidateDuration(mustWindow(t, 0, 30), governing, false)
		require.NoError(t, err)
	})

	t.Run("exactly at the boundaries", func(t *testing.T) {
		require.NoError(t, booking.ValidateDuration(mustWindow(t, 0, 2), governing, true))
		require.NoError(t, booking.ValidateDuration(mustWindow(t, 0, 24), governing, true))
	})
}
