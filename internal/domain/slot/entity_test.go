//go:build unit

package slot_test

import (
	"testing"
	"time"

	"rentride/internal/domain/slot"
	"rentride/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, s.IsActive())
		assert.Equal(t, int64(2500), s.HourlyRate())
		daily, ok := s.DailyRate()
		require.True(t, ok)
		assert.Equal(t, int64(20000), daily)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.SlotBuilder)
			errIs  error
		}{
			{
				name:   "start equal to end",
				mutate: func(b *builder.SlotBuilder) { b.End = b.Start },
				errIs:  slot.ErrInvalidInterval,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.SlotBuilder) { b.End = b.Start.Add(-time.Hour) },
				errIs:  slot.ErrInvalidInterval,
			},
			{
				name:   "negative hourly rate",
				mutate: func(b *builder.SlotBuilder) { b.WithHourlyRate(-1) },
				errIs:  slot.ErrNegativeRate,
			},
			{
				name:   "negative daily rate",
				mutate: func(b *builder.SlotBuilder) { b.WithDailyRate(-1) },
				errIs:  slot.ErrNegativeRate,
			},
			{
				name:   "zero min rental hours",
				mutate: func(b *builder.SlotBuilder) { b.MinRentalHours = 0 },
				errIs:  slot.ErrInvalidHourLimit,
			},
			{
				name:   "min above max",
				mutate: func(b *builder.SlotBuilder) { b.WithRentalHours(10, 5) },
				errIs:  slot.ErrHourLimitOrder,
			},
			{
				name:   "no daily rate is valid",
				mutate: func(b *builder.SlotBuilder) { b.WithoutDailyRate() },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewSlotBuilder()
				tc.mutate(b)
				_, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestSlotInterval(t *testing.T) {
	s := builder.NewSlotBuilder().WithHours(8, 18).MustBuild()

	t.Run("contains is half-open", func(t *testing.T) {
		assert.True(t, s.Contains(s.Start()))
		assert.True(t, s.Contains(s.End().Add(-time.Nanosecond)))
		assert.False(t, s.Contains(s.End()))
		assert.False(t, s.Contains(s.Start().Add(-time.Nanosecond)))
	})

	t.Run("overlaps is half-open", func(t *testing.T) {
		// Adjacent ranges share only the boundary instant, which belongs to
		// the later range; that is not an overlap.
		assert.False(t, s.Overlaps(s.End(), s.End().Add(time.Hour)))
		assert.False(t, s.Overlaps(s.Start().Add(-time.Hour), s.Start()))

		assert.True(t, s.Overlaps(s.Start(), s.End()))
		assert.True(t, s.Overlaps(s.End().Add(-time.Minute), s.End().Add(time.Hour)))
	})
}
