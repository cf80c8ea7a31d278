//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/slot"
	"rentride/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourSlot(startHour, endHour int) slot.Slot {
	return builder.NewSlotBuilder().WithHours(startHour, endHour).MustBuild()
}

func TestCheckCoverage(t *testing.T) {
	t.Run("window inside a single slot is covered", func(t *testing.T) {
		s := hourSlot(0, 24)
		cov := booking.CheckCoverage(mustWindow(t, 8, 18), []slot.Slot{s})

		require.True(t, cov.Covered())
		require.Len(t, cov.Slots(), 1)
		assert.Equal(t, s.ID(), cov.Slots()[0].ID())
	})

	t.Run("gap between slots is reported at the first uncovered instant", func(t *testing.T) {
		slots := []slot.Slot{hourSlot(0, 5), hourSlot(6, 10)}
		cov := booking.CheckCoverage(mustWindow(t, 2, 8), slots)

		require.False(t, cov.Covered())
		assert.Equal(t, baseDay.Add(5*time.Hour), cov.GapAt())
	})

	t.Run("adjacent slots close the range", func(t *testing.T) {
		slots := []slot.Slot{hourSlot(0, 5), hourSlot(5, 10)}
		cov := booking.CheckCoverage(mustWindow(t, 1, 9), slots)

		require.True(t, cov.Covered())
		assert.Len(t, cov.Slots(), 2)
	})

	t.Run("no overlapping slot at all", func(t *testing.T) {
		cov := booking.CheckCoverage(mustWindow(t, 12, 14), []slot.Slot{hourSlot(0, 5)})

		require.False(t, cov.Covered())
		assert.Equal(t, baseDay.Add(12*time.Hour), cov.GapAt())
	})

	t.Run("window extending past the last slot", func(t *testing.T) {
		cov := booking.CheckCoverage(mustWindow(t, 2, 12), []slot.Slot{hourSlot(0, 10)})

		require.False(t, cov.Covered())
		assert.Equal(t, baseDay.Add(10*time.Hour), cov.GapAt())
	})

	t.Run("same result on repeated evaluation", func(t *testing.T) {
		slots := []slot.Slot{hourSlot(0, 5), hourSlot(6, 10)}
		w := mustWindow(t, 2, 8)

		first := booking.CheckCoverage(w, slots)
		second := booking.CheckCoverage(w, slots)

		assert.Equal(t, first.Covered(), second.Covered())
		assert.Equal(t, first.GapAt(), second.GapAt())
	})

	t.Run("slot order in input does not matter", func(t *testing.T) {
		a := hourSlot(0, 6)
		b := hourSlot(6, 12)
		w := mustWindow(t, 1, 11)

		cov1 := booking.CheckCoverage(w, []slot.Slot{a, b})
		cov2 := booking.CheckCoverage(w, []slot.Slot{b, a})

		assert.True(t, cov1.Covered())
		assert.True(t, cov2.Covered())
	})

	t.Run("ties on start prefer the widest slot", func(t *testing.T) {
		narrow := hourSlot(0, 4)
		wide := hourSlot(0, 8)
		later := hourSlot(8, 12)
		cov := booking.CheckCoverage(mustWindow(t, 1, 11), []slot.Slot{narrow, wide, later})

		require.True(t, cov.Covered())
		require.Len(t, cov.Slots(), 2)
		assert.Equal(t, wide.ID(), cov.Slots()[0].ID())
		assert.Equal(t, later.ID(), cov.Slots()[1].ID())
	})

	t.Run("redundant slots are not listed as contributing", func(t *testing.T) {
		slots := []slot.Slot{hourSlot(0, 10), hourSlot(2, 6)}
		cov := booking.CheckCoverage(mustWindow(t, 1, 9), slots)

		require.True(t, cov.Covered())
		assert.Len(t, cov.Slots(), 1)
	})
}

func TestGoverningSlot(t *testing.T) {
	t.Run("slot containing the start instant governs", func(t *testing.T) {
		first := hourSlot(0, 6)
		second := hourSlot(6, 12)
		w := mustWindow(t, 7, 11)

		governing, ok := booking.GoverningSlot(w, []slot.Slot{first, second})
		require.True(t, ok)
		assert.Equal(t, second.ID(), governing.ID())
	})

	t.Run("earliest start wins when two slots contain the start", func(t *testing.T) {
		early := hourSlot(0, 12)
		late := hourSlot(6, 18)
		w := mustWindow(t, 8, 10)

		governing, ok := booking.GoverningSlot(w, []slot.Slot{late, early})
		require.True(t, ok)
		assert.Equal(t, early.ID(), governing.ID())
	})

	t.Run("no slot contains the start", func(t *testing.T) {
		_, ok := booking.GoverningSlot(mustWindow(t, 20, 22), []slot.Slot{hourSlot(0, 6)})
		assert.False(t, ok)
	})

	t.Run("end boundary does not contain the start", func(t *testing.T) {
		s := hourSlot(0, 8)
		_, ok := booking.GoverningSlot(mustWindow(t, 8, 10), []slot.Slot{s})
		assert.False(t, ok)
	})
}

func TestGoverningSlotDeterminism(t *testing.T) {
	// Same inputs in any order must always produce the same governing slot.
	early := builder.NewSlotBuilder().WithID(uuid.New()).WithHours(0, 12).MustBuild()
	late := builder.NewSlotBuilder().WithID(uuid.New()).WithHours(6, 18).MustBuild()
	w := mustWindow(t, 8, 10)

	g1, ok1 := booking.GoverningSlot(w, []slot.Slot{early, late})
	g2, ok2 := booking.GoverningSlot(w, []slot.Slot{late, early})

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, g1.ID(), g2.ID())
}
