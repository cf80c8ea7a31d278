package booking

import (
	"sort"
	"time"

	"rentride/internal/domain/slot"
)

// Coverage is the result of checking whether a window is fully spanned by
// one or more slots. Either the window is covered and the ordered
// contributing slots are available, or there is a gap at a specific instant.
type Coverage struct {
	covered bool
	gapAt   time.Time
	slots   []slot.Slot
}

func (c Coverage) Covered() bool      { return c.covered }
func (c Coverage) GapAt() time.Time   { return c.gapAt }
func (c Coverage) Slots() []slot.Slot { return c.slots }

func covered(slots []slot.Slot) Coverage {
	return Coverage{covered: true, slots: slots}
}

func gap(at time.Time) Coverage {
	return Coverage{gapAt: at}
}

// CheckCoverage sweeps the slots overlapping the window and reports the
// first uncovered instant, if any. Slots that are merely adjacent
// (a.End == b.Start) close the range between them; touching at a single
// instant is enough.
func CheckCoverage(w Window, slots []slot.Slot) Coverage {
	var overlapping []slot.Slot
	for _, s := range slots {
		if s.Overlaps(w.Start(), w.End()) {
			overlapping = append(overlapping, s)
		}
	}

	if len(overlapping) == 0 {
		return gap(w.Start())
	}

	// Common case: the whole window sits inside one slot.
	for _, s := range overlapping {
		if !w.Start().Before(s.Start()) && !w.End().After(s.End()) {
			return covered([]slot.Slot{s})
		}
	}

	// Start ascending, widest first on ties so maximal coverage is preferred.
	sort.SliceStable(overlapping, func(i, j int) bool {
		if !overlapping[i].Start().Equal(overlapping[j].Start()) {
			return overlapping[i].Start().Before(overlapping[j].Start())
		}
		return overlapping[i].End().After(overlapping[j].End())
	})

	frontier := w.Start()
	var contributing []slot.Slot

	for _, s := range overlapping {
		if frontier.Before(s.Start()) {
			return gap(frontier)
		}
		if s.End().After(frontier) {
			frontier = s.End()
			contributing = append(contributing, s)
		}
	}

	if frontier.Before(w.End()) {
		return gap(frontier)
	}

	return covered(contributing)
}

// GoverningSlot picks the slot whose rate and limits apply to the window:
// the slot containing the start instant, with the earliest start as the
// deterministic tie-break when several overlap there.
func GoverningSlot(w Window, slots []slot.Slot) (slot.Slot, bool) {
	var (
		governing slot.Slot
		found     bool
	)
	for _, s := range slots {
		if !s.Contains(w.Start()) {
			continue
		}
		if !found || s.Start().Before(governing.Start()) {
			governing = s
			found = true
		}
	}
	return governing, found
}
