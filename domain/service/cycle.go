package service

import (
	"time"

	"github.com/amsolucionesw-art/financiera-ledger/domain/calendar"
)

// MaxCycles caps open-ended billing at three monthly windows; beyond the
// third boundary the credit stays in cycle 3 until settled or refinanced.
const MaxCycles = 3

// Cycle is a derived billing window of an open-ended credit. End is the zero
// time for cycle 3 (unbounded) and for the fail-open default.
type Cycle struct {
	Index int
	Start time.Time
	End   time.Time
}

// CycleResolver locates "today" inside the rolling monthly windows anchored
// to a credit's commitment date. Comparisons use calendar dates only, in a
// fixed reference location, so the boundary does not drift across client
// locales.
type CycleResolver struct {
	loc *time.Location
}

// NewCycleResolver creates a resolver using the given reference location.
func NewCycleResolver(loc *time.Location) *CycleResolver {
	if loc == nil {
		loc = time.UTC
	}
	return &CycleResolver{loc: loc}
}

// Resolve determines the billing cycle for today. A zero anchor fails open to
// cycle 1 with zero bounds so read paths can still render.
func (r *CycleResolver) Resolve(anchor, today time.Time) Cycle {
	if anchor.IsZero() {
		return Cycle{Index: 1}
	}

	start := calendar.DateOnly(anchor, r.loc)
	day := calendar.DateOnly(today, r.loc)
	b1 := calendar.AddMonthsClamped(start, 1)
	b2 := calendar.AddMonthsClamped(start, 2)

	switch {
	case calendar.Compare(day, b1) < 0:
		return Cycle{Index: 1, Start: start, End: b1}
	case calendar.Compare(day, b2) < 0:
		return Cycle{Index: 2, Start: b1, End: b2}
	default:
		return Cycle{Index: 3, Start: b2}
	}
}

// CycleDueDate returns the date the given cycle's interest falls due: the
// cycle's end boundary (anchor plus index months, day-clamped).
func (r *CycleResolver) CycleDueDate(anchor time.Time, index int) time.Time {
	return calendar.AddMonthsClamped(calendar.DateOnly(anchor, r.loc), index)
}

// Location returns the resolver's reference location.
func (r *CycleResolver) Location() *time.Location { return r.loc }
