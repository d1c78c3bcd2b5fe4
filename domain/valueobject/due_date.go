package valueobject

import "time"

// ---------------------------------------------------------------------------
// DueDate – tagged variant: Scheduled(date) | OpenEnded
// ---------------------------------------------------------------------------

// DueDate is either a concrete scheduled date or the open-ended marker.
// Open-ended installments have no due date and are never eligible for the
// overdue state, so the distinction is carried explicitly instead of through
// a far-future sentinel date.
type DueDate struct {
	date      time.Time
	scheduled bool
}

// ScheduledDueDate returns a DueDate fixed to the given calendar date.
func ScheduledDueDate(date time.Time) DueDate {
	return DueDate{date: date, scheduled: true}
}

// OpenEndedDueDate returns the no-due-date marker.
func OpenEndedDueDate() DueDate {
	return DueDate{}
}

// IsOpenEnded reports whether this entry has no due date.
func (d DueDate) IsOpenEnded() bool { return !d.scheduled }

// Date returns the scheduled date and true, or the zero time and false for
// open-ended entries.
func (d DueDate) Date() (time.Time, bool) {
	if !d.scheduled {
		return time.Time{}, false
	}
	return d.date, true
}

// PassedBy reports whether the due date lies strictly before the given
// calendar date. Open-ended entries never pass.
func (d DueDate) PassedBy(today time.Time) bool {
	if !d.scheduled {
		return false
	}
	y1, m1, d1 := d.date.Date()
	y2, m2, d2 := today.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
