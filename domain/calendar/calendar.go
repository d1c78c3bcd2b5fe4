// Package calendar provides the date arithmetic the ledger relies on:
// day-clamped month addition and calendar-date comparison that ignores
// time-of-day.
package calendar

import "time"

// AddMonthsClamped adds n months to t, clamping the day-of-month to the last
// valid day of the target month (Jan 31 + 1 month -> Feb 28/29).
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// DateOnly truncates t to its calendar date in the given location.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Compare orders two instants by calendar date only: -1, 0 or 1.
func Compare(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	switch {
	case y1 < y2 || (y1 == y2 && m1 < m2) || (y1 == y2 && m1 == m2 && d1 < d2):
		return -1
	case y1 == y2 && m1 == m2 && d1 == d2:
		return 0
	default:
		return 1
	}
}

// DaysBetween counts the full calendar days from a to b, zero when b does not
// lie after a.
func DaysBetween(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
