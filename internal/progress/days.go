// Package progress computes personal records, per-exercise history, streaks
// and weekly summaries from logged entries. Every function is pure; callers
// pass "now" explicitly and calendar days are taken in now's location.
package progress

import "time"

// dayOf returns local midnight of t in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// addDays moves a midnight value by n calendar days (DST safe).
func addDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}
