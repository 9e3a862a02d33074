// Package report implements the in-memory aggregation engine behind the
// dashboard: time-window filtering, totals, category breakdowns, trends,
// upcoming-bill selection, and the recent-activity feed. Every function is
// pure and safe to re-run on every request.
package report

import "time"

// Range selects the time window records are filtered to before aggregation.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// ParseRange maps a query-string value to a Range. Unknown or empty values
// fall back to the month window.
func ParseRange(s string) Range {
	switch Range(s) {
	case RangeWeek, RangeMonth, RangeYear:
		return Range(s)
	}
	return RangeMonth
}

// WindowStart returns the inclusive lower bound of the window ending at now.
// Bounds are computed from calendar components, not elapsed hours, so a
// "week" spans seven calendar days regardless of DST shifts.
func WindowStart(r Range, now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return time.Date(now.Year(), now.Month(), now.Day()-7, 0, 0, 0, 0, now.Location())
	case RangeYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// PreviousMonthWindow returns the bounds of the calendar month before now:
// start is inclusive, end is exclusive (the first instant of the current month).
func PreviousMonthWindow(now time.Time) (start, end time.Time) {
	end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	return start, end
}

// Dated is any record that carries a comparable timestamp.
type Dated interface {
	When() time.Time
}

// FilterByRange returns the records whose timestamp falls in
// [WindowStart(r, now), now].
func FilterByRange[T Dated](records []T, r Range, now time.Time) []T {
	start := WindowStart(r, now)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		t := rec.When()
		if !t.Before(start) && !t.After(now) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBetween returns the records whose timestamp falls in [start, end).
func FilterBetween[T Dated](records []T, start, end time.Time) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		t := rec.When()
		if !t.Before(start) && t.Before(end) {
			out = append(out, rec)
		}
	}
	return out
}
