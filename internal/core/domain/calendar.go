package domain

import "time"

// CalendarDate is a day-granularity date. Remaining-value amortization is
// defined over whole calendar days: a node expiring tomorrow at 01:00 and one
// expiring tomorrow at 23:00 both have one day remaining relative to today.
// Converting a full timestamp to a CalendarDate is the explicit truncation
// step that makes that intent visible in the types.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// DaysUntil returns the whole-day distance from d to other. Negative when
// other precedes d.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	// Midnight-to-midnight in UTC so DST transitions cannot skew the count.
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// EndOfMonth returns the last nanosecond of t's month in t's location.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// EndOfYear returns the last nanosecond of t's year in t's location.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}
