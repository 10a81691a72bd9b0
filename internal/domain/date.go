package domain

import "time"

// DateLayout is the calendar date format used at every system boundary.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateRange is an inclusive flight-date window. A zero bound leaves that side open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the calendar date of t falls inside the window.
func (dr DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	if !dr.From.IsZero() && d.Before(DateOf(dr.From)) {
		return false
	}
	if !dr.To.IsZero() && d.After(DateOf(dr.To)) {
		return false
	}
	return true
}

// NextDay reports whether b is exactly one calendar day after a.
func NextDay(a, b time.Time) bool {
	return DateOf(a).AddDate(0, 0, 1).Equal(DateOf(b))
}
