package habit

import (
	"fmt"
	"time"
)

// DateLayout is the canonical completion key layout: zero-padded YYYY-MM-DD.
const DateLayout = "2006-01-02"

// DateKey returns the canonical key for the calendar day of t, read in t's own
// location. Callers pass local times so keys follow the host calendar.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a canonical key into the start of that day in loc.
// Keys that do not round-trip (e.g. "2024-6-3") are rejected.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	d, err := parseCalendarKey(key)
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := d.Date()
	return localMidnight(y, m, day, loc), nil
}

// parseCalendarKey parses key as a UTC calendar date.
func parseCalendarKey(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil || t.Format(DateLayout) != key {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDateKey, key)
	}
	return t, nil
}

// StartOfDay returns the first instant of t's calendar day in t's location.
// That is midnight except where a DST jump skips it.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return localMidnight(y, m, d, t.Location())
}

func localMidnight(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	// A skipped midnight may resolve to the previous evening.
	for t.Day() != d {
		t = t.Add(time.Hour)
	}
	return t
}

// calendarDay maps t's local calendar date onto UTC midnight. Walks step on
// these anchors so every step is exactly one calendar day.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(calendarDay(b).Sub(calendarDay(a)).Hours() / 24)
}
