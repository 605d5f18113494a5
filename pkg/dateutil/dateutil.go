package dateutil

import (
	"fmt"
	"time"
)

// ISODateLayout is the calendar date format used on every time axis.
const ISODateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date at midnight UTC
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// MustParseISODate is ParseISODate for package-level constants; it panics on bad input.
func MustParseISODate(s string) time.Time {
	t, err := ParseISODate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatISODate formats a date as YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// DaySequence returns n consecutive ISO dates starting at start (start itself first).
func DaySequence(start time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	days := make([]string, n)
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		days[i] = FormatISODate(d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}
