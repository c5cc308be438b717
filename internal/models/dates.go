// ABOUTME: Date and clock-time parsing for the textual storage conventions.
// ABOUTME: Dates are YYYY-MM-DD (with a "today" synonym), times are HH:MM 24h.
package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the stored date format. Lexicographic order on these
	// strings equals chronological order, which range queries rely on.
	DateLayout = "2006-01-02"

	// ClockLayout is the stored time-of-day format, 24-hour, no seconds.
	ClockLayout = "15:04"

	// MonthLayout selects a calendar month.
	MonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD date string. The literal token "today"
// (case-insensitive) is accepted as a synonym for the current date.
func ParseDate(s string) (time.Time, error) {
	if s == "today" || s == "Today" || s == "TODAY" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseClock parses an HH:MM 24-hour time-of-day string.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM month selector.
func ParseMonth(s string) (year int, month time.Month, err error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
