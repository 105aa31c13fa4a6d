// ABOUTME: Calendar date key helpers.
// ABOUTME: Keys are YYYY-MM-DD in the local time zone, not UTC.
package models

import (
	"fmt"
	"time"
)

// DateKeyLayout is the calendar date key format used throughout storage.
const DateKeyLayout = "2006-01-02"

// DateKey formats a time as its local-timezone calendar date key.
func DateKey(t time.Time) string {
	return t.Local().Format(DateKeyLayout)
}

// Today returns the current local date key.
func Today() string {
	return DateKey(time.Now())
}

// ParseDateKey parses a YYYY-MM-DD key into a local-time midnight.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}
