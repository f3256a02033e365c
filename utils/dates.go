package utils

import (
	"strings"
	"time"
)

// ParseDate accepts the two formats the frontend has historically sent.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// TruncateToMidnight drops the time-of-day component in the date's location.
func TruncateToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NightsBetween counts nights in [checkIn, checkOut) on midnight-truncated
// dates. Never negative.
func NightsBetween(checkIn, checkOut time.Time) int {
	ci := TruncateToMidnight(checkIn)
	co := TruncateToMidnight(checkOut)
	n := int(Round(co.Sub(ci).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}
