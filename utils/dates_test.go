package utils

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	if _, err := ParseDate("2024-01-10"); err != nil {
		t.Errorf("plain date: %v", err)
	}
	if _, err := ParseDate("2024-01-10T15:04:05Z"); err != nil {
		t.Errorf("rfc3339: %v", err)
	}
	if _, err := ParseDate("10/01/2024"); err == nil {
		t.Error("unknown format must error")
	}
}

func TestNightsBetween(t *testing.T) {
	in := time.Date(2024, time.January, 10, 22, 0, 0, 0, time.UTC)
	out := time.Date(2024, time.January, 13, 6, 0, 0, 0, time.UTC)
	if got := NightsBetween(in, out); got != 3 {
		t.Errorf("nights = %d, want 3", got)
	}
	if got := NightsBetween(out, in); got != 0 {
		t.Errorf("inverted range nights = %d, want 0", got)
	}
	if got := NightsBetween(in, in); got != 0 {
		t.Errorf("same day nights = %d, want 0", got)
	}
}
