package utils

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/erp-rates/interval"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromTime formats t in ISO8601, or "" for the zero time
func Iso8601FromTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ClockTime returns t as a zero-padded "HH:MM" wall-clock value in loc
func ClockTime(t time.Time, loc *time.Location) interval.Time {
	if loc == nil {
		loc = time.UTC
	}
	return interval.Time(t.In(loc).Format("15:04"))
}

// ClockNow returns the current "HH:MM" in the named timezone
func ClockNow(timezone string) (interval.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	return ClockTime(time.Now(), loc), nil
}

// ParseClock accepts "HH:MM" or, when s is empty, falls back to now in timezone
func ParseClock(s, timezone string) (interval.Time, error) {
	if s == "" {
		return ClockNow(timezone)
	}
	return interval.ParseTime(s)
}
