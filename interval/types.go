package interval

import (
	"fmt"
)

// Time is a zero-padded 24-hour clock value ("HH:MM"). "24:00" is allowed and
// marks the end of the day.
type Time string

const (
	DayStart Time = "00:00"
	DayEnd   Time = "24:00"
)

// ParseTime validates s as a zero-padded "HH:MM" value.
func ParseTime(s string) (Time, error) {
	t := Time(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

// Valid reports whether t is a well-formed time between 00:00 and 24:00.
func (t Time) Valid() bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	if m > 59 || h > 24 {
		return false
	}
	return h < 24 || m == 0
}

// Minutes returns the number of minutes since midnight, or -1 for a
// malformed value.
func (t Time) Minutes() int {
	if !t.Valid() {
		return -1
	}
	return (int(t[0]-'0')*10+int(t[1]-'0'))*60 + int(t[3]-'0')*10 + int(t[4]-'0')
}

func (t Time) String() string { return string(t) }

// Interval is a half-open [StartTime, EndTime) span carrying a value.
type Interval[V any] struct {
	StartTime Time `json:"startTime"`
	EndTime   Time `json:"endTime"`
	Value     V    `json:"value"`
}

// Contains reports whether StartTime <= t < EndTime.
func (iv Interval[V]) Contains(t Time) bool {
	return iv.StartTime <= t && t < iv.EndTime
}

// Minutes returns the length of the interval in minutes.
func (iv Interval[V]) Minutes() int {
	return iv.EndTime.Minutes() - iv.StartTime.Minutes()
}

// Duration sums the length of every interval in series, in minutes.
func Duration[V any](series []Interval[V]) int {
	total := 0
	for _, iv := range series {
		total += iv.Minutes()
	}
	return total
}
