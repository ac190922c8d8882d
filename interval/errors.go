package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrOverlap is matched by every *OverlapError.
	ErrOverlap = errors.New("Overlap in intervals!")
	// ErrUnsorted reports a series whose start times go backwards.
	ErrUnsorted = errors.New("intervals not sorted by start time")
	// ErrEmptyInterval reports an interval that does not end after it starts.
	ErrEmptyInterval = errors.New("interval start is not before its end")
	// ErrInvalidTime reports a time that is not HH:MM within 00:00-24:00.
	ErrInvalidTime = errors.New("invalid HH:MM time")
)

// OverlapError reports a record that starts before the previous one ended.
type OverlapError struct {
	Index       int
	PreviousEnd Time
	StartTime   Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("Overlap in intervals! record %d starts at %s, previous record ends at %s", e.Index, e.StartTime, e.PreviousEnd)
}

func (e *OverlapError) Is(target error) bool { return target == ErrOverlap }

// Validate checks the ordering contract shared by every operation in this
// package: well-formed times, StartTime < EndTime, ascending starts and no
// overlap between neighbours. Gaps are allowed.
func Validate[V any](series []Interval[V]) error {
	for i, iv := range series {
		if !iv.StartTime.Valid() {
			return fmt.Errorf("record %d: %w: %q", i, ErrInvalidTime, iv.StartTime)
		}
		if !iv.EndTime.Valid() {
			return fmt.Errorf("record %d: %w: %q", i, ErrInvalidTime, iv.EndTime)
		}
		if iv.StartTime >= iv.EndTime {
			return fmt.Errorf("record %d [%s, %s): %w", i, iv.StartTime, iv.EndTime, ErrEmptyInterval)
		}
		if i == 0 {
			continue
		}
		prev := series[i-1]
		if iv.StartTime < prev.StartTime {
			return fmt.Errorf("record %d starts at %s after %s: %w", i, iv.StartTime, prev.StartTime, ErrUnsorted)
		}
		if iv.StartTime < prev.EndTime {
			return &OverlapError{Index: i, PreviousEnd: prev.EndTime, StartTime: iv.StartTime}
		}
	}
	return nil
}
