package interval

import (
	"golang.org/x/exp/constraints"
)

// Number is any value type a charge amount can be expressed in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Collapse merges each interval into its predecessor when it starts exactly
// where the predecessor ends and carries an equal value. Intervals separated
// by a gap are never merged.
func Collapse[V comparable](series []Interval[V]) []Interval[V] {
	out := make([]Interval[V], 0, len(series))
	for _, iv := range series {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.EndTime == iv.StartTime && last.Value == iv.Value {
				last.EndTime = iv.EndTime
				continue
			}
		}
		out = append(out, iv)
	}
	return out
}

// CollapseOperational maps every amount to its operational state
// (amount > 0) and merges contiguous runs of equal state.
func CollapseOperational[V Number](series []Interval[V]) []Interval[bool] {
	states := make([]Interval[bool], len(series))
	for i, iv := range series {
		states[i] = Interval[bool]{StartTime: iv.StartTime, EndTime: iv.EndTime, Value: iv.Value > 0}
	}
	return Collapse(states)
}

// Max returns the largest value in series, or the zero value when empty.
func Max[V Number](series []Interval[V]) V {
	var m V
	for i, iv := range series {
		if i == 0 || iv.Value > m {
			m = iv.Value
		}
	}
	return m
}
