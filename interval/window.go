package interval

import (
	"fmt"
	"slices"
)

// View selects how many rows FilterRates returns.
type View string

const (
	ViewAll     View = "all"
	ViewMinimal View = "minimal"
)

// WindowSize is the number of rows shown by ViewMinimal.
const WindowSize = 4

// ParseView accepts "all" or "minimal"; empty means minimal.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewMinimal:
		return ViewMinimal, nil
	case ViewAll:
		return ViewAll, nil
	}
	return "", fmt.Errorf("unsupported view %q", s)
}

// Find returns the index of the first interval containing t, or -1.
func Find[V any](series []Interval[V], t Time) int {
	for i, iv := range series {
		if iv.Contains(t) {
			return i
		}
	}
	return -1
}

// FilterRates returns a copy of series unless view is ViewMinimal and series
// is longer than WindowSize. In that case it returns the circular window of
// WindowSize intervals starting with the one containing t, or an empty slice
// when no interval contains t.
func FilterRates[V any](series []Interval[V], view View, t Time) []Interval[V] {
	if view != ViewMinimal || len(series) <= WindowSize {
		return slices.Clone(series)
	}
	idx := Find(series, t)
	if idx < 0 {
		return []Interval[V]{}
	}
	return Window(series, idx, WindowSize)
}

// Window takes size intervals starting at idx, wrapping to the start of
// series when it runs off the end.
func Window[V any](series []Interval[V], idx, size int) []Interval[V] {
	out := make([]Interval[V], 0, size)
	out = append(out, series[idx:min(idx+size, len(series))]...)
	wrap := min(max(0, size-(len(series)-idx)), idx)
	return append(out, series[:wrap]...)
}
