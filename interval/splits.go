package interval

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Set is an unordered set of boundary times.
type Set map[Time]struct{}

// Splits returns every distinct StartTime and EndTime used by series.
func Splits[V any](series []Interval[V]) Set {
	s := make(Set, 2*len(series))
	for _, iv := range series {
		s[iv.StartTime] = struct{}{}
		s[iv.EndTime] = struct{}{}
	}
	return s
}

// Union adds every member of other to s and returns s.
func (s Set) Union(other Set) Set {
	for t := range other {
		s[t] = struct{}{}
	}
	return s
}

// Sorted returns the members of s in ascending order.
func (s Set) Sorted() []Time {
	out := maps.Keys(s)
	slices.Sort(out)
	return out
}
