package interval

// SplitRates re-cuts series at every time in splits that falls strictly
// inside one of its intervals. splits must be sorted ascending. The result
// covers exactly the same time as series, every slice keeping the value of
// the interval it was cut from.
func SplitRates[V any](series []Interval[V], splits []Time) []Interval[V] {
	out := make([]Interval[V], 0, len(series)+len(splits))
	var cand Interval[V]
	open := false
	i, j := 0, 0
	for i < len(series) && j < len(splits) {
		if !open {
			cand = series[i]
			open = true
		}
		split := splits[j]
		switch {
		case cand.EndTime <= split:
			out = append(out, cand)
			open = false
			i++
		case split <= cand.StartTime:
			j++
		default:
			out = append(out, Interval[V]{StartTime: cand.StartTime, EndTime: split, Value: cand.Value})
			cand = Interval[V]{StartTime: split, EndTime: cand.EndTime, Value: cand.Value}
			j++
		}
	}
	if open {
		out = append(out, cand)
		i++
	}
	return append(out, series[i:]...)
}
