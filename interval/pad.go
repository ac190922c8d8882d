package interval

// PadGaps returns a new series covering [DayStart, DayEnd) exactly. Gaps
// before, between and after the input records are filled with intervals
// carrying the zero value of V. The input must be sorted by StartTime; a
// record starting before the previous record's end yields an *OverlapError.
func PadGaps[V any](series []Interval[V]) ([]Interval[V], error) {
	out := make([]Interval[V], 0, 2*len(series)+1)
	prevEnd := DayStart
	for i, iv := range series {
		switch {
		case iv.StartTime == prevEnd:
		case iv.StartTime > prevEnd:
			out = append(out, Interval[V]{StartTime: prevEnd, EndTime: iv.StartTime})
		default:
			return nil, &OverlapError{Index: i, PreviousEnd: prevEnd, StartTime: iv.StartTime}
		}
		out = append(out, iv)
		prevEnd = iv.EndTime
	}
	if prevEnd != DayEnd {
		out = append(out, Interval[V]{StartTime: prevEnd, EndTime: DayEnd})
	}
	return out, nil
}
