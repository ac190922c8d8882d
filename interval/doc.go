// Package interval implements the half-open time-of-day interval arithmetic
// behind the rate tables.
//
// All series handled here are slices of Interval ordered ascending by
// StartTime, with times expressed as zero-padded "HH:MM" strings so that
// plain string comparison is chronological comparison.
//
// # Operations
//
//   - PadGaps fills a sparse series so that it partitions [00:00, 24:00),
//     inserting zero-valued filler intervals and rejecting overlaps.
//   - Collapse merges contiguous intervals carrying equal values;
//     CollapseOperational does the same on the derived "value > 0" state.
//   - Splits collects the boundary times used by one or more series.
//   - SplitRates re-cuts a series at every boundary of a global split list so
//     that independently built series line up record for record.
//   - FilterRates returns the bounded circular display window anchored at
//     the interval containing a given time.
//
// # Usage
//
//	padded, err := interval.PadGaps(series)
//	if err != nil {
//	    // overlapping source data; errors.Is(err, interval.ErrOverlap)
//	}
//	collapsed := interval.Collapse(padded)
//	window := interval.FilterRates(collapsed, interval.ViewMinimal, "08:32")
//
// # Thread Safety
//
// Every function is pure: inputs are never modified and each call allocates
// its own output, so concurrent use needs no locking.
package interval
