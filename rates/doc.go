// Package rates builds the aggregate rate and operational-status tables from
// raw gantry charge records.
//
// Records are first validated and grouped with Prepare, one Group per
// vehicle type and day type. For each group the per-zone series are aligned
// on a shared boundary list (see interval.SplitRates) so that every zone is
// keyed by the same "HH:MM-HH:MM" interval strings:
//
//	groups, err := rates.Prepare(records)
//	tables := rates.Build(groups)
//	props := rates.Flatten(tables.Rates) // zone -> flattened key -> amount
package rates
