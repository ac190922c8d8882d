package rates

import (
	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/keys"
)

// BuildStatus collapses each zone to runs of equal operational state,
// re-slices every zone onto the union of their boundaries and returns
// interval key -> zone -> operational.
func BuildStatus(g Group) StatusTable {
	ids, series := g.zoneSeries()
	collapsed := make(map[string][]interval.Interval[bool], len(ids))
	global := interval.Set{}
	for _, id := range ids {
		c := interval.CollapseOperational(series[id])
		collapsed[id] = c
		global.Union(interval.Splits(c))
	}
	splits := global.Sorted()

	table := StatusTable{}
	for _, id := range ids {
		for _, iv := range interval.SplitRates(collapsed[id], splits) {
			k := keys.IntervalKey(iv.StartTime, iv.EndTime)
			if table[k] == nil {
				table[k] = map[string]bool{}
			}
			table[k][id] = iv.Value
		}
	}
	return table
}

// BuildRates re-slices each zone's raw series onto the union of every
// zone's boundaries and returns zone -> interval key -> amount, together
// with the sorted boundary list.
func BuildRates(g Group) (RateTable, []interval.Time) {
	ids, series := g.zoneSeries()
	splits := Splits(g)

	table := make(RateTable, len(ids))
	for _, id := range ids {
		row := map[string]float64{}
		for _, iv := range interval.SplitRates(series[id], splits) {
			row[keys.IntervalKey(iv.StartTime, iv.EndTime)] = iv.Value
		}
		table[id] = row
	}
	return table, splits
}

// Splits returns the sorted union of every boundary used by the group.
func Splits(g Group) []interval.Time {
	ids, series := g.zoneSeries()
	global := interval.Set{}
	for _, id := range ids {
		global.Union(interval.Splits(series[id]))
	}
	return global.Sorted()
}

// Build computes both views for every group.
func Build(groups []Group) *Tables {
	t := &Tables{
		Status: make(map[string]StatusTable, len(groups)),
		Rates:  make(map[string]RateTable, len(groups)),
		Splits: make(map[string][]interval.Time, len(groups)),
	}
	for _, g := range groups {
		t.Status[g.Slug] = BuildStatus(g)
		t.Rates[g.Slug], t.Splits[g.Slug] = BuildRates(g)
	}
	return t
}

// Flatten denormalises slug -> zone -> interval key -> amount into
// zone -> slugify("<slug>-<interval key>") -> amount.
func Flatten(tables map[string]RateTable) Flattened {
	out := Flattened{}
	for slug, table := range tables {
		for zone, row := range table {
			if out[zone] == nil {
				out[zone] = map[string]float64{}
			}
			for k, v := range row {
				out[zone][keys.Slugify(slug+"-"+k)] = v
			}
		}
	}
	return out
}
