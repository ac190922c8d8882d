package rates

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/keys"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return interval.Time(fl.Field().String()).Valid()
	})
	return v
}

// Prepare validates records, drops those without a positive charge, sorts
// them by (ZoneID, StartTime, EndTime) and groups them by vehicle type and
// day type, keyed by slug. Overlapping records within one zone of a group
// are rejected.
// Groups are returned ordered by slug; records is not modified.
func Prepare(records []Record) ([]Group, error) {
	for i := range records {
		if err := validate.Struct(records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ChargeAmount > 0 {
			kept = append(kept, r)
		}
	}
	slices.SortStableFunc(kept, compareRecords)

	// Labels that differ only in case or punctuation share a slug and
	// therefore one group.
	bySlug := map[string]*Group{}
	for _, r := range kept {
		label := keys.Label(r.VehicleType, r.DayType)
		slug := keys.Slugify(label)
		g, ok := bySlug[slug]
		if !ok {
			g = &Group{Label: label, Slug: slug, VehicleType: r.VehicleType, DayType: r.DayType}
			bySlug[slug] = g
		}
		g.Records = append(g.Records, r)
	}

	groups := make([]Group, 0, len(bySlug))
	for _, g := range bySlug {
		ids, series := g.zoneSeries()
		for _, id := range ids {
			if err := interval.Validate(series[id]); err != nil {
				return nil, fmt.Errorf("%s zone %s: %w", g.Label, id, err)
			}
		}
		groups = append(groups, *g)
	}
	slices.SortFunc(groups, func(a, b Group) int { return strings.Compare(a.Slug, b.Slug) })
	return groups, nil
}

// Index returns the persisted form of groups: slug -> records.
func Index(groups []Group) map[string][]Record {
	out := make(map[string][]Record, len(groups))
	for _, g := range groups {
		out[g.Slug] = slices.Clone(g.Records)
	}
	return out
}

// FromIndex rebuilds groups from the persisted slug -> records form,
// re-running every Prepare check.
func FromIndex(index map[string][]Record) ([]Group, error) {
	var all []Record
	for _, slug := range sortedKeys(index) {
		for _, r := range index[slug] {
			if got := keys.Slugify(keys.Label(r.VehicleType, r.DayType)); got != slug {
				return nil, fmt.Errorf("record %s/%s filed under %q", r.VehicleType, r.DayType, slug)
			}
		}
		all = append(all, index[slug]...)
	}
	return Prepare(all)
}

func compareRecords(a, b Record) int {
	return cmp.Or(
		strings.Compare(a.ZoneID, b.ZoneID),
		strings.Compare(string(a.StartTime), string(b.StartTime)),
		strings.Compare(string(a.EndTime), string(b.EndTime)),
	)
}

// zoneSeries splits the group's records per zone, keeping record order.
func (g Group) zoneSeries() ([]string, map[string][]interval.Interval[float64]) {
	series := map[string][]interval.Interval[float64]{}
	for _, r := range g.Records {
		series[r.ZoneID] = append(series[r.ZoneID], r.Interval())
	}
	return sortedKeys(series), series
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
