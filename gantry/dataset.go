package gantry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/keys"
)

// ErrNotFound is returned for an unknown gantry id.
var ErrNotFound = errors.New("gantry not found")

// Dataset is an immutable lookup view over built features and the
// per-group split lists.
type Dataset struct {
	byID     map[string]Feature
	features []Feature
	splits   map[string][]interval.Time
}

// NewDataset indexes features by gantry ID. The inputs are not retained.
func NewDataset(features []Feature, splits map[string][]interval.Time) *Dataset {
	d := &Dataset{
		byID:     make(map[string]Feature, len(features)),
		features: slices.Clone(features),
		splits:   make(map[string][]interval.Time, len(splits)),
	}
	for _, f := range d.features {
		d.byID[f.GantryID()] = f
	}
	for slug, s := range splits {
		d.splits[slug] = slices.Clone(s)
	}
	return d
}

// Features returns every feature in build order.
func (d *Dataset) Features() []Feature {
	return slices.Clone(d.features)
}

// Len is the number of gantries.
func (d *Dataset) Len() int { return len(d.features) }

// Gantry returns the feature of one gantry.
func (d *Dataset) Gantry(id string) (Feature, error) {
	f, ok := d.byID[id]
	if !ok {
		return Feature{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return f, nil
}

// Rates returns the full-day series of a gantry together with the display
// window for view at time at.
func (d *Dataset) Rates(id, vehicleType, dayType string, view interval.View, at interval.Time) (Rates, []interval.Interval[float64], error) {
	f, err := d.Gantry(id)
	if err != nil {
		return Rates{}, nil, err
	}
	r, err := ExtractGantryRates(f.Properties, vehicleType, dayType)
	if err != nil {
		return Rates{}, nil, err
	}
	return r, interval.FilterRates(r.Rates, view, at), nil
}

// ActiveLayer returns the flattened key styling the map at time at.
func (d *Dataset) ActiveLayer(vehicleType, dayType string, at interval.Time) (string, bool) {
	prefix := keys.Prefix(vehicleType, dayType)
	return keys.ActiveKey(prefix, d.splits[prefix], at)
}
