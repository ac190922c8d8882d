package gantry

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/keys"
)

// Rates is the full-day rate series of one gantry for one vehicle type and
// day type.
type Rates struct {
	MaxRateAmount float64                      `json:"maxRateAmount"`
	Rates         []interval.Interval[float64] `json:"rates"`
}

// ExtractGantryRates collects the properties keyed under the vehicle type
// and day type, merges contiguous equal amounts and pads the result to a
// gap-free day. Without matching keys the result is one zero interval
// spanning the day.
func ExtractGantryRates(props Properties, vehicleType, dayType string) (Rates, error) {
	prefix := keys.Prefix(vehicleType, dayType)
	var series []interval.Interval[float64]
	for k, v := range props {
		if !keys.Matches(k, prefix) {
			continue
		}
		start, end, err := keys.Decode(k, prefix)
		if err != nil {
			return Rates{}, err
		}
		amount, err := toFloat(v)
		if err != nil {
			return Rates{}, fmt.Errorf("property %s: %w", k, err)
		}
		series = append(series, interval.Interval[float64]{StartTime: start, EndTime: end, Value: amount})
	}
	slices.SortFunc(series, func(a, b interval.Interval[float64]) int {
		return cmp.Or(strings.Compare(string(a.StartTime), string(b.StartTime)), strings.Compare(string(a.EndTime), string(b.EndTime)))
	})

	padded, err := interval.PadGaps(interval.Collapse(series))
	if err != nil {
		return Rates{}, fmt.Errorf("%s: %w", prefix, err)
	}
	return Rates{MaxRateAmount: interval.Max(padded), Rates: padded}, nil
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
