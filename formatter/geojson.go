package formatter

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/erp-rates/gantry"
)

// FeatureCollection is the GeoJSON wrapper used when a single document is
// needed instead of line-delimited output.
type FeatureCollection struct {
	Type     string           `json:"type"`
	Features []gantry.Feature `json:"features"`
}

// WriteFeatures writes one feature per line.
func WriteFeatures(w io.Writer, features []gantry.Feature) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range features {
		if err := enc.Encode(features[i]); err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// ReadFeatures reads line-delimited features until EOF.
func ReadFeatures(r io.Reader) ([]gantry.Feature, error) {
	dec := json.NewDecoder(r)
	var out []gantry.Feature
	for {
		var f gantry.Feature
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", len(out), err)
		}
		out = append(out, f)
	}
}

// WriteFeatureCollection writes features as one GeoJSON FeatureCollection.
func WriteFeatureCollection(w io.Writer, features []gantry.Feature) error {
	if features == nil {
		features = []gantry.Feature{}
	}
	return json.NewEncoder(w).Encode(FeatureCollection{Type: "FeatureCollection", Features: features})
}
