package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/keys"
	"github.com/theoremus-urban-solutions/erp-rates/rates"
)

// WriteGroupedRates writes the slug -> records object.
func WriteGroupedRates(w io.Writer, index map[string][]rates.Record) error {
	return writeIndented(w, index)
}

// ReadGroupedRates reads the slug -> records object.
func ReadGroupedRates(r io.Reader) (map[string][]rates.Record, error) {
	var out map[string][]rates.Record
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode grouped rates: %w", err)
	}
	return out, nil
}

// WriteSplits writes the slug -> sorted boundary list object.
func WriteSplits(w io.Writer, splits map[string][]interval.Time) error {
	return writeIndented(w, splits)
}

// ReadSplits reads the slug -> sorted boundary list object and checks every
// list is well formed and ascending.
func ReadSplits(r io.Reader) (map[string][]interval.Time, error) {
	var out map[string][]interval.Time
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode splits: %w", err)
	}
	for slug, list := range out {
		for i, t := range list {
			if !t.Valid() {
				return nil, fmt.Errorf("splits %s[%d]: %w: %q", slug, i, interval.ErrInvalidTime, t)
			}
			if i > 0 && list[i-1] >= t {
				return nil, fmt.Errorf("splits %s: %w at %d", slug, interval.ErrUnsorted, i)
			}
		}
	}
	return out, nil
}

// WriteStatus writes the slug -> interval key -> zone -> operational object.
func WriteStatus(w io.Writer, status map[string]rates.StatusTable) error {
	return writeIndented(w, status)
}

// ReadStatus reads the slug -> interval key -> zone -> operational object
// and rejects interval keys that are not "HH:MM-HH:MM".
func ReadStatus(r io.Reader) (map[string]rates.StatusTable, error) {
	var out map[string]rates.StatusTable
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	for slug, table := range out {
		for k := range table {
			if _, _, err := keys.SplitIntervalKey(k); err != nil {
				return nil, fmt.Errorf("status %s: %w", slug, err)
			}
		}
	}
	return out, nil
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
