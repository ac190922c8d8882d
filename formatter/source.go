package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theoremus-urban-solutions/erp-rates/gantry"
	"github.com/theoremus-urban-solutions/erp-rates/rates"
)

type envelope[T any] struct {
	Value []T `json:"value"`
}

// DecodeRecords parses a raw rates payload.
func DecodeRecords(data []byte) ([]rates.Record, error) {
	out, err := decodeList[rates.Record](data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rates: %w", err)
	}
	return out, nil
}

// DecodeGantries parses a raw gantries payload.
func DecodeGantries(data []byte) ([]gantry.Gantry, error) {
	out, err := decodeList[gantry.Gantry](data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gantries: %w", err)
	}
	return out, nil
}

// decodeList accepts either a JSON array or an object wrapping the array in
// "value", the shape used by paginated REST sources.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	return env.Value, nil
}
