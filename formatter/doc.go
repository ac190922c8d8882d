// Package formatter reads and writes the persisted intermediate formats.
//
// This package is organized into:
// - source.go: decoding of the raw rate and gantry payloads (bare arrays or {"value": [...]} envelopes)
// - json.go: the grouped-rates and splits JSON objects
// - geojson.go: line-delimited GeoJSON features and FeatureCollection output
package formatter
