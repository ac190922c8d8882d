// Package gantry turns flattened zone rate tables into GeoJSON point
// features and reads per-gantry rate series back out of them.
package gantry
