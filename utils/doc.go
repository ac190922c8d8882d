// Package utils provides internal utility functions for the erp-rates tools.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Wall clock to "HH:MM" conversion in a configured timezone
//   - Timestamp formatting for logs and health output
package utils
