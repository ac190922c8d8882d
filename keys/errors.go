package keys

import "errors"

// ErrMalformedKey is returned when a key does not have the encoded interval shape.
var ErrMalformedKey = errors.New("malformed rate key")
