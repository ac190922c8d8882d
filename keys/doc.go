// Package keys encodes and decodes the flattened property keys that carry
// rates on map features.
//
// A key is the slug of "<vehicle type>-<day type>" followed by the start and
// end of the interval with ':' replaced by '-':
//
//	motorcycles-weekdays-08-00-09-00
//
// Decoding relies on both times being zero-padded to five characters.
package keys
