package freqdist

import "errors"

// Common errors
var (
	// ErrLoad is returned when a distribution source cannot be read or parsed
	ErrLoad = errors.New("failed to load name distribution")

	// ErrMalformedLine is returned when a weight field is not numeric
	ErrMalformedLine = errors.New("malformed distribution line")

	// ErrManifest is returned when a dataset manifest is missing or incomplete
	ErrManifest = errors.New("invalid dataset manifest")
)
