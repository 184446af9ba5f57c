package namegen

import "errors"

// Common errors
var (
	// ErrEmptyFirstNames is returned when the first-name table has no entries
	ErrEmptyFirstNames = errors.New("first-name table is empty")

	// ErrEmptyLastNames is returned when the last-name table has no entries
	ErrEmptyLastNames = errors.New("last-name table is empty")

	// ErrInvalidBatchSize is returned when a batch size is not positive
	ErrInvalidBatchSize = errors.New("batch size must be positive")
)
