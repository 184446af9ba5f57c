package sink

import "errors"

// Common errors
var (
	// ErrWrite is returned on any output I/O failure. Fatal to the run;
	// partial output already flushed stays on disk.
	ErrWrite = errors.New("failed to write output")

	// ErrClosed is returned when writing to a closed writer
	ErrClosed = errors.New("writer already closed")
)
