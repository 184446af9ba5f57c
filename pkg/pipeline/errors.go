package pipeline

import "errors"

// Common errors
var (
	// ErrInvalidTotal is returned when the requested total is negative
	ErrInvalidTotal = errors.New("total must not be negative")

	// ErrNoOutput is returned when no destination path is configured
	ErrNoOutput = errors.New("output path cannot be empty")

	// ErrAlreadyRun is returned when Run is called on a used pipeline
	ErrAlreadyRun = errors.New("pipeline has already run")

	// ErrInterrupted is returned when cancellation stops the run. The output
	// file is drained and closed before it surfaces - no unflushed tail.
	ErrInterrupted = errors.New("run interrupted")
)
