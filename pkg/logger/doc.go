// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across the generator by
// exposing a single factory, New, that creates a *slog.Logger configured by a
// set of Option functions:
//
//	log := logger.New(
//	    logger.WithDevelopment("namegen"),
//	    logger.WithContextExtractors(runIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
// Helper constructors such as Count, Elapsed, Output, and RunID live in
// attr.go and return commonly-used slog.Attr instances to keep attribute
// naming consistent across the codebase.
package logger
