package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Count records a number of generated names under the key "count".
func Count(n int64) slog.Attr {
	return slog.Int64("count", n)
}

// Total records the requested total under the key "total".
func Total(n int64) slog.Attr {
	return slog.Int64("total", n)
}

// BatchSize records the batch size under the key "batch_size".
func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}

// Output records the output path under the key "output".
func Output(path string) slog.Attr {
	return slog.String("output", path)
}

// Source records a distribution source path under the key "source".
func Source(path string) slog.Attr {
	return slog.String("source", path)
}

// Elapsed records a duration under the key "elapsed".
func Elapsed(d time.Duration) slog.Attr {
	return slog.Duration("elapsed", d)
}

// Rate records a throughput in names per second under the key "names_per_sec".
func Rate(namesPerSec float64) slog.Attr {
	return slog.Float64("names_per_sec", namesPerSec)
}

// RunID records the pipeline run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}
