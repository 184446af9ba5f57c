package pipeline

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/namegen/pkg/logger"
)

// Reporter receives periodic progress updates during a run. Reporters are
// purely observational: a nil reporter disables reporting and never affects
// generation.
type Reporter interface {
	Progress(generated int64, elapsed time.Duration)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(generated int64, elapsed time.Duration)

func (f ReporterFunc) Progress(generated int64, elapsed time.Duration) {
	f(generated, elapsed)
}

// NewLogReporter reports progress through a slog logger, including the
// running throughput.
func NewLogReporter(log *slog.Logger) Reporter {
	return ReporterFunc(func(generated int64, elapsed time.Duration) {
		rate := 0.0
		if elapsed > 0 {
			rate = float64(generated) / elapsed.Seconds()
		}
		log.Info("progress",
			logger.Count(generated),
			logger.Elapsed(elapsed),
			logger.Rate(rate))
	})
}
