package pipeline

import "log/slog"

// Defaults tuned for generating tens of millions of names on one machine.
const (
	DefaultBatchSize      = 100_000
	DefaultReportInterval = 1_000_000
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBatchSize sets how many names are generated and written per batch.
// Non-positive values are ignored.
func WithBatchSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithBufferSize sets the writer's output buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.bufferSize = n
		}
	}
}

// WithSeed fixes the randomness seed, making the run reproducible. Without
// it each run seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(p *Pipeline) {
		p.seed = seed
		p.seedSet = true
	}
}

// WithWorkers enables the producer/consumer split: n generator goroutines
// feed a bounded queue drained by a single writer. Values below 2 keep the
// default sequential loop. With multiple workers the output order is
// non-deterministic across batches; names are independent and unordered, so
// only callers relying on seed-reproducible files should avoid it.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 1 {
			p.workers = n
		}
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(p *Pipeline) { p.reporter = r }
}

// WithReportInterval sets how many names pass between progress reports.
func WithReportInterval(n int64) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.interval = n
		}
	}
}

// WithLogger sets the run logger. Silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}
