package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/namegen/pkg/freqdist"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/namegen"
	"github.com/dmitrymomot/namegen/pkg/sink"
)

// Pipeline drives one generation run: load the distributions once, then loop
// generate-batch / write-batch until the requested total is reached. A
// Pipeline is single-use; construct a new one per run.
type Pipeline struct {
	manifest freqdist.Manifest
	total    int64
	output   string

	batchSize  int
	bufferSize int
	seed       int64
	seedSet    bool
	workers    int
	interval   int64
	reporter   Reporter
	log        *slog.Logger

	runID uuid.UUID

	mu         sync.Mutex
	state      State
	generated  atomic.Int64
	nextReport int64
}

// Result summarizes a completed run.
type Result struct {
	RunID     uuid.UUID
	Generated int64
	Elapsed   time.Duration
	Output    string
}

// Rate returns the run's average throughput in names per second.
func (r *Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Generated) / r.Elapsed.Seconds()
}

// New creates a pipeline writing total names to output. total == 0 is valid
// and produces an empty output file.
func New(manifest freqdist.Manifest, total int64, output string, opts ...Option) (*Pipeline, error) {
	if total < 0 {
		return nil, ErrInvalidTotal
	}
	if output == "" {
		return nil, ErrNoOutput
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		manifest:   manifest,
		total:      total,
		output:     output,
		batchSize:  DefaultBatchSize,
		bufferSize: sink.DefaultBufferSize,
		interval:   DefaultReportInterval,
		runID:      uuid.New(),
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Generate is the one-shot entry point: build a pipeline and run it.
func Generate(ctx context.Context, manifest freqdist.Manifest, total int64, output string, opts ...Option) (*Result, error) {
	p, err := New(manifest, total, output, opts...)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx)
}

// RunID returns the identifier attached to this run's result and log lines.
func (p *Pipeline) RunID() uuid.UUID { return p.runID }

// State returns the current run phase.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Generated returns the number of names handed to the writer so far. After a
// failed run this is the partial-progress count.
func (p *Pipeline) Generated() int64 { return p.generated.Load() }

// Run executes the pipeline. Cancellation via ctx drains and closes the
// output before returning ErrInterrupted, so partial output is flushed, not
// lost. Load and write failures are fatal; there are no retries, since a
// malformed data file or a full disk doesn't get better on a second attempt.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	p.mu.Lock()
	if p.state != StateIdle {
		p.mu.Unlock()
		return nil, ErrAlreadyRun
	}
	p.state = StateLoading
	p.mu.Unlock()

	start := time.Now()
	p.nextReport = p.interval
	log := p.logOrNop()

	log.Info("run starting",
		logger.RunID(p.runID),
		logger.Total(p.total),
		logger.BatchSize(p.batchSize),
		logger.Output(p.output))

	store := freqdist.NewStore(freqdist.WithLogger(p.log))
	set, err := store.LoadAll(p.manifest)
	if err != nil {
		return nil, p.fail(log, "loading distributions", err)
	}

	gen, err := namegen.New(set.FirstNames(), set.Last)
	if err != nil {
		return nil, p.fail(log, "building generator", err)
	}

	w, err := sink.New(p.output, sink.WithBufferSize(p.bufferSize))
	if err != nil {
		return nil, p.fail(log, "opening output", err)
	}

	p.setState(StateGenerating)

	seed := p.seed
	if !p.seedSet {
		seed = time.Now().UnixNano()
	}

	var runErr error
	if p.workers > 1 {
		runErr = p.runConcurrent(ctx, gen, w, seed, start)
	} else {
		runErr = p.runSequential(ctx, gen, w, seed, start)
	}

	// Drain regardless of how the loop ended: flush whatever was generated.
	p.setState(StateDraining)
	closeErr := w.Close()
	p.generated.Store(w.Written())

	if runErr != nil {
		return nil, p.fail(log, "generating", runErr)
	}
	if closeErr != nil {
		return nil, p.fail(log, "draining output", closeErr)
	}

	p.setState(StateDone)
	res := &Result{
		RunID:     p.runID,
		Generated: w.Written(),
		Elapsed:   time.Since(start),
		Output:    w.Path(),
	}
	log.Info("run complete",
		logger.RunID(p.runID),
		logger.Count(res.Generated),
		logger.Elapsed(res.Elapsed),
		logger.Rate(res.Rate()),
		logger.Output(res.Output))
	return res, nil
}

func (p *Pipeline) runSequential(ctx context.Context, gen *namegen.Generator, w *sink.Writer, seed int64, start time.Time) error {
	rng := rand.New(rand.NewSource(seed))
	seq, err := gen.Sequence(rng, p.total, p.batchSize)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return errors.Join(ErrInterrupted, ctx.Err())
		default:
		}

		batch, ok := seq.Next()
		if !ok {
			return nil
		}
		if err := w.WriteBatch(batch); err != nil {
			return err
		}
		p.generated.Store(w.Written())
		p.report(start)
	}
}

// runConcurrent is the producer/consumer split: workers claim batch-sized
// slices of the remaining count, draw them with per-worker rngs, and hand
// fresh batch slices to the single writer through a bounded channel. Batch
// order across workers is not deterministic.
func (p *Pipeline) runConcurrent(ctx context.Context, gen *namegen.Generator, w *sink.Writer, seed int64, start time.Time) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var remaining atomic.Int64
	remaining.Store(p.total)

	batches := make(chan []string, p.workers)

	var wg sync.WaitGroup
	for i := range p.workers {
		wg.Add(1)
		go func(workerSeed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed))
			for {
				if ctx.Err() != nil {
					return
				}
				n := claim(&remaining, int64(p.batchSize))
				if n == 0 {
					return
				}
				// Fresh slice per batch: the buffer crosses a goroutine
				// boundary and cannot be reused until written.
				batch := gen.Batch(rng, int(n))
				select {
				case batches <- batch:
				case <-ctx.Done():
					return
				}
			}
		}(seed + int64(i))
	}

	go func() {
		wg.Wait()
		close(batches)
	}()

	var runErr error
	for batch := range batches {
		if runErr != nil {
			continue // keep draining so producers unblock
		}
		if err := w.WriteBatch(batch); err != nil {
			runErr = err
			cancel()
			continue
		}
		p.generated.Store(w.Written())
		p.report(start)

		if err := ctx.Err(); err != nil {
			runErr = errors.Join(ErrInterrupted, err)
			cancel()
		}
	}

	// Workers bail out without sending once the context is cancelled, so the
	// channel can close with the total unreached and no error observed above.
	// A short count plus a dead context is an interruption, not a completion.
	if runErr == nil && ctx.Err() != nil && w.Written() < p.total {
		runErr = errors.Join(ErrInterrupted, ctx.Err())
	}
	return runErr
}

// claim atomically reserves up to batchSize names from the remaining count,
// returning 0 once the total is exhausted.
func claim(remaining *atomic.Int64, batchSize int64) int64 {
	for {
		r := remaining.Load()
		if r <= 0 {
			return 0
		}
		n := min(batchSize, r)
		if remaining.CompareAndSwap(r, r-n) {
			return n
		}
	}
}

func (p *Pipeline) report(start time.Time) {
	if p.reporter == nil || p.interval <= 0 {
		return
	}
	g := p.generated.Load()
	if g < p.nextReport {
		return
	}
	for p.nextReport <= g {
		p.nextReport += p.interval
	}
	p.reporter.Progress(g, time.Since(start))
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// fail marks the run failed and wraps the originating error with the
// operation in progress and the partial-progress count.
func (p *Pipeline) fail(log *slog.Logger, op string, err error) error {
	p.setState(StateFailed)
	log.Error("run failed",
		logger.RunID(p.runID),
		slog.String("op", op),
		logger.Count(p.generated.Load()),
		logger.Error(err))
	return err
}

func (p *Pipeline) logOrNop() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return slog.New(slog.DiscardHandler)
}
