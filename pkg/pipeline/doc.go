// Package pipeline orchestrates a full generation run: load the name
// distributions once, then repeatedly draw a batch and stream it to the
// output file until the requested total is reached.
//
// # Run lifecycle
//
// A run walks a fixed state machine - idle, loading, generating, draining,
// done - with failed as the terminal error state reachable from any phase.
// All tables load before the first sample is drawn, so sampling never races
// initialization and load failures surface before any output exists.
// Draining runs on every exit path, normal or cancelled, which is what
// guarantees the output buffer hits the disk.
//
// The default mode is sequential: one batch in flight, memory bounded by
// batch size, output deterministic for a fixed seed. WithWorkers(n) opts
// into a producer/consumer split where n goroutines generate into a bounded
// queue drained by a single writer; throughput goes up, cross-batch order
// becomes non-deterministic.
//
// # Usage
//
//	res, err := pipeline.Generate(ctx, manifest, 10_000_000, out,
//	    pipeline.WithBatchSize(100_000),
//	    pipeline.WithReporter(pipeline.NewLogReporter(log)),
//	)
//	if err != nil {
//	    // partial output (if any) is already flushed and closed
//	}
//	log.Info("done", logger.Count(res.Generated), logger.Elapsed(res.Elapsed))
package pipeline
