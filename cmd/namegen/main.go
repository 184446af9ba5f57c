package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/namegen/pkg/freqdist"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/pipeline"
	"github.com/dmitrymomot/namegen/pkg/sink"
)

type appConfig struct {
	Total      int64  `env:"NAMEGEN_TOTAL" envDefault:"10000000"`
	BatchSize  int    `env:"NAMEGEN_BATCH_SIZE" envDefault:"100000"`
	BufferSize int    `env:"NAMEGEN_BUFFER_SIZE" envDefault:"1048576"`
	OutputDir  string `env:"NAMEGEN_OUTPUT_DIR" envDefault:"output"`
	Manifest   string `env:"NAMEGEN_MANIFEST" envDefault:"data/manifest.yaml"`
	Seed       int64  `env:"NAMEGEN_SEED" envDefault:"0"`
	Workers    int    `env:"NAMEGEN_WORKERS" envDefault:"1"`
	LogFormat  string `env:"NAMEGEN_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "namegen:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	flag.Int64Var(&cfg.Total, "total", cfg.Total, "number of names to generate")
	flag.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "names per batch")
	flag.IntVar(&cfg.BufferSize, "buffer", cfg.BufferSize, "output buffer size in bytes")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory")
	flag.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "dataset manifest path")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "randomness seed (0 = time-based)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "generator goroutines (1 = sequential)")
	flag.Parse()

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(logger.Source(cfg.Manifest)),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(runIDKey{}).(string); ok {
				return slog.String("run_id", v), true
			}
			return slog.Attr{}, false
		}),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manifest, err := freqdist.LoadManifest(cfg.Manifest)
	if err != nil {
		return err
	}

	out := sink.TimestampedPath(cfg.OutputDir, "generated_names", time.Now())

	opts := []pipeline.Option{
		pipeline.WithBatchSize(cfg.BatchSize),
		pipeline.WithBufferSize(cfg.BufferSize),
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithLogger(log),
		pipeline.WithReporter(pipeline.NewLogReporter(log)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, pipeline.WithSeed(cfg.Seed))
	}

	p, err := pipeline.New(manifest, cfg.Total, out, opts...)
	if err != nil {
		return err
	}

	// tag every driver log line with this run's identifier
	ctx = context.WithValue(ctx, runIDKey{}, p.RunID().String())

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if fi, statErr := os.Stat(res.Output); statErr == nil {
		log.InfoContext(ctx, "output file",
			logger.Output(res.Output),
			slog.Int64("size_bytes", fi.Size()))
	}
	return nil
}

type runIDKey struct{}
