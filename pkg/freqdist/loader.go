package freqdist

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weighted sources are expected to accumulate to roughly 100 percent. The
// bundled census data tops out near 90; anything outside this band is worth a
// data-quality warning but is still sampled against its own maximum.
const (
	weightCeilingLow  = 80.0
	weightCeilingHigh = 120.0
)

// Option configures loading.
type Option func(*loadConfig)

// WithLogger enables data-quality warnings during load. Libraries stay
// silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *loadConfig) {
		if log != nil {
			c.log = log
		}
	}
}

type loadConfig struct {
	log *slog.Logger
}

// Load parses a census-style distribution file into a Table.
//
// Each line is a whitespace-separated record: the first field is the name
// token, the third (when present) its cumulative weight. Lines with fewer
// than three fields are accepted as name-only; a source where any line lacks
// a weight is sampled uniformly. Name tokens are normalized to capitalized
// form, the canonical external representation.
//
// Loading is idempotent: the same source always yields an equal table.
// Unreadable sources and non-numeric weight fields fail with ErrLoad.
func Load(path string, opts ...Option) (*Table, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	defer f.Close()

	caser := cases.Title(language.English)
	entries := make([]Entry, 0, 1024)
	weighted := true

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name := caser.String(strings.ToLower(fields[0]))
		if len(fields) < 3 {
			weighted = false
			entries = append(entries, Entry{Name: name})
			continue
		}

		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Join(ErrLoad,
				fmt.Errorf("%w: %s:%d: weight %q is not numeric", ErrMalformedLine, path, lineNo, fields[2]))
		}
		entries = append(entries, Entry{Name: name, Cumulative: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrLoad, err)
	}

	mode := Weighted
	if !weighted || len(entries) == 0 {
		mode = Uniform
		for i := range entries {
			entries[i].Cumulative = 0
		}
	}

	t := NewTable(path, mode, entries)

	if cfg.log != nil && t.Mode() == Weighted && (t.MaxWeight() < weightCeilingLow || t.MaxWeight() > weightCeilingHigh) {
		cfg.log.Warn("distribution cumulative ceiling deviates from 100",
			slog.String("source", path),
			slog.Float64("max_cumulative", t.MaxWeight()))
	}

	return t, nil
}
