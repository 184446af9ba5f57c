package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultBufferSize keeps syscall overhead negligible when streaming
// millions of short lines.
const DefaultBufferSize = 1 << 20 // 1MB

// Option configures a Writer.
type Option func(*config)

// WithBufferSize overrides the output buffer size. Non-positive values are
// ignored.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

type config struct {
	bufferSize int
}

// Writer streams batches of names to a file, one name per line. Memory held
// for output stays O(batch size); the buffer is flushed on Close along every
// exit path. A Writer exclusively owns its file and must not be shared
// across goroutines.
type Writer struct {
	f       *os.File
	buf     *bufio.Writer
	path    string
	written int64
	closed  bool
}

// New creates the destination directory if absent and opens path fresh,
// truncating any file left over from a previous run.
func New(path string, opts ...Option) (*Writer, error) {
	cfg := &config{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(cfg)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Join(ErrWrite, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}

	return &Writer{
		f:    f,
		buf:  bufio.NewWriterSize(f, cfg.bufferSize),
		path: path,
	}, nil
}

// Path returns the destination path.
func (w *Writer) Path() string { return w.path }

// Written returns the number of names accepted by the writer so far. Only
// after a successful Close is this the durable line count of the file;
// mid-run, the tail of the count may still be sitting in the buffer.
func (w *Writer) Written() int64 { return w.written }

// WriteBatch appends each name on its own line. On failure the run is over:
// the error reports how many names were already handed off, and whatever was
// flushed stays on disk.
func (w *Writer) WriteBatch(names []string) error {
	if w.closed {
		return errors.Join(ErrWrite, ErrClosed)
	}
	for _, name := range names {
		if _, err := w.buf.WriteString(name); err != nil {
			return w.fail(err)
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return w.fail(err)
		}
		w.written++
	}
	return nil
}

// Close flushes the buffer and closes the file. Safe to call more than once;
// later calls are no-ops.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	flushErr := w.buf.Flush()
	closeErr := w.f.Close()
	if flushErr != nil || closeErr != nil {
		return errors.Join(ErrWrite, flushErr, closeErr)
	}
	return nil
}

func (w *Writer) fail(err error) error {
	// written counts names accepted into the buffer; up to one buffer's worth
	// may not have reached the disk yet, so don't claim durability here.
	return errors.Join(ErrWrite, fmt.Errorf("after %d names accepted: %w", w.written, err))
}

// TimestampedPath builds the default output filename for a run, e.g.
// "output/generated_names_20260827_153004.txt". Pure function: no side
// effects, the caller decides when the directory comes into existence.
func TimestampedPath(dir, prefix string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.txt", prefix, now.Format("20060102_150405")))
}
