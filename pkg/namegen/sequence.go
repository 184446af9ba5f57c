package namegen

import "math/rand"

// Sequence is a lazy, finite stream of batches. Each Next call advances the
// remaining-count; once exhausted the sequence never yields again - it is
// not restartable.
type Sequence struct {
	gen       *Generator
	rng       *rand.Rand
	remaining int64
	batchSize int

	// scratch buffers reused across batches
	out    []string
	firsts []string
	lasts  []string
}

// Sequence creates a batch stream producing total names in batches of at
// most batchSize. total <= 0 yields an already-exhausted sequence.
func (g *Generator) Sequence(rng *rand.Rand, total int64, batchSize int) (*Sequence, error) {
	if batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}
	return &Sequence{
		gen:       g,
		rng:       rng,
		remaining: max(total, 0),
		batchSize: batchSize,
		out:       make([]string, batchSize),
		firsts:    make([]string, batchSize),
		lasts:     make([]string, batchSize),
	}, nil
}

// Remaining reports how many names the sequence has yet to produce.
func (s *Sequence) Remaining() int64 { return s.remaining }

// Next produces the next batch of min(batchSize, remaining) names, or
// (nil, false) when the sequence is exhausted. The returned slice is only
// valid until the following Next call: the writer consumes and discards each
// batch before the next one is drawn, so the buffers are reused rather than
// reallocated per batch.
func (s *Sequence) Next() ([]string, bool) {
	if s.remaining <= 0 {
		return nil, false
	}

	n := s.batchSize
	if int64(n) > s.remaining {
		n = int(s.remaining)
	}
	s.remaining -= int64(n)

	batch := s.out[:n]
	s.gen.fill(s.rng, batch, s.firsts, s.lasts)
	return batch, true
}
