package namegen

import (
	"math/rand"

	"github.com/dmitrymomot/namegen/pkg/freqdist"
)

// Generator produces "First Last" full names from two loaded distributions.
// The first-name table is expected to already be the unioned male+female
// population (see freqdist.Merge). First and last draws are independent; no
// correlation between them is implied.
//
// A Generator is read-only after construction and safe for concurrent use as
// long as each caller brings its own *rand.Rand.
type Generator struct {
	first *freqdist.Table
	last  *freqdist.Table
}

// New creates a Generator. Both tables must be non-empty: an empty table
// would make every draw the empty-name sentinel, so it is rejected up front
// instead of surfacing as blank output millions of lines later.
func New(first, last *freqdist.Table) (*Generator, error) {
	if first == nil || first.Len() == 0 {
		return nil, ErrEmptyFirstNames
	}
	if last == nil || last.Len() == 0 {
		return nil, ErrEmptyLastNames
	}
	return &Generator{first: first, last: last}, nil
}

// FullName draws a single full name, for ad-hoc callers that don't need the
// batch pipeline.
func (g *Generator) FullName(rng *rand.Rand) string {
	return g.first.Sample(rng) + " " + g.last.Sample(rng)
}

// Batch draws n full names in one call, using bulk sampling underneath.
func (g *Generator) Batch(rng *rand.Rand, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	g.fill(rng, out, make([]string, n), make([]string, n))
	return out
}

// fill composes out[i] = firsts[i] + " " + lasts[i] after bulk-drawing both
// columns. Scratch slices are caller-owned so the sequence can reuse them
// across batches.
func (g *Generator) fill(rng *rand.Rand, out, firsts, lasts []string) {
	n := len(out)
	g.first.SampleN(rng, firsts[:n])
	g.last.SampleN(rng, lasts[:n])
	for i := range out {
		out[i] = firsts[i] + " " + lasts[i]
	}
}
