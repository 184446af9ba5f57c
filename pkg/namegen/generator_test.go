package namegen_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/freqdist"
	"github.com/dmitrymomot/namegen/pkg/namegen"
)

var fullNameRe = regexp.MustCompile(`^\S+ \S+$`)

func testGenerator(t *testing.T) *namegen.Generator {
	t.Helper()

	firsts := freqdist.NewTable("firsts", freqdist.Weighted, []freqdist.Entry{
		{Name: "Ana", Cumulative: 30.0},
		{Name: "Bea", Cumulative: 60.0},
		{Name: "Cid", Cumulative: 90.0},
	})
	lasts := freqdist.NewTable("lasts", freqdist.Uniform, []freqdist.Entry{
		{Name: "Silva"}, {Name: "Costa"},
	})

	gen, err := namegen.New(firsts, lasts)
	require.NoError(t, err)
	return gen
}

func TestNew_RejectsEmptyTables(t *testing.T) {
	t.Parallel()

	empty := freqdist.NewTable("empty", freqdist.Uniform, nil)
	filled := freqdist.NewTable("filled", freqdist.Uniform, []freqdist.Entry{{Name: "Ana"}})

	_, err := namegen.New(empty, filled)
	assert.ErrorIs(t, err, namegen.ErrEmptyFirstNames)

	_, err = namegen.New(filled, empty)
	assert.ErrorIs(t, err, namegen.ErrEmptyLastNames)

	_, err = namegen.New(nil, filled)
	assert.ErrorIs(t, err, namegen.ErrEmptyFirstNames)
}

func TestFullName(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	rng := rand.New(rand.NewSource(3))

	firsts := map[string]bool{"Ana": true, "Bea": true, "Cid": true}
	lasts := map[string]bool{"Silva": true, "Costa": true}

	for range 1000 {
		name := gen.FullName(rng)
		require.Regexp(t, fullNameRe, name)

		parts := regexp.MustCompile(`\s+`).Split(name, -1)
		require.Len(t, parts, 2)
		assert.True(t, firsts[parts[0]], "unknown first name %q", parts[0])
		assert.True(t, lasts[parts[1]], "unknown last name %q", parts[1])
	}
}

func TestBatch(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	rng := rand.New(rand.NewSource(5))

	batch := gen.Batch(rng, 500)
	require.Len(t, batch, 500)
	for _, name := range batch {
		require.Regexp(t, fullNameRe, name)
	}

	assert.Nil(t, gen.Batch(rng, 0))
	assert.Nil(t, gen.Batch(rng, -1))
}

func TestSequence_BatchSizes(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	rng := rand.New(rand.NewSource(7))

	seq, err := gen.Sequence(rng, 5, 2)
	require.NoError(t, err)

	var sizes []int
	for {
		batch, ok := seq.Next()
		if !ok {
			break
		}
		sizes = append(sizes, len(batch))
	}
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Zero(t, seq.Remaining())

	// exhausted for good: not restartable
	_, ok := seq.Next()
	assert.False(t, ok)
}

func TestSequence_ZeroTotal(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	seq, err := gen.Sequence(rand.New(rand.NewSource(1)), 0, 100)
	require.NoError(t, err)

	_, ok := seq.Next()
	assert.False(t, ok)
}

func TestSequence_BatchLargerThanTotal(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	seq, err := gen.Sequence(rand.New(rand.NewSource(1)), 3, 100)
	require.NoError(t, err)

	batch, ok := seq.Next()
	require.True(t, ok)
	assert.Len(t, batch, 3)

	_, ok = seq.Next()
	assert.False(t, ok)
}

func TestSequence_InvalidBatchSize(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	_, err := gen.Sequence(rand.New(rand.NewSource(1)), 10, 0)
	assert.ErrorIs(t, err, namegen.ErrInvalidBatchSize)
}

func TestSequence_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)

	collect := func(seed int64) []string {
		seq, err := gen.Sequence(rand.New(rand.NewSource(seed)), 10, 4)
		require.NoError(t, err)
		var all []string
		for {
			batch, ok := seq.Next()
			if !ok {
				return all
			}
			// Next reuses its buffer, so copy before advancing
			all = append(all, append([]string(nil), batch...)...)
		}
	}

	assert.Equal(t, collect(42), collect(42))
	assert.NotEqual(t, collect(42), collect(43))
}
