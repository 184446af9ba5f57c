package freqdist

import (
	"math/rand"
	"sort"
)

// Mode selects the sampling strategy for a table.
type Mode int

const (
	// Uniform draws every entry with equal probability. Used when the source
	// carried no weights (or an inconsistent mix of weighted and weightless
	// lines).
	Uniform Mode = iota
	// Weighted draws entries proportionally to the span each occupies in the
	// cumulative weight column.
	Weighted
)

// Entry is a single name with its cumulative weight. In a weighted table the
// cumulative column is non-decreasing in entry order; in a uniform table it
// is zero everywhere.
type Entry struct {
	Name       string
	Cumulative float64
}

// Table is an immutable, binary-searchable name distribution. Tables are
// read-only after construction and safe to share across concurrent samplers;
// only the *rand.Rand passed into Sample needs per-caller independence.
type Table struct {
	source  string
	mode    Mode
	entries []Entry
	max     float64
}

// NewTable builds a table directly from entries, mainly useful for tests and
// ad-hoc callers. Entries are sorted by cumulative weight; the table's
// maximum is taken from the data itself, never assumed to be 100.
func NewTable(source string, mode Mode, entries []Entry) *Table {
	es := make([]Entry, len(entries))
	copy(es, entries)
	sort.SliceStable(es, func(i, j int) bool { return es[i].Cumulative < es[j].Cumulative })

	var max float64
	if mode == Weighted && len(es) > 0 {
		max = es[len(es)-1].Cumulative
	}
	return &Table{source: source, mode: mode, entries: es, max: max}
}

// Source returns the identifier the table was loaded from.
func (t *Table) Source() string { return t.source }

// Mode reports whether the table samples weighted or uniformly.
func (t *Table) Mode() Mode { return t.mode }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// MaxWeight returns the highest cumulative weight observed in the source.
// Zero for uniform tables.
func (t *Table) MaxWeight() float64 { return t.max }

// Entries returns a copy of the entry slice, preserving immutability of the
// table itself.
func (t *Table) Entries() []Entry {
	es := make([]Entry, len(t.entries))
	copy(es, t.entries)
	return es
}

// Equal reports whether two tables are interchangeable: same source, mode,
// and entry sequence. Loading the same source twice yields equal tables.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.source != o.source || t.mode != o.mode || t.max != o.max || len(t.entries) != len(o.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// Pick locates the name for a draw target using right-biased binary search:
// the first entry whose cumulative weight exceeds the target wins, so a draw
// landing exactly on a boundary selects the entry after it. Targets past the
// last boundary clamp to the final entry. Empty tables return "".
func (t *Table) Pick(target float64) string {
	if len(t.entries) == 0 {
		return ""
	}
	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Cumulative > target
	})
	if idx >= len(t.entries) {
		idx = len(t.entries) - 1
	}
	return t.entries[idx].Name
}

// Sample draws one name. Weighted tables scale the draw by the table's own
// maximum cumulative weight - source data is known to top out near 90 rather
// than 100, and assuming a fixed scale would silently starve the tail.
// An empty table returns the empty-name sentinel "", which callers must
// check before use.
func (t *Table) Sample(rng *rand.Rand) string {
	n := len(t.entries)
	if n == 0 {
		return ""
	}
	if t.mode == Uniform {
		return t.entries[rng.Intn(n)].Name
	}
	return t.Pick(rng.Float64() * t.max)
}

// SampleN fills dst with independent draws. This is the bulk primitive the
// batch generator uses to amortize per-call overhead at 10^5-10^6 draws per
// batch.
func (t *Table) SampleN(rng *rand.Rand, dst []string) {
	n := len(t.entries)
	if n == 0 {
		for i := range dst {
			dst[i] = ""
		}
		return
	}
	if t.mode == Uniform {
		for i := range dst {
			dst[i] = t.entries[rng.Intn(n)].Name
		}
		return
	}
	for i := range dst {
		dst[i] = t.Pick(rng.Float64() * t.max)
	}
}

// Merge combines two tables into a single population, the way male and
// female first names are unioned into one "first name" pool. For two
// weighted tables the second table's cumulative column is offset by the
// first table's maximum, producing one valid weighted table whose draws stay
// proportional across both sources. Any other combination degrades to
// uniform over the concatenated names.
func Merge(a, b *Table) *Table {
	switch {
	case a == nil || a.Len() == 0:
		if b == nil {
			return NewTable("", Uniform, nil)
		}
		return NewTable(b.source, b.mode, b.entries)
	case b == nil || b.Len() == 0:
		return NewTable(a.source, a.mode, a.entries)
	}

	source := a.source + "+" + b.source
	entries := make([]Entry, 0, len(a.entries)+len(b.entries))

	if a.mode == Weighted && b.mode == Weighted {
		entries = append(entries, a.entries...)
		for _, e := range b.entries {
			entries = append(entries, Entry{Name: e.Name, Cumulative: e.Cumulative + a.max})
		}
		return NewTable(source, Weighted, entries)
	}

	for _, e := range a.entries {
		entries = append(entries, Entry{Name: e.Name})
	}
	for _, e := range b.entries {
		entries = append(entries, Entry{Name: e.Name})
	}
	return NewTable(source, Uniform, entries)
}
