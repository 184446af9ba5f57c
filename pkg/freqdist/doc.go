// Package freqdist loads weighted name-frequency distributions and samples
// from them.
//
// A distribution is a plain-text file in the census format: one record per
// line, whitespace-separated, with the name token first and a cumulative
// percentage third. Loading produces an immutable Table sorted by cumulative
// weight, which makes a draw an O(log n) binary search. Sources without
// weight columns load in uniform mode and sample every name with equal
// probability.
//
// # Architecture
//
//   - Load parses one source into a Table; Store caches tables per source so
//     a file is parsed at most once per process. The Store is an explicit
//     object handed down by the caller, not a package-level singleton, which
//     keeps concurrent tests deterministic.
//   - Table.Sample draws against the table's own maximum cumulative weight.
//     The bundled census columns accumulate to roughly 90, not 100;
//     hardcoding a scale would under-sample the tail, so the observed
//     maximum always wins and loaders can emit a data-quality warning when
//     it strays far from 100.
//   - Merge unions two tables into one population (male + female first
//     names) by offsetting the second cumulative column, preserving the
//     non-decreasing invariant the search depends on.
//   - Manifest maps the three name categories to file paths, loaded from
//     YAML so datasets are swappable without code changes.
//
// Tables are read-only after construction and safe for concurrent samplers.
// Randomness is always injected as a *rand.Rand, so fixed seeds give
// reproducible draws in tests.
//
// # Usage
//
//	store := freqdist.NewStore(freqdist.WithLogger(log))
//	set, err := store.LoadAll(manifest)
//	if err != nil {
//	    // a missing or malformed source fails the run before any sampling
//	}
//	firsts := set.FirstNames()
//	rng := rand.New(rand.NewSource(42))
//	name := firsts.Sample(rng) // "" only when the table is empty
package freqdist
