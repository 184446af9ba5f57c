// Package namegen composes full "First Last" names from loaded frequency
// distributions, one at a time or in reusable-buffer batches sized for
// generating millions of names. Randomness is injected per call, so seeded
// runs are reproducible.
package namegen
