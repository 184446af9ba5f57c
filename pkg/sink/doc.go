// Package sink persists generated name batches to disk through a large
// write buffer, keeping memory bounded by batch size rather than total
// output. The writer truncates its destination fresh per run and guarantees
// a flush on Close, including the interruption path.
package sink
