// Package algo is the sequence algorithm library of the anyarr engine:
// search, predicate tests, counting, filling, removal, extremum finding,
// sampling and sorting over contiguous arrays whose element type is known
// only through a runtime descriptor.
//
// Every operation runs to completion on the caller's goroutine and derives
// one view over the caller-owned container. Where a callback is involved,
// the operation owns exactly one marshaller for its duration. Elements are never touched
// except through the descriptor. Search-style operations report absence as
// (Len(), false), never as an error.
package algo
