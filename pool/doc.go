// Package pool
//
// Scratch memory layer for the anyarr engine. Element clones and callback
// marshalling frames are short-lived, often per-comparison allocations; the
// size-bucketed ScratchPool keeps them off the garbage collector's back.
// All buffers are call-scoped: taken at the start of one algorithm call and
// returned deterministically when the owning scope exits.
package pool
