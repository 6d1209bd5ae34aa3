// File: core/view/iter.go
// License: Apache-2.0

package view

import "github.com/anyarr/anyarr/core/elem"

// ConstIter is a random-access iterator over a view, read-only. The index
// ranges over [0, Len()]; Len() is the end sentinel and must not be
// dereferenced. Arithmetic and comparison operate purely on the index.
type ConstIter struct {
	v     *View
	i     int
	ref   elem.ConstRef
	fresh bool // ref was built for the current index
}

// Begin returns an iterator at index 0.
func (v *View) Begin() ConstIter { return ConstIter{v: v} }

// End returns the end-sentinel iterator at index Len().
func (v *View) End() ConstIter { return ConstIter{v: v, i: v.Len()} }

// Index returns the iterator's position.
func (it *ConstIter) Index() int { return it.i }

// AtEnd reports whether the iterator reached the end sentinel.
func (it *ConstIter) AtEnd() bool { return it.i >= it.v.Len() }

// Next advances the iterator by one position.
func (it *ConstIter) Next() { it.i++; it.fresh = false }

// Prev moves the iterator back one position.
func (it *ConstIter) Prev() { it.i--; it.fresh = false }

// Add returns a copy of the iterator moved n positions forward.
func (it ConstIter) Add(n int) ConstIter {
	it.i += n
	it.fresh = false
	return it
}

// Sub returns a copy of the iterator moved n positions back.
func (it ConstIter) Sub(n int) ConstIter { return it.Add(-n) }

// Distance returns the number of positions from it to other.
func (it *ConstIter) Distance(other ConstIter) int { return other.i - it.i }

// Before reports whether it orders strictly before other.
func (it *ConstIter) Before(other ConstIter) bool { return it.i < other.i }

// Deref returns a reference to the current element. The reference is
// rebuilt only when the iterator moved since the previous dereference.
func (it *ConstIter) Deref() elem.ConstRef {
	if !it.fresh {
		it.ref = it.v.At(it.i)
		it.fresh = true
	}
	return it.ref
}

// Iter is the mutable random-access iterator. Its dereference yields a
// reference whose assignment and swap operations are available.
type Iter struct {
	v     *View
	i     int
	ref   elem.Ref
	fresh bool
}

// MutBegin returns a mutable iterator at index 0.
func (v *View) MutBegin() Iter { return Iter{v: v} }

// MutEnd returns the mutable end-sentinel iterator.
func (v *View) MutEnd() Iter { return Iter{v: v, i: v.Len()} }

// Index returns the iterator's position.
func (it *Iter) Index() int { return it.i }

// AtEnd reports whether the iterator reached the end sentinel.
func (it *Iter) AtEnd() bool { return it.i >= it.v.Len() }

// Next advances the iterator by one position.
func (it *Iter) Next() { it.i++; it.fresh = false }

// Prev moves the iterator back one position.
func (it *Iter) Prev() { it.i--; it.fresh = false }

// Add returns a copy of the iterator moved n positions forward.
func (it Iter) Add(n int) Iter {
	it.i += n
	it.fresh = false
	return it
}

// Sub returns a copy of the iterator moved n positions back.
func (it Iter) Sub(n int) Iter { return it.Add(-n) }

// Distance returns the number of positions from it to other.
func (it *Iter) Distance(other Iter) int { return other.i - it.i }

// Before reports whether it orders strictly before other.
func (it *Iter) Before(other Iter) bool { return it.i < other.i }

// Deref returns a mutable reference to the current element.
func (it *Iter) Deref() elem.Ref {
	if !it.fresh {
		it.ref = it.v.MutAt(it.i)
		it.fresh = true
	}
	return it.ref
}
