// File: raw/array.go
// License: Apache-2.0

package raw

import "github.com/anyarr/anyarr/api"

// Array is a growable contiguous array of fixed-stride raw elements,
// backed by a single byte slice. It implements api.Container.
//
// Element windows returned by Elem and Append alias the backing storage
// and are invalidated by the next Append that reallocates.
type Array struct {
	data []byte
	n    int
	size int
}

// NewArray creates an empty Array with the given element stride.
func NewArray(elemSize int) *Array {
	if elemSize <= 0 {
		api.Precondition("element size must be positive, got %d", elemSize)
	}
	return &Array{size: elemSize}
}

// Len returns the number of elements.
func (a *Array) Len() int { return a.n }

// ElemSize returns the element stride in bytes.
func (a *Array) ElemSize() int { return a.size }

// Elem returns a window aliasing element i's storage.
func (a *Array) Elem(i int) []byte {
	if i < 0 || i >= a.n {
		api.Precondition("index %d out of range [0,%d)", i, a.n)
	}
	off := i * a.size
	return a.data[off : off+a.size : off+a.size]
}

// Append grows the array by one element and returns its storage window.
// The new element's bytes are zeroed.
func (a *Array) Append() []byte {
	need := (a.n + 1) * a.size
	if cap(a.data) < need {
		grown := make([]byte, need, 2*need)
		copy(grown, a.data)
		a.data = grown
	} else {
		a.data = a.data[:need]
		clear(a.data[a.n*a.size : need])
	}
	a.n++
	return a.Elem(a.n - 1)
}

// RemoveRange erases count elements starting at start by shifting the tail
// down over them.
func (a *Array) RemoveRange(start, count int) {
	if count == 0 {
		return
	}
	if start < 0 || count < 0 || start+count > a.n {
		api.Precondition("remove range [%d,%d) out of [0,%d)", start, start+count, a.n)
	}
	copy(a.data[start*a.size:], a.data[(start+count)*a.size:a.n*a.size])
	a.n -= count
	a.data = a.data[:a.n*a.size]
}

// Bytes returns the live backing storage for all current elements.
func (a *Array) Bytes() []byte { return a.data[:a.n*a.size] }
