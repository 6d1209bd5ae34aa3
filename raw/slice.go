// File: raw/slice.go
// License: Apache-2.0

package raw

import (
	"unsafe"

	"github.com/anyarr/anyarr/api"
)

// Slice adapts a live Go slice to api.Container without copying. Mutations
// made by the engine, including removals and appends, are reflected in the
// caller's slice through the held pointer.
//
// T must have a fixed memory layout and contain no pointers.
type Slice[T any] struct {
	s    *[]T
	size int
}

// OfSlice wraps the slice pointed at by s as a container. The caller must
// not touch the slice for the duration of an algorithm call.
func OfSlice[T any](s *[]T) *Slice[T] {
	var zero T
	return &Slice[T]{s: s, size: int(unsafe.Sizeof(zero))}
}

// Len returns the number of elements.
func (c *Slice[T]) Len() int { return len(*c.s) }

// Elem returns a window aliasing element i's storage.
func (c *Slice[T]) Elem(i int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&(*c.s)[i])), c.size)
}

// Append grows the slice by one zero element and returns its window.
func (c *Slice[T]) Append() []byte {
	var zero T
	*c.s = append(*c.s, zero)
	return c.Elem(len(*c.s) - 1)
}

// RemoveRange erases count elements starting at start.
func (c *Slice[T]) RemoveRange(start, count int) {
	if count == 0 {
		return
	}
	s := *c.s
	if start < 0 || count < 0 || start+count > len(s) {
		api.Precondition("remove range [%d,%d) out of [0,%d)", start, start+count, len(s))
	}
	*c.s = append(s[:start], s[start+count:]...)
}
