// File: api/container.go
// Package api defines the Container accessor contract.
// License: Apache-2.0

package api

// Container is the collaborator-owned storage accessor for one contiguous
// runtime-typed array. The engine never allocates or resizes element storage
// itself; every structural change goes through this interface.
//
// Element windows returned by Elem and Append alias the container's live
// storage and stay valid only until the container is next resized.
type Container interface {
	// Len returns the number of elements.
	Len() int

	// Elem returns a window aliasing element i's storage, exactly one
	// element width long.
	Elem(i int) []byte

	// Append grows the container by one uninitialized element and returns
	// the new element's storage window.
	Append() []byte

	// RemoveRange erases count elements starting at start, shifting the
	// tail down to keep the storage contiguous.
	RemoveRange(start, count int)
}
