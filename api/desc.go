// File: api/desc.go
// Package api defines the TypeDesc contract.
// License: Apache-2.0

package api

// TypeDesc describes one element type at runtime: its byte width, its
// identity relative to other descriptors, and how two raw elements compare.
//
// A descriptor is owned by the collaborator that supplies it; the engine
// only consumes it. Size must stay constant for the lifetime of any one
// algorithm call, and Equal must imply SameType between the owners of the
// two windows it is handed.
type TypeDesc interface {
	// Size returns the byte width of one element.
	Size() int

	// SameType reports whether other describes the same element type.
	SameType(other TypeDesc) bool

	// Equal compares two raw element windows of exactly Size() bytes.
	Equal(a, b []byte) bool
}
