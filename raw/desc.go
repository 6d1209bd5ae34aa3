// File: raw/desc.go
// License: Apache-2.0

package raw

import (
	"bytes"
	"reflect"
	"unsafe"

	"github.com/anyarr/anyarr/api"
)

// fixedDesc describes an anonymous fixed-width element compared bytewise.
// Two fixed descriptors are the same type iff their widths agree.
type fixedDesc struct {
	size int
}

// Fixed returns a descriptor for an opaque element of the given byte width
// with bytewise equality.
func Fixed(size int) api.TypeDesc {
	if size <= 0 {
		api.Precondition("element size must be positive, got %d", size)
	}
	return fixedDesc{size: size}
}

func (d fixedDesc) Size() int { return d.size }

func (d fixedDesc) SameType(other api.TypeDesc) bool {
	o, ok := other.(fixedDesc)
	return ok && o.size == d.size
}

func (d fixedDesc) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// goDesc describes a concrete Go element type. Identity is the reflect
// type; equality is bytewise, which is why TypeOf is restricted to
// fixed-layout pointer-free types.
type goDesc struct {
	t    reflect.Type
	size int
}

// TypeOf returns a descriptor for the Go type T. T must have a fixed
// memory layout and contain no pointers (ints, floats, bools, arrays and
// structs thereof).
func TypeOf[T any]() api.TypeDesc {
	t := reflect.TypeFor[T]()
	return goDesc{t: t, size: int(t.Size())}
}

func (d goDesc) Size() int { return d.size }

func (d goDesc) SameType(other api.TypeDesc) bool {
	o, ok := other.(goDesc)
	return ok && o.t == d.t
}

func (d goDesc) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// ValueBytes exposes v's storage as a raw element window of
// unsafe.Sizeof(*v) bytes. The window aliases v; v must outlive it.
func ValueBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
