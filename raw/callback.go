// File: raw/callback.go
// License: Apache-2.0

package raw

import (
	"unsafe"

	"github.com/anyarr/anyarr/api"
)

// Pred1Of adapts a typed unary predicate to the frame calling convention:
// one element argument at offset 0, a one-byte boolean result after it.
func Pred1Of[T any](fn func(v T) bool) api.Handle {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return api.HandleFunc(func(frame []byte) {
		putBool(frame, size, fn(readArg[T](frame, 0, size)))
	})
}

// Pred2Of adapts a typed binary predicate (or less-than comparator) to the
// frame calling convention: two element arguments in order, a one-byte
// boolean result after them.
func Pred2Of[T any](fn func(a, b T) bool) api.Handle {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return api.HandleFunc(func(frame []byte) {
		a := readArg[T](frame, 0, size)
		b := readArg[T](frame, size, size)
		putBool(frame, 2*size, fn(a, b))
	})
}

// readArg copies one argument out of the frame. Arguments are packed with
// no alignment padding, so a direct pointer cast would not be safe.
func readArg[T any](frame []byte, off, size int) T {
	var v T
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), frame[off:off+size])
	return v
}

func putBool(frame []byte, off int, b bool) {
	if b {
		frame[off] = 1
	} else {
		frame[off] = 0
	}
}
