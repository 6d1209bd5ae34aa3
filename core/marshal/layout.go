// File: core/marshal/layout.go
// License: Apache-2.0

package marshal

// Kind classifies one callback parameter for frame layout purposes.
type Kind uint8

const (
	// KindElem is an element reference; it occupies one element width.
	KindElem Kind = iota
	// KindBool is a plain boolean value; it occupies one byte.
	KindBool
)

// Layout maps a callback's parameters onto frame offsets.
type Layout struct {
	Offsets []int // one per parameter, in declaration order
	RetOff  int   // offset of the return value region
	Total   int   // full frame size in bytes
}

// width returns the frame footprint of one parameter of kind k.
func width(k Kind, elemSize int) int {
	switch k {
	case KindElem:
		return elemSize
	case KindBool:
		return 1
	}
	return 0
}

// LayoutOf computes the frame layout for a parameter-kind list: arguments
// packed left to right with no padding, return value immediately after the
// last argument.
func LayoutOf(kinds []Kind, elemSize, retSize int) Layout {
	offsets := make([]int, len(kinds))
	off := 0
	for i, k := range kinds {
		offsets[i] = off
		off += width(k, elemSize)
	}
	return Layout{Offsets: offsets, RetOff: off, Total: off + retSize}
}
