// File: algo/count.go
// License: Apache-2.0

package algo

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/marshal"
	"github.com/anyarr/anyarr/core/view"
)

// Count returns the number of elements equal to value under the
// descriptor's equality. value must be exactly one element wide.
func Count(c api.Container, desc api.TypeDesc, value []byte) int {
	if len(value) != desc.Size() {
		api.Precondition("count value is %d bytes, element is %d", len(value), desc.Size())
	}
	v := view.New(c, desc)
	n := 0
	for it := v.Begin(); !it.AtEnd(); it.Next() {
		if it.Deref().EqualBytes(value) {
			n++
		}
	}
	return n
}

// CountIf returns the number of elements satisfying pred.
func CountIf(c api.Container, desc api.TypeDesc, pred api.Handle) int {
	v := view.New(c, desc)
	p := marshal.NewPred1(pred, desc)
	defer p.Close()

	n := 0
	for it := v.Begin(); !it.AtEnd(); it.Next() {
		if p.Test(it.Deref()) {
			n++
		}
	}
	return n
}
