// File: algo/remove.go
// License: Apache-2.0

package algo

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/marshal"
	"github.com/anyarr/anyarr/core/view"
)

// RemoveRange erases the elements in [start, end), shifting the remainder
// down. An empty range is a no-op; a range outside [0, Len()] or with
// end < start fails with api.ErrInvalidRange.
func RemoveRange(c api.Container, start, end int) error {
	if err := checkRange(start, end, c.Len()); err != nil {
		return err
	}
	if start == end {
		return nil
	}
	c.RemoveRange(start, end-start)
	return nil
}

// RemoveIf erases every element satisfying pred, in a single forward pass.
// After an erasure the same index is examined again, since the next element
// has shifted into it. Each erasure delegates to the container's contiguous
// shift primitive.
func RemoveIf(c api.Container, desc api.TypeDesc, pred api.Handle) {
	v := view.New(c, desc)
	p := marshal.NewPred1(pred, desc)
	defer p.Close()

	for i := 0; i < v.Len(); i++ {
		if p.Test(v.At(i)) {
			c.RemoveRange(i, 1)
			i--
		}
	}
}
