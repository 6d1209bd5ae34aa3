// File: algo/fill.go
// License: Apache-2.0

package algo

import (
	"fmt"

	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/view"
)

// Fill overwrites every element with a copy of value's bytes. value must be
// exactly one element wide.
func Fill(c api.Container, desc api.TypeDesc, value []byte) {
	fillSpan(view.New(c, desc), 0, c.Len(), value)
}

// FillRange overwrites the elements in [start, end) with copies of value's
// bytes. A range outside [0, Len()] or with end < start fails with
// api.ErrInvalidRange.
func FillRange(c api.Container, desc api.TypeDesc, start, end int, value []byte) error {
	if err := checkRange(start, end, c.Len()); err != nil {
		return err
	}
	fillSpan(view.New(c, desc), start, end, value)
	return nil
}

func fillSpan(v *view.View, start, end int, value []byte) {
	for it := v.MutBegin().Add(start); it.Index() < end; it.Next() {
		it.Deref().SetBytes(value)
	}
}

func checkRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return fmt.Errorf("range [%d,%d) out of [0,%d]: %w", start, end, length, api.ErrInvalidRange)
	}
	return nil
}
