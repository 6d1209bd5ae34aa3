// File: algo/minmax.go
// License: Apache-2.0

package algo

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/elem"
	"github.com/anyarr/anyarr/core/marshal"
	"github.com/anyarr/anyarr/core/view"
)

// MaxElementIndex returns the index of the greatest element under the
// less comparator. The first of equal greatest elements wins. An empty
// array yields (0, false).
func MaxElementIndex(c api.Container, desc api.TypeDesc, less api.Handle) (int, bool) {
	v := view.New(c, desc)
	if v.Len() == 0 {
		return v.Len(), false
	}
	cmp := marshal.NewPred2(less, desc)
	defer cmp.Close()

	best := v.Begin()
	for it := best.Add(1); !it.AtEnd(); it.Next() {
		if cmp.Test(best.Deref(), it.Deref()) {
			best = it
		}
	}
	return best.Index(), true
}

// MinElementIndex returns the index of the least element under the less
// comparator. The first of equal least elements wins. An empty array
// yields (0, false).
func MinElementIndex(c api.Container, desc api.TypeDesc, less api.Handle) (int, bool) {
	v := view.New(c, desc)
	if v.Len() == 0 {
		return v.Len(), false
	}
	cmp := marshal.NewPred2(less, desc)
	defer cmp.Close()

	best := v.Begin()
	for it := best.Add(1); !it.AtEnd(); it.Next() {
		if cmp.Test(it.Deref(), best.Deref()) {
			best = it
		}
	}
	return best.Index(), true
}

// Max returns a reference to the greatest element, or false for an empty
// array. The reference aliases live storage and stays valid only until the
// container next changes.
func Max(c api.Container, desc api.TypeDesc, less api.Handle) (elem.ConstRef, bool) {
	i, ok := MaxElementIndex(c, desc, less)
	if !ok {
		return elem.ConstRef{}, false
	}
	return view.New(c, desc).At(i), true
}

// Min returns a reference to the least element, or false for an empty
// array.
func Min(c api.Container, desc api.TypeDesc, less api.Handle) (elem.ConstRef, bool) {
	i, ok := MinElementIndex(c, desc, less)
	if !ok {
		return elem.ConstRef{}, false
	}
	return view.New(c, desc).At(i), true
}
