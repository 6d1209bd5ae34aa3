// File: algo/find.go
// License: Apache-2.0

package algo

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/marshal"
	"github.com/anyarr/anyarr/core/view"
)

// FindIf returns the index of the first element satisfying pred. When no
// element matches it returns (Len(), false).
func FindIf(c api.Container, desc api.TypeDesc, pred api.Handle) (int, bool) {
	v := view.New(c, desc)
	p := marshal.NewPred1(pred, desc)
	defer p.Close()

	for it := v.Begin(); !it.AtEnd(); it.Next() {
		if p.Test(it.Deref()) {
			return it.Index(), true
		}
	}
	return v.Len(), false
}

// AdjacentFind returns the index of the first element i for which
// pred(elem[i], elem[i+1]) holds. When no adjacent pair matches it returns
// (Len(), false).
func AdjacentFind(c api.Container, desc api.TypeDesc, pred api.Handle) (int, bool) {
	v := view.New(c, desc)
	p := marshal.NewPred2(pred, desc)
	defer p.Close()

	it := v.Begin()
	if it.AtEnd() {
		return v.Len(), false
	}
	for jt := it.Add(1); !jt.AtEnd(); it, jt = jt, jt.Add(1) {
		if p.Test(it.Deref(), jt.Deref()) {
			return it.Index(), true
		}
	}
	return v.Len(), false
}
