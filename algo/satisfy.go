// File: algo/satisfy.go
// License: Apache-2.0

package algo

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/marshal"
	"github.com/anyarr/anyarr/core/view"
)

// AllSatisfy reports whether pred holds for every element. It short-circuits
// on the first failure and is vacuously true for an empty array.
func AllSatisfy(c api.Container, desc api.TypeDesc, pred api.Handle) bool {
	v := view.New(c, desc)
	p := marshal.NewPred1(pred, desc)
	defer p.Close()

	for it := v.Begin(); !it.AtEnd(); it.Next() {
		if !p.Test(it.Deref()) {
			return false
		}
	}
	return true
}

// AnySatisfy reports whether pred holds for at least one element. It
// short-circuits on the first match.
func AnySatisfy(c api.Container, desc api.TypeDesc, pred api.Handle) bool {
	v := view.New(c, desc)
	p := marshal.NewPred1(pred, desc)
	defer p.Close()

	for it := v.Begin(); !it.AtEnd(); it.Next() {
		if p.Test(it.Deref()) {
			return true
		}
	}
	return false
}

// NoneSatisfy reports whether pred holds for no element.
func NoneSatisfy(c api.Container, desc api.TypeDesc, pred api.Handle) bool {
	return !AnySatisfy(c, desc, pred)
}
