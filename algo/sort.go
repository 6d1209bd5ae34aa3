// File: algo/sort.go
// License: Apache-2.0

package algo

import (
	"sort"

	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/marshal"
	"github.com/anyarr/anyarr/core/view"
)

// Sort orders the array in place under the less comparator, which must be
// a strict weak ordering (less(a, b) true means a precedes b). The sort is
// the standard library's introsort family and is not stable. The view's
// byte-range swap is the only mutating primitive used.
func Sort(c api.Container, desc api.TypeDesc, less api.Handle) {
	cmp := marshal.NewPred2(less, desc)
	defer cmp.Close()
	sort.Sort(&sorter{v: view.New(c, desc), cmp: cmp})
}

// sorter adapts a view and comparator to sort.Interface.
type sorter struct {
	v   *view.View
	cmp marshal.Pred2
}

func (s *sorter) Len() int { return s.v.Len() }

func (s *sorter) Less(i, j int) bool {
	return s.cmp.Test(s.v.At(i), s.v.At(j))
}

func (s *sorter) Swap(i, j int) { s.v.Swap(i, j) }
