// File: core/view/view.go
// License: Apache-2.0

package view

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/elem"
)

// View binds a container to the descriptor of its element type for the
// duration of one algorithm call.
type View struct {
	c    api.Container
	desc api.TypeDesc
}

// New derives a view over c whose elements are described by desc.
func New(c api.Container, desc api.TypeDesc) *View {
	return &View{c: c, desc: desc}
}

// Len returns the current element count. It delegates to the container, so
// it stays correct across removals made through the same view.
func (v *View) Len() int { return v.c.Len() }

// Desc returns the element type descriptor.
func (v *View) Desc() api.TypeDesc { return v.desc }

// Container returns the underlying storage accessor.
func (v *View) Container() api.Container { return v.c }

// At returns a read-only reference to element i.
func (v *View) At(i int) elem.ConstRef {
	return elem.View(v.c.Elem(i), v.desc)
}

// MutAt returns a mutable reference to element i.
func (v *View) MutAt(i int) elem.Ref {
	return elem.Mut(v.c.Elem(i), v.desc)
}

// Swap exchanges the byte ranges of elements i and j.
func (v *View) Swap(i, j int) {
	v.MutAt(i).MustSwap(v.MutAt(j))
}
