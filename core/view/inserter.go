// File: core/view/inserter.go
// License: Apache-2.0

package view

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/elem"
)

// BackInserter is an output-only cursor appending raw-typed elements to a
// growing container. It has no position and never reads back.
type BackInserter struct {
	c    api.Container
	desc api.TypeDesc
}

// NewBackInserter creates a back-insertion cursor over c for elements
// described by desc.
func NewBackInserter(c api.Container, desc api.TypeDesc) BackInserter {
	return BackInserter{c: c, desc: desc}
}

// Push appends one element and copies src's bytes into it. src must be
// exactly one element wide.
func (b BackInserter) Push(src []byte) {
	if len(src) != b.desc.Size() {
		api.Precondition("push of %d bytes into %d-byte elements", len(src), b.desc.Size())
	}
	dst := b.c.Append()
	if len(dst) != b.desc.Size() {
		api.Precondition("container yields %d-byte slots, descriptor says %d", len(dst), b.desc.Size())
	}
	copy(dst, src)
}

// PushRef appends a copy of the referenced element. Fails with
// api.ErrTypeMismatch when the reference's type is not the inserter's.
func (b BackInserter) PushRef(r elem.ConstRef) error {
	if !b.desc.SameType(r.Desc()) {
		return api.ErrTypeMismatch
	}
	b.Push(r.Bytes())
	return nil
}
