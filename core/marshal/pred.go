// File: core/marshal/pred.go
// License: Apache-2.0

package marshal

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/elem"
)

// Pred1 calls a unary boolean predicate over single elements.
type Pred1 struct {
	m *Marshaller
}

// NewPred1 builds the predicate caller for elements described by desc.
func NewPred1(h api.Handle, desc api.TypeDesc) Pred1 {
	return Pred1{m: New(h, desc, []Kind{KindElem}, 1)}
}

// Test invokes the predicate on one element.
func (p Pred1) Test(r elem.ConstRef) bool {
	return p.m.Call(r)[0] != 0
}

// Close releases the underlying frame buffer.
func (p Pred1) Close() { p.m.Close() }

// Pred2 calls a binary boolean callback over element pairs: an adjacency
// predicate or a strict-weak-order less-than comparator.
type Pred2 struct {
	m *Marshaller
}

// NewPred2 builds the pair caller for elements described by desc.
func NewPred2(h api.Handle, desc api.TypeDesc) Pred2 {
	return Pred2{m: New(h, desc, []Kind{KindElem, KindElem}, 1)}
}

// Test invokes the callback on (a, b) in that order.
func (p Pred2) Test(a, b elem.ConstRef) bool {
	return p.m.Call(a, b)[0] != 0
}

// Close releases the underlying frame buffer.
func (p Pred2) Close() { p.m.Close() }
