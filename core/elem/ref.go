// File: core/elem/ref.go
// License: Apache-2.0

package elem

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/pool"
)

// ConstRef is a read-only opaque element reference: a storage window plus
// the descriptor for the element type occupying it. It never owns memory.
type ConstRef struct {
	win  []byte
	desc api.TypeDesc
}

// View binds a raw element window to its descriptor. The window must be
// exactly desc.Size() bytes.
func View(win []byte, desc api.TypeDesc) ConstRef {
	if len(win) != desc.Size() {
		api.Precondition("element window is %d bytes, descriptor says %d", len(win), desc.Size())
	}
	return ConstRef{win: win, desc: desc}
}

// Bytes returns the raw storage window the reference points at.
func (r ConstRef) Bytes() []byte { return r.win }

// Desc returns the borrowed type descriptor.
func (r ConstRef) Desc() api.TypeDesc { return r.desc }

// Equal reports whether two references hold equal values. References of
// different types are never equal; comparison across types is not an error.
func (r ConstRef) Equal(other ConstRef) bool {
	if !r.desc.SameType(other.desc) {
		return false
	}
	return r.desc.Equal(r.win, other.win)
}

// EqualBytes compares the referenced value against a raw value of the same
// type, without a descriptor check.
func (r ConstRef) EqualBytes(raw []byte) bool {
	return r.desc.Equal(r.win, raw)
}

// Ref is the mutable opaque element reference. The zero Ref is invalid.
type Ref struct {
	ConstRef
	scratch []byte // owned pooled buffer; nil when aliasing live storage
}

// Mut binds a mutable raw element window to its descriptor.
func Mut(win []byte, desc api.TypeDesc) Ref {
	return Ref{ConstRef: View(win, desc)}
}

// Assign copies src's value into the referenced storage. Fails with
// api.ErrTypeMismatch when the descriptors disagree: a silent no-op here
// would corrupt caller expectations.
func (r Ref) Assign(src ConstRef) error {
	if !r.desc.SameType(src.desc) {
		return api.ErrTypeMismatch
	}
	if src.desc.Size() != r.desc.Size() {
		api.Precondition("same type but sizes differ: %d vs %d", r.desc.Size(), src.desc.Size())
	}
	copy(r.win, src.win)
	return nil
}

// SetBytes overwrites the referenced storage with a raw value of the same
// type, without a descriptor check.
func (r Ref) SetBytes(raw []byte) {
	if len(raw) != r.desc.Size() {
		api.Precondition("value is %d bytes, element is %d", len(raw), r.desc.Size())
	}
	copy(r.win, raw)
}

// Swap exchanges the raw byte ranges the two references point at. This is
// the only primitive by which in-place algorithms permute memory without
// knowing element structure. Fails with api.ErrTypeMismatch when the
// descriptors disagree.
func (r Ref) Swap(other Ref) error {
	if !r.desc.SameType(other.desc) {
		return api.ErrTypeMismatch
	}
	if other.desc.Size() != r.desc.Size() {
		api.Precondition("same type but sizes differ: %d vs %d", r.desc.Size(), other.desc.Size())
	}
	memswap(r.win, other.win)
	return nil
}

// MustSwap is Swap for references known to share one descriptor, such as
// two positions of the same array view. Descriptor disagreement here is an
// engine bug, not a caller condition.
func (r Ref) MustSwap(other Ref) {
	if err := r.Swap(other); err != nil {
		api.Precondition("swap within one view: %v", err)
	}
}

// Clone produces a by-value copy of src: a Ref backed by an owned scratch
// buffer of desc.Size() bytes. The clone must be Released when its scope
// exits, including on error paths.
func Clone(src ConstRef) Ref {
	buf := pool.Default.Get(src.desc.Size())
	copy(buf, src.win)
	return Ref{ConstRef: ConstRef{win: buf, desc: src.desc}, scratch: buf}
}

// Release returns an owned scratch buffer to the pool. Releasing a ref that
// merely aliases live storage is a no-op. The ref must not be used after.
func (r *Ref) Release() {
	if r.scratch != nil {
		pool.Default.Put(r.scratch)
		r.scratch = nil
		r.win = nil
	}
}

func memswap(a, b []byte) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
