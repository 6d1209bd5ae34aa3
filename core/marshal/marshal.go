// File: core/marshal/marshal.go
// License: Apache-2.0

package marshal

import (
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/elem"
	"github.com/anyarr/anyarr/pool"
)

// Marshaller drives one resolved callback through the frame calling
// convention. The frame buffer is drawn from the scratch pool once at
// construction and reused for every call; Close returns it.
type Marshaller struct {
	h       api.Handle
	desc    api.TypeDesc
	kinds   []Kind
	lay     Layout
	retSize int
	frame   []byte
}

// New builds a marshaller for a callback taking the given parameter kinds
// and returning retSize bytes. Element parameters are sized by desc.
func New(h api.Handle, desc api.TypeDesc, kinds []Kind, retSize int) *Marshaller {
	lay := LayoutOf(kinds, desc.Size(), retSize)
	return &Marshaller{
		h:       h,
		desc:    desc,
		kinds:   kinds,
		lay:     lay,
		retSize: retSize,
		frame:   pool.Default.Get(lay.Total),
	}
}

// Close releases the frame buffer. The marshaller must not be used after.
func (m *Marshaller) Close() {
	if m.frame != nil {
		pool.Default.Put(m.frame)
		m.frame = nil
	}
}

// Call packs the arguments into the frame in declaration order, invokes
// the handle, and returns the trailing return-value window. The window
// aliases the frame and is only valid until the next Call.
//
// Arguments must match the declared kinds: elem.ConstRef for KindElem,
// bool for KindBool. An element whose descriptor width disagrees with the
// frame's reserved slot is a broken invariant of the invoking algorithm
// and panics rather than returning an error.
func (m *Marshaller) Call(args ...any) []byte {
	if len(args) != len(m.kinds) {
		api.Precondition("callback takes %d arguments, got %d", len(m.kinds), len(args))
	}
	for i, a := range args {
		off := m.lay.Offsets[i]
		switch m.kinds[i] {
		case KindElem:
			r, ok := a.(elem.ConstRef)
			if !ok {
				api.Precondition("argument %d must be an element reference", i)
			}
			if r.Desc().Size() != m.desc.Size() {
				api.Precondition("argument %d is %d bytes, frame slot holds %d",
					i, r.Desc().Size(), m.desc.Size())
			}
			copy(m.frame[off:off+m.desc.Size()], r.Bytes())
		case KindBool:
			b, ok := a.(bool)
			if !ok {
				api.Precondition("argument %d must be a bool", i)
			}
			if b {
				m.frame[off] = 1
			} else {
				m.frame[off] = 0
			}
		}
	}
	m.h.Invoke(m.frame)
	return m.frame[m.lay.RetOff : m.lay.RetOff+m.retSize]
}
