// File: api/handler.go
// Package api defines the Handle interface for resolved callbacks.
// License: Apache-2.0

package api

// Handle is an already-resolved callback function. The engine never
// resolves names to handles; that is the collaborator's concern, performed
// before the engine is entered.
//
// Invoke reads its arguments from the leading region of frame, laid out by
// the caller in declaration order, and writes its return value into the
// trailing region. The frame is owned by the caller and must not be
// retained past the call.
type Handle interface {
	Invoke(frame []byte)
}

// HandleFunc adapts an ordinary Go function to the Handle interface.
type HandleFunc func(frame []byte)

// Invoke implements Handle.
func (f HandleFunc) Invoke(frame []byte) { f(frame) }
