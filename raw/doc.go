// Package raw provides the collaborator side of the engine's contracts:
// a byte-backed contiguous container, runtime type descriptors for fixed
// layouts and for concrete Go types, and adapters that turn ordinary Go
// functions and slices into callback handles and containers.
//
// The engine core never imports this package; it exists for hosts, tests
// and examples. Descriptors built here compare elements bytewise, so the
// Go-typed helpers are restricted to fixed-size element types that contain
// no pointers.
package raw
