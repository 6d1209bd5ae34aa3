// Package elem implements opaque element references: handles binding a raw
// storage window to a runtime type descriptor, giving copy, comparison and
// swap semantics over memory whose static type is unknown.
//
// A ConstRef is a pure view and owns nothing. A Ref additionally supports
// assignment and byte-range swap, and a cloned Ref owns a pooled scratch
// buffer that must be released when the owning scope exits.
package elem
