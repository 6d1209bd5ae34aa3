// Package marshal adapts "N element references in, one value out" onto the
// byte-buffer calling convention of a resolved callback handle.
//
// A handle's frame packs its arguments contiguously in declaration order
// with the return value in the trailing region; the layout is a pure
// function of the parameter-kind list, the element width and the return
// width. Each Marshaller owns one frame buffer for its whole lifetime and
// reuses it across calls, so a marshaller belongs to exactly one algorithm
// call and must not be shared across goroutines.
package marshal
