// Package view presents a homogeneous, random-access, lazily-dereferencing
// view over one contiguous runtime-typed array, plus the back-insertion
// cursor used to build fresh arrays element by element.
//
// Iterators are index-based: arithmetic and ordering never touch element
// memory, and a dereference rebuilds its element reference only when the
// iterator has moved since the last one.
package view
