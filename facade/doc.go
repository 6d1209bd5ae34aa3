// Package facade is the host-binding layer over the anyarr engine: it
// resolves human-readable callback names against a registry before the core
// is entered, logs and reports resolution misses, surfaces core errors to
// the host, and fires a mutation hook after operations that change the
// array (for hosts that track dirty state or replicate).
//
// The core itself never logs and never sees an unresolved name.
package facade
