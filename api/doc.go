// Package api defines the contracts between the anyarr engine and its host
// environment: the runtime type descriptor, the container storage accessor,
// the resolved callback handle, and the error taxonomy.
//
// The package is interface-only and imports nothing from the rest of the
// module; every other package depends on it, never the other way around.
package api
