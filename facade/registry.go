// File: facade/registry.go
// License: Apache-2.0

package facade

import (
	"sync"

	"github.com/anyarr/anyarr/api"
)

// Registry maps human-readable function names to resolved callback
// handles. It is the execution-context half of callback resolution; an
// engine method receives a name, the registry turns it into a handle, and
// only then is the core invoked.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]api.Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]api.Handle)}
}

// Register binds name to a handle, replacing any previous binding.
func (r *Registry) Register(name string, h api.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fns[name] = h
}

// Resolve looks up a handle by name.
func (r *Registry) Resolve(name string) (api.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.fns[name]
	return h, ok
}
