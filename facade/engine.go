// File: facade/engine.go
// Unified host-facing surface of the anyarr engine.
// License: Apache-2.0
//
// Engine exposes one method per algorithm, taking callback names instead of
// resolved handles. Resolution failure is logged and returned as a
// structured not-found error without ever entering the core. Mutating
// operations fire the registered mutation hooks after they complete.

package facade

import (
	"sync"

	"github.com/anyarr/anyarr/algo"
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/elem"
)

// Engine aggregates a callback registry and configuration behind the
// host-facing method set.
type Engine struct {
	reg *Registry
	cfg *Config

	mu       sync.Mutex
	onMutate []func()
}

// New creates an engine over the given registry. A nil cfg uses defaults.
func New(reg *Registry, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultConfig().Logger
	}
	return &Engine{reg: reg, cfg: cfg}
}

// OnMutate registers a hook invoked after every operation that mutated the
// target array (fill, removal, sort).
func (e *Engine) OnMutate(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onMutate = append(e.onMutate, fn)
}

func (e *Engine) notifyMutate() {
	e.mu.Lock()
	hooks := append([]func(){}, e.onMutate...)
	e.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// resolve turns a callback name into a handle, logging and reporting a
// structured not-found error on a miss.
func (e *Engine) resolve(role, name string) (api.Handle, error) {
	h, ok := e.reg.Resolve(name)
	if !ok {
		e.cfg.Logger.Printf("anyarr: %s %q not found in registry", role, name)
		return nil, api.NewError(api.ErrCodeNotFound, role+" "+name+" not registered",
			map[string]any{"name": name})
	}
	return h, nil
}

// AdjacentFind returns the index of the first adjacent pair satisfying the
// named binary predicate.
func (e *Engine) AdjacentFind(c api.Container, desc api.TypeDesc, predName string) (int, bool, error) {
	h, err := e.resolve("binary predicate", predName)
	if err != nil {
		return 0, false, err
	}
	i, ok := algo.AdjacentFind(c, desc, h)
	return i, ok, nil
}

// AllSatisfy reports whether the named predicate holds for every element.
func (e *Engine) AllSatisfy(c api.Container, desc api.TypeDesc, predName string) (bool, error) {
	h, err := e.resolve("predicate", predName)
	if err != nil {
		return false, err
	}
	return algo.AllSatisfy(c, desc, h), nil
}

// AnySatisfy reports whether the named predicate holds for any element.
func (e *Engine) AnySatisfy(c api.Container, desc api.TypeDesc, predName string) (bool, error) {
	h, err := e.resolve("predicate", predName)
	if err != nil {
		return false, err
	}
	return algo.AnySatisfy(c, desc, h), nil
}

// NoneSatisfy reports whether the named predicate holds for no element.
func (e *Engine) NoneSatisfy(c api.Container, desc api.TypeDesc, predName string) (bool, error) {
	h, err := e.resolve("predicate", predName)
	if err != nil {
		return false, err
	}
	return algo.NoneSatisfy(c, desc, h), nil
}

// Count returns the number of elements equal to value.
func (e *Engine) Count(c api.Container, desc api.TypeDesc, value []byte) int {
	return algo.Count(c, desc, value)
}

// CountIf returns the number of elements satisfying the named predicate.
func (e *Engine) CountIf(c api.Container, desc api.TypeDesc, predName string) (int, error) {
	h, err := e.resolve("predicate", predName)
	if err != nil {
		return 0, err
	}
	return algo.CountIf(c, desc, h), nil
}

// Fill overwrites every element with value.
func (e *Engine) Fill(c api.Container, desc api.TypeDesc, value []byte) {
	algo.Fill(c, desc, value)
	e.notifyMutate()
}

// FillRange overwrites the elements in [start, end) with value.
func (e *Engine) FillRange(c api.Container, desc api.TypeDesc, start, end int, value []byte) error {
	if err := algo.FillRange(c, desc, start, end, value); err != nil {
		return err
	}
	e.notifyMutate()
	return nil
}

// FindIf returns the index of the first element satisfying the named
// predicate.
func (e *Engine) FindIf(c api.Container, desc api.TypeDesc, predName string) (int, bool, error) {
	h, err := e.resolve("predicate", predName)
	if err != nil {
		return 0, false, err
	}
	i, ok := algo.FindIf(c, desc, h)
	return i, ok, nil
}

// Max copies the greatest element under the named comparator into out and
// reports whether one existed. out must be one element wide. An empty
// array leaves out untouched.
func (e *Engine) Max(c api.Container, desc api.TypeDesc, lessName string, out []byte) (bool, error) {
	h, err := e.resolve("comparison function", lessName)
	if err != nil {
		return false, err
	}
	r, ok := algo.Max(c, desc, h)
	if !ok {
		return false, nil
	}
	copyOut(r, out)
	return true, nil
}

// MaxElementIndex returns the index of the greatest element under the
// named comparator.
func (e *Engine) MaxElementIndex(c api.Container, desc api.TypeDesc, lessName string) (int, bool, error) {
	h, err := e.resolve("comparison function", lessName)
	if err != nil {
		return 0, false, err
	}
	i, ok := algo.MaxElementIndex(c, desc, h)
	return i, ok, nil
}

// Min copies the least element under the named comparator into out and
// reports whether one existed.
func (e *Engine) Min(c api.Container, desc api.TypeDesc, lessName string, out []byte) (bool, error) {
	h, err := e.resolve("comparison function", lessName)
	if err != nil {
		return false, err
	}
	r, ok := algo.Min(c, desc, h)
	if !ok {
		return false, nil
	}
	copyOut(r, out)
	return true, nil
}

// MinElementIndex returns the index of the least element under the named
// comparator.
func (e *Engine) MinElementIndex(c api.Container, desc api.TypeDesc, lessName string) (int, bool, error) {
	h, err := e.resolve("comparison function", lessName)
	if err != nil {
		return 0, false, err
	}
	i, ok := algo.MinElementIndex(c, desc, h)
	return i, ok, nil
}

// RemoveRange erases the elements in [start, end).
func (e *Engine) RemoveRange(c api.Container, start, end int) error {
	if err := algo.RemoveRange(c, start, end); err != nil {
		return err
	}
	e.notifyMutate()
	return nil
}

// RemoveIf erases every element satisfying the named predicate.
func (e *Engine) RemoveIf(c api.Container, desc api.TypeDesc, predName string) error {
	h, err := e.resolve("predicate", predName)
	if err != nil {
		return err
	}
	algo.RemoveIf(c, desc, h)
	e.notifyMutate()
	return nil
}

// RandomSample partitions the array into min(k, Len()) uniformly random
// samples and the remaining elements, appended to the two output
// containers in input order.
func (e *Engine) RandomSample(c api.Container, desc api.TypeDesc, k int, samples, others api.Container) {
	algo.RandomSample(c, desc, k, samples, others, e.cfg.Rand)
}

// Sort orders the array in place under the named less-than comparator.
// Not stable.
func (e *Engine) Sort(c api.Container, desc api.TypeDesc, lessName string) error {
	h, err := e.resolve("comparison function", lessName)
	if err != nil {
		return err
	}
	algo.Sort(c, desc, h)
	e.notifyMutate()
	return nil
}

// copyOut hands an element's value across the host boundary by scratch
// copy, so the destination keeps the value even if the source array is
// mutated afterwards.
func copyOut(r elem.ConstRef, out []byte) {
	clone := elem.Clone(r)
	defer clone.Release()
	if len(out) != len(clone.Bytes()) {
		api.Precondition("out buffer is %d bytes, element is %d", len(out), len(clone.Bytes()))
	}
	copy(out, clone.Bytes())
}
