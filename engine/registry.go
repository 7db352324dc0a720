package engine

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBadHandle is returned for handles that were never issued or whose
// engine has already been closed.
var ErrBadHandle = errors.New("no engine registered for handle")

// Handle identifies a registered engine instance. Handles are opaque;
// the zero handle is never issued.
type Handle int64

// Registry owns engine instances and maps them to handles. Callers hold a
// Handle instead of the engine itself and must release it with Close.
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	engines map[Handle]Engine
	next    Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[Handle]Engine),
		next:    1,
	}
}

// Register takes ownership of e and issues a handle for it.
func (r *Registry) Register(e Engine) (Handle, error) {
	if e == nil {
		return 0, fmt.Errorf("cannot register nil engine")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.engines[h] = e
	tracer().Debugf("registered engine as handle %d", h)
	return h, nil
}

// Get resolves a handle to its engine.
func (r *Registry) Get(h Handle) (Engine, error) {
	r.mu.RLock()
	e, ok := r.engines[h]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	return e, nil
}

// Close releases the handle's slot and closes the engine. Closing a handle
// twice is an error.
func (r *Registry) Close(h Handle) error {
	r.mu.Lock()
	e, ok := r.engines[h]
	delete(r.engines, h)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	tracer().Debugf("closing engine handle %d", h)
	return e.Close()
}

// Len returns the number of live engine instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register issues a handle from the default registry.
func Register(e Engine) (Handle, error) {
	return defaultRegistry.Register(e)
}

// Get resolves a handle against the default registry.
func Get(h Handle) (Engine, error) {
	return defaultRegistry.Get(h)
}

// Close releases a handle issued by the default registry.
func Close(h Handle) error {
	return defaultRegistry.Close(h)
}
