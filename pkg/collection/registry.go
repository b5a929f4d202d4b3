// Package collection tracks the known collection names and the active
// selection. The registry is in-memory only; the storage calls that accompany
// its mutations are the persistence orchestrator's responsibility.
package collection

import "sync"

// Registry holds the known collection names in insertion order plus the
// active pointer. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	names  []string
	active string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// List returns the known names in insertion order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether a name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexLocked(name) >= 0
}

// Register adds a name. Registering an existing name is a no-op, preserving
// the uniqueness invariant.
func (r *Registry) Register(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(name) >= 0 {
		return
	}
	r.names = append(r.names, name)
}

// Unregister removes a name. The active pointer is cleared if it pointed at
// the removed name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(name)
	if i < 0 {
		return
	}
	r.names = append(r.names[:i], r.names[i+1:]...)
	if r.active == name {
		r.active = ""
	}
}

// Rename replaces old with new in place, keeping insertion order. The active
// pointer follows if it pointed at old.
func (r *Registry) Rename(oldName, newName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(oldName)
	if i < 0 {
		return
	}
	r.names[i] = newName
	if r.active == oldName {
		r.active = newName
	}
}

// SetActive marks a name active.
func (r *Registry) SetActive(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = name
}

// Active returns the active name, or "" before the first load.
func (r *Registry) Active() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Registry) indexLocked(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}
