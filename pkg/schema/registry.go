package schema

import "sync"

// Factory produces an empty instance of a node kind, bound to its live
// collaborator, ready to be Restored from a document.
type Factory func() Node

// Registry maps typeTags to node factories. The set is closed per deployment:
// it is populated once at wiring time and a tag outside it is a parse error.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a node kind to the registry.
// If a factory with the same tag exists, it is overwritten.
func (r *Registry) Register(tag string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[tag] = fn
}

// New instantiates the node kind registered for tag.
// Returns UnknownNodeTypeError if the tag is absent.
func (r *Registry) New(tag string) (Node, error) {
	r.mu.RLock()
	fn, ok := r.factories[tag]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownNodeTypeError{TypeTag: tag}
	}
	return fn(), nil
}
