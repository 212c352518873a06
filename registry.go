package hud

import (
	"fmt"
	"sort"
)

// Registry maps identifiers to values. An identifier can be registered once.
type Registry[T any] struct {
	entries map[Identifier]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[Identifier]T)}
}

// Register associates v with id. Registering a taken id fails with
// ErrAlreadyRegistered and keeps the existing value.
func (r *Registry[T]) Register(id Identifier, v T) error {
	if id.IsZero() {
		return &InvalidIdentifierError{Input: id.String(), Reason: "zero identifier"}
	}
	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, id)
	}
	r.entries[id] = v
	return nil
}

// Get returns the value registered under id.
func (r *Registry[T]) Get(id Identifier) (T, bool) {
	v, ok := r.entries[id]
	return v, ok
}

// IDs returns the registered identifiers sorted by namespace, then path.
func (r *Registry[T]) IDs() []Identifier {
	ids := make([]Identifier, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Namespace != ids[j].Namespace {
			return ids[i].Namespace < ids[j].Namespace
		}
		return ids[i].Path < ids[j].Path
	})
	return ids
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
