// Copyright 2026 The gesturekit Authors
// SPDX-License-Identifier: MIT

package gesture

import "sync"

// GestureBuilder constructs a Gesture on the given Engine and returns it
// fully configured. Builders are the unit a TemplateRegistry stores: they
// close over whatever Targets and thresholds a named gesture needs, and
// are called fresh for every Engine that wants that gesture, since a
// Gesture (like a Target) is owned by exactly one Engine.
type GestureBuilder func(e *Engine) *Gesture

// TemplateRegistry provides thread-safe registration and lookup of named
// GestureBuilders, so a host can describe a library of reusable gesture
// templates (e.g. "two-finger-tap", "pinch-zoom") once and instantiate
// any of them onto any number of Engines by name.
type TemplateRegistry struct {
	mu       sync.RWMutex
	builders map[string]GestureBuilder
}

// NewTemplateRegistry returns an empty TemplateRegistry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{builders: make(map[string]GestureBuilder)}
}

// Register adds a builder under the given name. If a builder with the
// same name already exists, it is replaced. Thread-safe.
func (r *TemplateRegistry) Register(name string, builder GestureBuilder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = builder
}

// Unregister removes the builder with the given name. Thread-safe.
func (r *TemplateRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.builders, name)
}

// Has returns true if a builder with the given name is registered.
// Thread-safe.
func (r *TemplateRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[name]
	return ok
}

// Build looks up the named builder and, if found, invokes it against e,
// returning the Gesture it configured. Returns nil, false if no builder
// is registered under that name.
func (r *TemplateRegistry) Build(name string, e *Engine) (*Gesture, bool) {
	r.mu.RLock()
	builder, ok := r.builders[name]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return builder(e), true
}

// Available returns the names of every registered builder. Thread-safe.
func (r *TemplateRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}

// Count returns the number of registered builders. Thread-safe.
func (r *TemplateRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.builders)
}
