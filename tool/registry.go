// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a tool bound to env.
type Factory func(env Env) Tool

// Registry maps tool names to factories. Unlike a package-level registry it
// is an ordinary value: the application builds one at startup and hands it
// to whatever loads tools.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in tools:
// "pencil", "line", "ellipse", "fill" and "zoom".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("pencil", func(env Env) Tool { return NewPencil(env) })
	r.Register("line", func(env Env) Tool { return NewLine(env) })
	r.Register("ellipse", func(env Env) Tool { return NewEllipse(env) })
	r.Register("fill", func(env Env) Tool { return NewFill(env) })
	r.Register("zoom", func(env Env) Tool { return NewZoom(env) })
	return r
}

// Register adds a factory under name.
//
// Register panics if:
//   - factory is nil
//   - a tool with the same name is already registered
//
// Both are programming errors best caught during startup.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if factory == nil {
		panic("tool: Register factory is nil")
	}
	if _, dup := r.factories[name]; dup {
		panic("tool: Register called twice for " + name)
	}
	r.factories[name] = factory
}

// Unregister removes a tool from the registry.
// If the tool is not registered, this is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// New creates the tool registered under name.
func (r *Registry) New(name string, env Env) (Tool, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("tool: unknown tool %q", name)
	}
	return factory(env), nil
}

// Names returns the registered tool names, sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a tool with the given name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Load creates every named tool and adds it to m, in order. It stops at
// the first unknown name.
func (r *Registry) Load(m *Manager, env Env, names ...string) error {
	for _, name := range names {
		t, err := r.New(name, env)
		if err != nil {
			return err
		}
		m.Add(t)
	}
	return nil
}
