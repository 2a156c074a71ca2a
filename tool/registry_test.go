// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"
	"slices"
	"testing"
)

type stubTool struct {
	name                   string
	downs, moves, ups      int
	activated, deactivated int
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }

func (s *stubTool) PointerDown(context.Context, Event) error { s.downs++; return nil }
func (s *stubTool) PointerMove(context.Context, Event) error { s.moves++; return nil }
func (s *stubTool) PointerUp(context.Context, Event) error   { s.ups++; return nil }

func (s *stubTool) Activate()   { s.activated++ }
func (s *stubTool) Deactivate() { s.deactivated++ }

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	want := []string{"ellipse", "fill", "line", "pencil", "zoom"}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	env := testEnv(t, 8, 8)
	for _, name := range want {
		tl, err := r.New(name, env)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if tl.Name() == "" || tl.Description() == "" {
			t.Errorf("%q: empty name or description", name)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("brush", Env{}); err == nil {
		t.Error("New of unregistered tool should fail")
	}
	if r.IsRegistered("brush") {
		t.Error("IsRegistered(brush) = true")
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", func(Env) Tool { return &stubTool{name: "Stub"} })
	if !r.IsRegistered("stub") {
		t.Fatal("stub not registered")
	}
	tl, err := r.New("stub", Env{})
	if err != nil || tl.Name() != "Stub" {
		t.Fatalf("New(stub) = %v, %v", tl, err)
	}

	r.Unregister("stub")
	r.Unregister("stub")
	if r.IsRegistered("stub") {
		t.Error("stub still registered after Unregister")
	}
}

func TestRegistryRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory Factory
	}{
		{"nil factory", nil},
		{"duplicate", func(Env) Tool { return &stubTool{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.Register("taken", func(Env) Tool { return &stubTool{} })
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			name := "taken"
			if tt.factory == nil {
				name = "fresh"
			}
			r.Register(name, tt.factory)
		})
	}
}

func TestRegistryLoad(t *testing.T) {
	r := DefaultRegistry()
	env := testEnv(t, 8, 8)
	m := NewManager()

	if err := r.Load(m, env, "pencil", "fill", "zoom"); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, tl := range m.Tools() {
		names = append(names, tl.Name())
	}
	if want := []string{"Pencil", "Fill", "Zoom"}; !slices.Equal(names, want) {
		t.Errorf("loaded %v, want %v", names, want)
	}
	if m.Selected().Name() != "Pencil" {
		t.Errorf("selected = %q, want first loaded tool", m.Selected().Name())
	}

	if err := r.Load(m, env, "line", "nope", "ellipse"); err == nil {
		t.Error("Load with unknown name should fail")
	}
	if got := len(m.Tools()); got != 4 {
		t.Errorf("tools after failed load = %d, want 4", got)
	}
}
