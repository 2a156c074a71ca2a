// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/pxl"
)

// Manager errors.
var (
	// ErrNoTool is returned when an event arrives with no tool selected.
	ErrNoTool = errors.New("tool: no tool selected")

	// ErrUnknownTool is returned for IDs that do not belong to the manager.
	ErrUnknownTool = errors.New("tool: unknown tool id")
)

type managed struct {
	id   uuid.UUID
	tool Tool
}

// Manager keeps the set of available tools and the selected one, and
// routes pointer events to it.
//
// Manager is NOT thread-safe; it is driven by the UI event loop.
type Manager struct {
	tools     []managed
	selected  int
	observers []func(Tool)
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{selected: -1}
}

// Add appends t and returns its ID. The first tool added becomes the
// selected one. Adding a tool twice logs a warning and returns the
// existing ID.
func (m *Manager) Add(t Tool) uuid.UUID {
	if i := m.index(t); i >= 0 {
		pxl.Logger().Warn("tool: already added, not adding it twice", "tool", t.Name())
		return m.tools[i].id
	}
	id := uuid.New()
	m.tools = append(m.tools, managed{id: id, tool: t})
	if m.selected < 0 {
		m.activate(len(m.tools) - 1)
	}
	return id
}

// Remove drops the tool with the given ID. Removing the selected tool
// deactivates it and leaves no tool selected.
func (m *Manager) Remove(id uuid.UUID) error {
	i := m.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	switch {
	case i == m.selected:
		if a, ok := m.tools[i].tool.(Activator); ok {
			a.Deactivate()
		}
		m.selected = -1
	case i < m.selected:
		m.selected--
	}
	m.tools = append(m.tools[:i], m.tools[i+1:]...)
	return nil
}

// Select makes the tool with the given ID current. The previous tool is
// deactivated first. Selecting the current tool is a no-op.
func (m *Manager) Select(id uuid.UUID) error {
	i := m.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	if i == m.selected {
		return nil
	}
	if m.selected >= 0 {
		if a, ok := m.tools[m.selected].tool.(Activator); ok {
			a.Deactivate()
		}
	}
	m.activate(i)
	return nil
}

// SelectByName selects the first tool whose Name matches.
func (m *Manager) SelectByName(name string) error {
	for _, mt := range m.tools {
		if mt.tool.Name() == name {
			return m.Select(mt.id)
		}
	}
	return fmt.Errorf("%w: no tool named %q", ErrUnknownTool, name)
}

func (m *Manager) activate(i int) {
	m.selected = i
	t := m.tools[i].tool
	for _, fn := range m.observers {
		fn(t)
	}
	if a, ok := t.(Activator); ok {
		a.Activate()
	}
	pxl.Logger().Info("tool: selected", "tool", t.Name())
}

// Selected returns the current tool, or nil.
func (m *Manager) Selected() Tool {
	if m.selected < 0 {
		return nil
	}
	return m.tools[m.selected].tool
}

// Tools returns the managed tools in the order they were added.
func (m *Manager) Tools() []Tool {
	out := make([]Tool, len(m.tools))
	for i, mt := range m.tools {
		out[i] = mt.tool
	}
	return out
}

// ID returns the ID assigned to t.
func (m *Manager) ID(t Tool) (uuid.UUID, bool) {
	if i := m.index(t); i >= 0 {
		return m.tools[i].id, true
	}
	return uuid.Nil, false
}

// OnSelect registers fn to be called whenever a tool becomes current.
func (m *Manager) OnSelect(fn func(Tool)) {
	m.observers = append(m.observers, fn)
}

// PointerDown forwards e to the selected tool.
func (m *Manager) PointerDown(ctx context.Context, e Event) error {
	t := m.Selected()
	if t == nil {
		return ErrNoTool
	}
	return t.PointerDown(ctx, e)
}

// PointerMove forwards e to the selected tool.
func (m *Manager) PointerMove(ctx context.Context, e Event) error {
	t := m.Selected()
	if t == nil {
		return ErrNoTool
	}
	return t.PointerMove(ctx, e)
}

// PointerUp forwards e to the selected tool.
func (m *Manager) PointerUp(ctx context.Context, e Event) error {
	t := m.Selected()
	if t == nil {
		return ErrNoTool
	}
	return t.PointerUp(ctx, e)
}

// Drag performs a complete gesture: down at the first point, a move to
// every following point and up at the last one. It is handy for scripted
// sessions and tests.
func (m *Manager) Drag(ctx context.Context, points ...Event) error {
	if len(points) == 0 {
		return nil
	}
	if err := m.PointerDown(ctx, points[0]); err != nil {
		return err
	}
	for _, p := range points[1:] {
		if err := m.PointerMove(ctx, p); err != nil {
			return err
		}
	}
	return m.PointerUp(ctx, points[len(points)-1])
}

func (m *Manager) index(t Tool) int {
	for i, mt := range m.tools {
		if mt.tool == t {
			return i
		}
	}
	return -1
}

func (m *Manager) find(id uuid.UUID) int {
	for i, mt := range m.tools {
		if mt.id == id {
			return i
		}
	}
	return -1
}
