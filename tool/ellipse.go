// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"
	"fmt"

	"github.com/gogpu/pxl"
)

// EllipseMode selects what the ellipse tool paints.
type EllipseMode uint8

// Ellipse modes. They combine as bit flags.
const (
	// EllipseBorder paints the outline in the foreground color.
	EllipseBorder EllipseMode = 1 << iota

	// EllipseFill paints the interior in the background color.
	EllipseFill
)

var ellipseModes = []struct {
	name string
	mode EllipseMode
}{
	{"Border", EllipseBorder},
	{"Border and fill", EllipseBorder | EllipseFill},
	{"Fill", EllipseFill},
}

// Ellipse draws the ellipse inscribed in the rectangle between the
// pointer-down position and the current position.
type Ellipse struct {
	env    Env
	g      gesture
	option int
}

// NewEllipse creates an ellipse tool bound to env, in border mode.
func NewEllipse(env Env) *Ellipse {
	return &Ellipse{env: env}
}

// Name implements Tool.
func (t *Ellipse) Name() string { return "Ellipse Tool" }

// Description implements Tool.
func (t *Ellipse) Description() string { return "Draw ellipses and circles" }

// Options implements Configurable.
func (t *Ellipse) Options() []Option {
	opts := make([]Option, len(ellipseModes))
	for i, m := range ellipseModes {
		opts[i] = Option{Name: m.name}
	}
	return opts
}

// SelectOption implements Configurable.
func (t *Ellipse) SelectOption(i int) error {
	if i < 0 || i >= len(ellipseModes) {
		return fmt.Errorf("tool: ellipse option %d out of range", i)
	}
	t.option = i
	return nil
}

// SelectedOption implements Configurable.
func (t *Ellipse) SelectedOption() int { return t.option }

// Mode returns the current drawing mode.
func (t *Ellipse) Mode() EllipseMode { return ellipseModes[t.option].mode }

// PointerDown implements Tool.
func (t *Ellipse) PointerDown(_ context.Context, e Event) error {
	t.g.begin(e)
	return nil
}

// PointerMove implements Tool.
func (t *Ellipse) PointerMove(_ context.Context, e Event) error {
	if !t.g.active {
		return nil
	}
	t.g.last = e.Point()
	t.redraw()
	return nil
}

// PointerUp implements Tool.
func (t *Ellipse) PointerUp(ctx context.Context, e Event) error {
	if !t.g.active {
		return nil
	}
	t.g.active = false
	t.g.last = e.Point()
	t.redraw()
	return t.env.commit(ctx, t, msgPaint)
}

// redraw paints the fill first so the border stays on top.
func (t *Ellipse) redraw() {
	s := t.env.Surface
	s.ClearPreview()
	a, b := t.g.start, t.g.last
	if t.Mode()&EllipseFill != 0 {
		pxl.DrawEllipse(s.Preview(), a.X, a.Y, b.X, b.Y, 1, t.env.Colors.Background(), true)
	}
	if t.Mode()&EllipseBorder != 0 {
		pxl.DrawEllipse(s.Preview(), a.X, a.Y, b.X, b.Y, 1, t.env.Colors.Foreground(), false)
	}
}
