// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"
	"image"

	"github.com/gogpu/pxl"
)

// gesture tracks the pointer between down and up.
type gesture struct {
	active bool
	start  image.Point
	last   image.Point
}

func (g *gesture) begin(e Event) {
	g.active = true
	g.start = e.Point()
	g.last = g.start
}

// Pencil draws freehand one-pixel strokes in the foreground color.
// Every move connects the previous position to the current one with a
// line, so fast pointer motion never leaves gaps.
type Pencil struct {
	env Env
	g   gesture
}

// NewPencil creates a pencil bound to env.
func NewPencil(env Env) *Pencil {
	return &Pencil{env: env}
}

// Name implements Tool.
func (p *Pencil) Name() string { return "Pencil" }

// Description implements Tool.
func (p *Pencil) Description() string { return "Draw with the mouse" }

// PointerDown implements Tool.
func (p *Pencil) PointerDown(_ context.Context, e Event) error {
	p.g.begin(e)
	pxl.PutPixel(p.env.Surface.Preview(), p.g.start.X, p.g.start.Y, 1, p.env.Colors.Foreground())
	return nil
}

// PointerMove implements Tool.
func (p *Pencil) PointerMove(_ context.Context, e Event) error {
	if !p.g.active {
		return nil
	}
	pt := e.Point()
	pxl.DrawLine(p.env.Surface.Preview(), p.g.last.X, p.g.last.Y, pt.X, pt.Y, 1, p.env.Colors.Foreground())
	p.g.last = pt
	return nil
}

// PointerUp implements Tool.
func (p *Pencil) PointerUp(ctx context.Context, _ Event) error {
	if !p.g.active {
		return nil
	}
	p.g.active = false
	return p.env.commit(ctx, p, msgPaint)
}
