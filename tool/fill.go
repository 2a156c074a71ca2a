// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"

	"github.com/gogpu/pxl"
)

// Fill flood-fills the region under the pointer with the foreground color.
// The region is taken from the main layer and painted into the preview,
// which is committed right away.
type Fill struct {
	env Env
}

// NewFill creates a fill tool bound to env.
func NewFill(env Env) *Fill {
	return &Fill{env: env}
}

// Name implements Tool.
func (f *Fill) Name() string { return "Fill" }

// Description implements Tool.
func (f *Fill) Description() string { return "Fill an area with color" }

// PointerDown implements Tool.
func (f *Fill) PointerDown(ctx context.Context, e Event) error {
	s := f.env.Surface
	pt := e.Point()
	pxl.FloodFill(s.Preview(), s.Main(), pt.X, pt.Y, f.env.Colors.Foreground())
	return f.env.commit(ctx, f, msgFill)
}

// PointerMove implements Tool.
func (f *Fill) PointerMove(context.Context, Event) error { return nil }

// PointerUp implements Tool.
func (f *Fill) PointerUp(context.Context, Event) error { return nil }
