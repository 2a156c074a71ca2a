// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"
	"fmt"
	"strconv"
)

// DefaultZoomLevels are the display scales the zoom tool cycles through.
// Powers of two keep scaled pixels sharp.
var DefaultZoomLevels = []float64{1, 2, 4, 8}

// Zoom cycles the display scale of the surface on every click.
type Zoom struct {
	env    Env
	levels []float64
	level  int
}

// NewZoom creates a zoom tool bound to env, starting at the first level.
func NewZoom(env Env) *Zoom {
	levels := env.ZoomLevels
	if len(levels) == 0 {
		levels = DefaultZoomLevels
	}
	return &Zoom{env: env, levels: levels}
}

// Name implements Tool.
func (z *Zoom) Name() string { return "Zoom" }

// Description implements Tool.
func (z *Zoom) Description() string { return "Zoom in or out on the drawing area" }

// Options implements Configurable. There is one option per zoom level.
func (z *Zoom) Options() []Option {
	opts := make([]Option, len(z.levels))
	for i, l := range z.levels {
		opts[i] = Option{Name: strconv.FormatFloat(l*100, 'f', -1, 64) + "%"}
	}
	return opts
}

// SelectOption implements Configurable by jumping to zoom level i.
func (z *Zoom) SelectOption(i int) error {
	if i < 0 || i >= len(z.levels) {
		return fmt.Errorf("tool: zoom level %d out of range", i)
	}
	return z.setLevel(i)
}

// SelectedOption implements Configurable.
func (z *Zoom) SelectedOption() int { return z.level }

// Toggle advances to the next zoom level, wrapping around after the last.
func (z *Zoom) Toggle() error {
	return z.setLevel((z.level + 1) % len(z.levels))
}

func (z *Zoom) setLevel(i int) error {
	l := z.levels[i]
	if err := z.env.Surface.SetScale(l, l); err != nil {
		return err
	}
	z.level = i
	return nil
}

// PointerDown implements Tool.
func (z *Zoom) PointerDown(context.Context, Event) error { return nil }

// PointerMove implements Tool.
func (z *Zoom) PointerMove(context.Context, Event) error { return nil }

// PointerUp implements Tool.
func (z *Zoom) PointerUp(context.Context, Event) error { return z.Toggle() }
