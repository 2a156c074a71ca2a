// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gogpu/pxl"
)

// lineWidths are the stroke widths offered by width-aware tools.
var lineWidths = []int{1, 2, 3, 4, 5}

func widthOptions() []Option {
	opts := make([]Option, len(lineWidths))
	for i, w := range lineWidths {
		opts[i] = Option{Name: strconv.Itoa(w) + "px"}
	}
	return opts
}

// Line draws a straight line from the pointer-down position to the current
// position. The preview is redrawn on every move and committed on release.
type Line struct {
	env   Env
	g     gesture
	width int
}

// NewLine creates a line tool bound to env.
func NewLine(env Env) *Line {
	return &Line{env: env}
}

// Name implements Tool.
func (l *Line) Name() string { return "Line Tool" }

// Description implements Tool.
func (l *Line) Description() string { return "Draw straight lines" }

// Options implements Configurable.
func (l *Line) Options() []Option { return widthOptions() }

// SelectOption implements Configurable.
func (l *Line) SelectOption(i int) error {
	if i < 0 || i >= len(lineWidths) {
		return fmt.Errorf("tool: line option %d out of range", i)
	}
	l.width = i
	return nil
}

// SelectedOption implements Configurable.
func (l *Line) SelectedOption() int { return l.width }

// Width returns the current stroke width in pixels.
func (l *Line) Width() int { return lineWidths[l.width] }

// PointerDown implements Tool.
func (l *Line) PointerDown(_ context.Context, e Event) error {
	l.g.begin(e)
	return nil
}

// PointerMove implements Tool.
func (l *Line) PointerMove(_ context.Context, e Event) error {
	if !l.g.active {
		return nil
	}
	l.g.last = e.Point()
	l.redraw()
	return nil
}

// PointerUp implements Tool.
func (l *Line) PointerUp(ctx context.Context, e Event) error {
	if !l.g.active {
		return nil
	}
	l.g.active = false
	l.g.last = e.Point()
	l.redraw()
	return l.env.commit(ctx, l, msgPaint)
}

func (l *Line) redraw() {
	s := l.env.Surface
	s.ClearPreview()
	pxl.DrawLine(s.Preview(), l.g.start.X, l.g.start.Y, l.g.last.X, l.g.last.Y, l.Width(), l.env.Colors.Foreground())
}
