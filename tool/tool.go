// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tool implements the drawing tools of a pxl paint program.
//
// A tool turns pointer events, already translated to logical surface
// coordinates, into calls to the pxl drawing routines. Tools draw into the
// preview layer of a [pxl.Surface] and commit it into the main layer,
// together with a history entry, when the gesture ends.
//
// Tools are created by name through a [Registry] and driven by a
// [Manager], which tracks the selected tool and routes events to it.
package tool

import (
	"context"
	"image"

	"golang.org/x/text/language"

	"github.com/gogpu/pxl"
)

// Event is a pointer event in logical surface coordinates. The caller has
// already removed the viewport offset and divided by the display scale.
type Event struct {
	X, Y float64
}

// Point returns the event position truncated to whole pixels.
func (e Event) Point() image.Point {
	return image.Point{X: int(e.X), Y: int(e.Y)}
}

// Tool reacts to the pointer events of one gesture.
type Tool interface {
	// Name returns the human-readable tool name.
	Name() string

	// Description returns a short tooltip text.
	Description() string

	// PointerDown starts a gesture.
	PointerDown(ctx context.Context, e Event) error

	// PointerMove continues a gesture. Moves without a preceding
	// PointerDown are ignored.
	PointerMove(ctx context.Context, e Event) error

	// PointerUp ends a gesture.
	PointerUp(ctx context.Context, e Event) error
}

// Activator is implemented by tools that need to know when they are
// selected or deselected.
type Activator interface {
	Activate()
	Deactivate()
}

// Option is one entry of a tool's option bar, such as a line width or a
// drawing mode.
type Option struct {
	Name string
}

// Configurable is implemented by tools with selectable options.
type Configurable interface {
	// Options lists the available options in display order.
	Options() []Option

	// SelectOption makes the option with index i current.
	SelectOption(i int) error

	// SelectedOption returns the index of the current option.
	SelectedOption() int
}

// ColorSource supplies drawing colors. It is typically a palette.
type ColorSource interface {
	Foreground() pxl.RGB
	Background() pxl.RGB
}

// Env is what a tool works on.
type Env struct {
	Surface *pxl.Surface
	History *pxl.History
	Colors  ColorSource

	// Lang selects the language of history descriptions. The zero value
	// uses the English source strings.
	Lang language.Tag

	// ZoomLevels are the scales the zoom tool cycles through. Nil means
	// DefaultZoomLevels.
	ZoomLevels []float64
}

// commit applies the preview and records it in the history with a
// description built from format and the tool name.
func (env Env) commit(ctx context.Context, t Tool, format string) error {
	desc := describe(env.Lang, format, t.Name())
	ok, err := env.Surface.CommitWithHistory(ctx, env.History, desc)
	if err != nil {
		return err
	}
	if ok {
		pxl.Logger().Debug("tool: gesture committed", "tool", t.Name(), "description", desc)
	}
	return nil
}
