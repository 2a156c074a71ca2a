// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package palette holds the indexed color palette of a pxl paint program
// and the current foreground and background selection.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/pxl"
)

// ErrIndexOutOfRange is returned for palette indices outside [0, Len()).
var ErrIndexOutOfRange = errors.New("palette: index out of range")

// Default foreground and background indices.
const (
	DefaultForeground = 0 // black
	DefaultBackground = 1 // white
)

// Default is the 28-color palette a new Palette starts with. The colors are
// arranged in light and dark pairs.
var Default = []pxl.RGB{
	{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255},
	{R: 128, G: 128, B: 128}, {R: 192, G: 192, B: 192},
	{R: 128, G: 0, B: 0}, {R: 255, G: 0, B: 0},
	{R: 128, G: 128, B: 0}, {R: 255, G: 255, B: 0},
	{R: 0, G: 128, B: 0}, {R: 0, G: 255, B: 0},
	{R: 0, G: 128, B: 128}, {R: 0, G: 255, B: 255},
	{R: 0, G: 0, B: 128}, {R: 0, G: 0, B: 255},
	{R: 128, G: 0, B: 128}, {R: 255, G: 0, B: 255},
	{R: 128, G: 128, B: 64}, {R: 255, G: 255, B: 128},
	{R: 0, G: 64, B: 64}, {R: 0, G: 255, B: 128},
	{R: 0, G: 128, B: 255}, {R: 128, G: 255, B: 255},
	{R: 0, G: 64, B: 128}, {R: 128, G: 128, B: 255},
	{R: 128, G: 0, B: 255}, {R: 255, G: 0, B: 128},
	{R: 128, G: 64, B: 0}, {R: 255, G: 128, B: 64},
}

// ChangeKind tells what a Change is about.
type ChangeKind uint8

const (
	// ForegroundChanged means a new foreground index was selected.
	ForegroundChanged ChangeKind = iota

	// BackgroundChanged means a new background index was selected.
	BackgroundChanged

	// ColorChanged means a palette entry got a new color.
	ColorChanged
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ForegroundChanged:
		return "foreground"
	case BackgroundChanged:
		return "background"
	case ColorChanged:
		return "color"
	default:
		return fmt.Sprintf("ChangeKind(%d)", k)
	}
}

// Change describes one palette update.
type Change struct {
	Kind  ChangeKind
	Index int
	Color pxl.RGB
}

// Palette is an indexed list of colors with a selected foreground and
// background entry. It implements tool.ColorSource.
//
// Palette is NOT thread-safe.
type Palette struct {
	colors    []pxl.RGB
	fg, bg    int
	observers []func(Change)
}

// New creates a palette holding a copy of colors. With no colors it uses
// Default. Foreground and background select the first two entries, or the
// first entry for both if there is only one.
func New(colors ...pxl.RGB) *Palette {
	if len(colors) == 0 {
		colors = Default
	}
	p := &Palette{
		colors: append([]pxl.RGB(nil), colors...),
		fg:     DefaultForeground,
		bg:     DefaultBackground,
	}
	if len(p.colors) < 2 {
		p.bg = 0
	}
	return p
}

// Parse creates a palette from color specifications. Each entry is a hex
// value accepted by [pxl.Hex] or an SVG color name such as "navy".
func Parse(specs []string) (*Palette, error) {
	colors := make([]pxl.RGB, 0, len(specs))
	for _, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return New(colors...), nil
}

// ParseColor parses a hex value or an SVG color name.
func ParseColor(s string) (pxl.RGB, error) {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return pxl.FromColor(c), nil
	}
	c, err := pxl.Hex(s)
	if err != nil {
		return pxl.RGB{}, fmt.Errorf("palette: %q is neither a hex color nor a color name: %w", s, err)
	}
	return c, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of all entries.
func (p *Palette) Colors() []pxl.RGB {
	return append([]pxl.RGB(nil), p.colors...)
}

// Color returns entry i.
func (p *Palette) Color(i int) (pxl.RGB, error) {
	if err := p.check(i); err != nil {
		return pxl.RGB{}, err
	}
	return p.colors[i], nil
}

// SetColor replaces entry i. Tools pick up the new value on their next
// draw when i is the foreground or background index.
func (p *Palette) SetColor(i int, c pxl.RGB) error {
	if err := p.check(i); err != nil {
		return err
	}
	p.colors[i] = c
	p.notify(Change{Kind: ColorChanged, Index: i, Color: c})
	return nil
}

// ForegroundIndex returns the selected foreground index.
func (p *Palette) ForegroundIndex() int { return p.fg }

// BackgroundIndex returns the selected background index.
func (p *Palette) BackgroundIndex() int { return p.bg }

// Foreground returns the selected foreground color.
func (p *Palette) Foreground() pxl.RGB { return p.colors[p.fg] }

// Background returns the selected background color.
func (p *Palette) Background() pxl.RGB { return p.colors[p.bg] }

// SetForeground selects entry i as the foreground color.
func (p *Palette) SetForeground(i int) error {
	if err := p.check(i); err != nil {
		return err
	}
	p.fg = i
	p.notify(Change{Kind: ForegroundChanged, Index: i, Color: p.colors[i]})
	return nil
}

// SetBackground selects entry i as the background color.
func (p *Palette) SetBackground(i int) error {
	if err := p.check(i); err != nil {
		return err
	}
	p.bg = i
	p.notify(Change{Kind: BackgroundChanged, Index: i, Color: p.colors[i]})
	return nil
}

// OnChange registers fn to be called after every selection or color change.
func (p *Palette) OnChange(fn func(Change)) {
	p.observers = append(p.observers, fn)
}

func (p *Palette) check(i int) error {
	if i < 0 || i >= len(p.colors) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(p.colors))
	}
	return nil
}

func (p *Palette) notify(c Change) {
	pxl.Logger().Debug("palette: changed", "kind", c.Kind, "index", c.Index, "color", c.Color)
	for _, fn := range p.observers {
		fn(c)
	}
}
