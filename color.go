package pxl

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color. Every pixel written by the engine is fully
// opaque, so there is no alpha component.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// Color converts c to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Hex returns c formatted as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
// Premultiplied channels are converted back to straight values so that a
// semi-transparent color keeps its hue.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ColorsEqual reports whether a and b have identical red, green and blue
// channels. Alpha is ignored.
func ColorsEqual(a, b color.Color) bool {
	return FromColor(a) == FromColor(b)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RRGGBB", with or without a leading '#'.
// It returns an error for any other input.
func Hex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return RGB{}, fmt.Errorf("pxl: invalid hex color %q", hex)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil //nolint:gosec // parsed values are <= 255
}

// MustHex is like Hex but panics on malformed input.
// It is intended for package-level color tables.
func MustHex(hex string) RGB {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
