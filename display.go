package pxl

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DisplaySize returns the on-screen size of the surface: the logical size
// multiplied by the display scale, rounded to whole pixels.
func (s *Surface) DisplaySize() image.Point {
	return image.Point{
		X: max(1, int(math.Round(float64(s.main.width)*s.scale.X))),
		Y: max(1, int(math.Round(float64(s.main.height)*s.scale.Y))),
	}
}

// Display renders what a viewer sees: main with the preview layered on top,
// scaled to [Surface.DisplaySize] with nearest-neighbor sampling so every
// logical pixel stays a sharp block.
func (s *Surface) Display() *image.RGBA {
	composed := s.main.ToImage()
	draw.Draw(composed, composed.Bounds(), s.preview.ToImage(), image.Point{}, draw.Over)

	size := s.DisplaySize()
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), composed, composed.Bounds(), xdraw.Src, nil)
	return dst
}

// ToLogical converts display coordinates to logical pixel coordinates by
// dividing out the display scale. Offsets of the viewport must be removed
// by the caller first.
func (s *Surface) ToLogical(x, y float64) (float64, float64) {
	return x / s.scale.X, y / s.scale.Y
}
