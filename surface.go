package pxl

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidScale is returned when a display scale is not positive.
var ErrInvalidScale = errors.New("pxl: invalid scale")

// Size is the logical size of a surface in pixels, independent of the
// display scale.
type Size struct {
	Width, Height int
}

// Scale is the display multiplier of a surface. Powers of two keep the
// zoomed display free of blur.
type Scale struct {
	X, Y float64
}

// Surface is a double-buffered drawing surface.
//
// It owns two pixmaps of identical size: the committed main layer and a
// transient preview layer. Tools draw in-progress gestures into the preview
// (see [Surface.Preview]) and call [Surface.Commit] when the gesture ends,
// which copies every non-empty preview pixel into main and clears the
// preview.
//
// Surface is NOT thread-safe. It is meant to be driven from a single event
// loop; the active tool owns the preview until it commits.
type Surface struct {
	main       *Pixmap
	preview    *Pixmap
	scale      Scale
	background RGB

	sizeObservers   []func(Size)
	scaleObservers  []func(Scale)
	commitObservers []func(image.Rectangle)
}

// NewSurface creates a surface with the given logical size. The main layer
// is filled with the background color, the preview is empty.
func NewSurface(width, height int, opts ...SurfaceOption) (*Surface, error) {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	main, err := NewPixmap(width, height)
	if err != nil {
		return nil, fmt.Errorf("pxl: new surface: %w", err)
	}
	preview, err := NewPixmap(width, height)
	if err != nil {
		return nil, fmt.Errorf("pxl: new surface: %w", err)
	}
	main.Fill(o.background)

	return &Surface{
		main:       main,
		preview:    preview,
		scale:      o.scale,
		background: o.background,
	}, nil
}

// Main returns the committed layer.
func (s *Surface) Main() *Pixmap {
	return s.main
}

// Preview returns the transient layer tools draw in-progress gestures into.
func (s *Surface) Preview() *Pixmap {
	return s.preview
}

// Size returns the logical size.
func (s *Surface) Size() Size {
	return Size{Width: s.main.width, Height: s.main.height}
}

// Scale returns the display multiplier.
func (s *Surface) Scale() Scale {
	return s.scale
}

// Background returns the color used for new area on resize.
func (s *Surface) Background() RGB {
	return s.background
}

// Resize reallocates both layers to the new logical size. Main content is
// kept anchored at the origin: pixels outside the new bounds are discarded
// and new area is filled with the background color. The preview is always
// cleared.
func (s *Surface) Resize(width, height int) error {
	main, err := NewPixmap(width, height)
	if err != nil {
		return fmt.Errorf("pxl: resize: %w", err)
	}
	preview, err := NewPixmap(width, height)
	if err != nil {
		return fmt.Errorf("pxl: resize: %w", err)
	}
	main.Fill(s.background)
	main.CopyFrom(s.main)

	s.main = main
	s.preview = preview

	size := s.Size()
	Logger().Info("pxl: surface resized", "width", size.Width, "height", size.Height)
	for _, fn := range s.sizeObservers {
		fn(size)
	}
	return nil
}

// SetScale updates the display multiplier. Pixel content is not touched.
func (s *Surface) SetScale(x, y float64) error {
	if x <= 0 || y <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidScale, x, y)
	}
	s.scale = Scale{X: x, Y: y}
	for _, fn := range s.scaleObservers {
		fn(s.scale)
	}
	return nil
}

// ClearPreview resets every preview pixel to empty.
func (s *Surface) ClearPreview() {
	s.preview.Clear()
}

// PreviewBounds returns the bounding box of the non-empty preview pixels.
// It is empty when nothing has been drawn since the last clear.
func (s *Surface) PreviewBounds() image.Rectangle {
	p := s.preview
	minX, minY, maxX, maxY := p.width, p.height, -1, -1
	for y := 0; y < p.height; y++ {
		row := p.data[y*p.width*4 : (y+1)*p.width*4]
		for x := 0; x < p.width; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Commit composites the preview onto main and clears the preview. Only
// non-empty preview pixels overwrite main. It returns the rectangle of main
// that may have changed, which is empty if the preview was empty.
//
// Commit runs to completion before returning and observers are notified
// only afterwards, so nobody sees a partially applied preview.
func (s *Surface) Commit() image.Rectangle {
	r := s.PreviewBounds()
	if !r.Empty() {
		s.composite(r)
	}
	s.preview.Clear()

	if r.Empty() {
		return r
	}
	Logger().Debug("pxl: preview committed", "rect", r)
	for _, fn := range s.commitObservers {
		fn(r)
	}
	return r
}

// composite copies the non-empty preview pixels inside r into main.
func (s *Surface) composite(r image.Rectangle) {
	src, dst, w := s.preview.data, s.main.data, s.main.width
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := (y*w + x) * 4
			if src[i+3] == 0 {
				continue
			}
			copy(dst[i:i+4], src[i:i+4])
		}
	}
}

// Clear fills main with c and empties the preview. This is the
// "new image" operation.
func (s *Surface) Clear(c RGB) {
	s.main.Fill(c)
	s.preview.Clear()
}

// Load replaces the content of the surface with img: the surface is resized
// to the image bounds and the pixels are written in bulk.
func (s *Surface) Load(img image.Image) error {
	pm, err := FromImage(img)
	if err != nil {
		return fmt.Errorf("pxl: load: %w", err)
	}
	if err := s.Resize(pm.width, pm.height); err != nil {
		return err
	}
	copy(s.main.data, pm.data)
	return nil
}

// Image returns a copy of the main layer for saving.
func (s *Surface) Image() *image.NRGBA {
	return s.main.ToImage()
}

// OnSizeChanged registers fn to be called after every resize.
func (s *Surface) OnSizeChanged(fn func(Size)) {
	s.sizeObservers = append(s.sizeObservers, fn)
}

// OnScaleChanged registers fn to be called after every scale change.
func (s *Surface) OnScaleChanged(fn func(Scale)) {
	s.scaleObservers = append(s.scaleObservers, fn)
}

// OnCommit registers fn to be called after a commit changed main.
func (s *Surface) OnCommit(fn func(image.Rectangle)) {
	s.commitObservers = append(s.commitObservers, fn)
}
