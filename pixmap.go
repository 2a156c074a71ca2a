package pxl

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Pixmap errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pxl: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside the pixmap.
	ErrOutOfBounds = errors.New("pxl: coordinates out of bounds")

	// ErrSizeMismatch is returned when restoring pixel data of the wrong length.
	ErrSizeMismatch = errors.New("pxl: pixel data size mismatch")
)

// Pixmap is an addressable grid of RGB pixels backing a drawing surface.
//
// Pixels are stored as RGBA bytes, 4 per pixel. Every written pixel is fully
// opaque (alpha 255). A pixel with alpha 0 is "empty": it has never been
// written since the last Clear. Empty pixels only matter on preview layers,
// where they are skipped when the layer is committed.
//
// Pixmap is not safe for concurrent use.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates an empty pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Pixel returns the color stored at (x, y).
func (p *Pixmap) Pixel(x, y int) (RGB, error) {
	if !p.InBounds(x, y) {
		return RGB{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	i := (y*p.width + x) * 4
	return RGB{R: p.data[i], G: p.data[i+1], B: p.data[i+2]}, nil
}

// SetPixel writes one opaque pixel.
func (p *Pixmap) SetPixel(x, y int, c RGB) error {
	if !p.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	p.put((y*p.width+x)*4, c)
	return nil
}

// IsEmpty reports whether (x, y) holds no pixel. Out-of-range coordinates
// are reported as empty.
func (p *Pixmap) IsEmpty(x, y int) bool {
	if !p.InBounds(x, y) {
		return true
	}
	return p.data[(y*p.width+x)*4+3] == 0
}

// SetBlock fills the axis-aligned rectangle spanned by (x, y) and
// (x+w, y+h). Negative w or h are accepted, so any two opposite corners
// describe the same block. The block is clipped silently to the pixmap.
func (p *Pixmap) SetBlock(x, y, w, h int, c RGB) {
	r := image.Rect(x, y, x+w, y+h).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := (py*p.width + r.Min.X) * 4
		for px := r.Min.X; px < r.Max.X; px++ {
			p.put(i, c)
			i += 4
		}
	}
}

// put writes c at byte offset i.
func (p *Pixmap) put(i int, c RGB) {
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// Clear resets every pixel to empty.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Fill sets every pixel to the opaque color c.
func (p *Pixmap) Fill(c RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.put(i, c)
	}
}

// Clone returns a deep copy of p.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// CopyFrom copies the region of src that overlaps p, anchored at the origin.
// Pixels of p outside src are left untouched.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	w := min(p.width, src.width)
	h := min(p.height, src.height)
	for y := 0; y < h; y++ {
		copy(p.data[y*p.width*4:(y*p.width+w)*4], src.data[y*src.width*4:(y*src.width+w)*4])
	}
}

// Snapshot returns a copy of the raw pixel data.
func (p *Pixmap) Snapshot() []uint8 {
	out := make([]uint8, len(p.data))
	copy(out, p.data)
	return out
}

// Restore replaces the pixel data with a snapshot taken from a pixmap of
// the same size.
func (p *Pixmap) Restore(snapshot []uint8) error {
	if len(snapshot) != len(p.data) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(snapshot), len(p.data))
	}
	copy(p.data, snapshot)
	return nil
}

// Region copies the pixels inside r (clipped to the pixmap) into a new
// slice, row by row. The returned rectangle is the clipped one.
func (p *Pixmap) Region(r image.Rectangle) (image.Rectangle, []uint8) {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return image.Rectangle{}, nil
	}
	rowBytes := r.Dx() * 4
	out := make([]uint8, rowBytes*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		src := (y*p.width + r.Min.X) * 4
		copy(out[(y-r.Min.Y)*rowBytes:], p.data[src:src+rowBytes])
	}
	return r, out
}

// SetRegion writes pixel data previously obtained from Region back into r.
func (p *Pixmap) SetRegion(r image.Rectangle, pix []uint8) error {
	if r.Empty() {
		return nil
	}
	if !r.In(p.Bounds()) {
		return fmt.Errorf("%w: region %v in %dx%d", ErrOutOfBounds, r, p.width, p.height)
	}
	rowBytes := r.Dx() * 4
	if len(pix) != rowBytes*r.Dy() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(pix), rowBytes*r.Dy())
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst := (y*p.width + r.Min.X) * 4
		copy(p.data[dst:dst+rowBytes], pix[(y-r.Min.Y)*rowBytes:])
	}
	return nil
}

// ToImage converts the pixmap to an image.NRGBA. Empty pixels stay
// transparent.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. Every pixel of the result is
// opaque; alpha in the source is dropped.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	copy(pm.data, nrgba.Pix)
	for i := 3; i < len(pm.data); i += 4 {
		pm.data[i] = 255
	}
	return pm, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.InBounds(x, y) {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
