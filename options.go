package pxl

// SurfaceOption configures a Surface during creation.
// Use functional options to customize Surface behavior.
//
// Example:
//
//	s, err := pxl.NewSurface(640, 480,
//	    pxl.WithBackground(pxl.White),
//	    pxl.WithScale(2, 2))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	background RGB
	scale      Scale
}

// defaultSurfaceOptions returns the default surface options: a white
// background displayed at 100%.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		background: White,
		scale:      Scale{X: 1, Y: 1},
	}
}

// WithBackground sets the color the main layer is initialized with, and
// the color new area receives when the surface grows.
func WithBackground(c RGB) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// WithScale sets the initial display multiplier. Non-positive values are
// ignored.
func WithScale(x, y float64) SurfaceOption {
	return func(o *surfaceOptions) {
		if x > 0 && y > 0 {
			o.scale = Scale{X: x, Y: y}
		}
	}
}

// HistoryOption configures a History during creation.
type HistoryOption func(*History)

// DefaultHistorySize is the number of entries a History keeps unless
// configured otherwise.
const DefaultHistorySize = 3

// WithMaxSize bounds the number of entries kept by a History. Values below
// 1 are raised to 1.
//
// Every entry may hold pixel data, so the bound trades memory for undo
// depth. Pushing past the bound silently drops the oldest entry.
func WithMaxSize(n int) HistoryOption {
	return func(h *History) {
		h.maxSize = max(n, 1)
	}
}
