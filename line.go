package pxl

import "image"

// PutPixel stamps the w×w block whose top-left corner is (x, y).
// It is the primitive every other drawing routine is built on.
// Widths below 1 are treated as 1; the block is clipped to p.
func PutPixel(p *Pixmap, x, y, w int, c RGB) {
	if w < 1 {
		w = 1
	}
	p.SetBlock(x, y, w, w, c)
}

// DrawLine draws a blocky line from (x0, y0) to (x1, y1) with Bresenham's
// integer algorithm, stamping a w×w block at every step. Both endpoints are
// stamped exactly once; a zero-length line stamps its single point.
//
// The width only changes the footprint of each stamp, never the path.
func DrawLine(p *Pixmap, x0, y0, x1, y1, w int, c RGB) {
	bresenham(x0, y0, x1, y1, func(x, y int) {
		PutPixel(p, x, y, w, c)
	})
}

// LinePoints returns the stamp origins DrawLine visits between the two
// endpoints.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	n := max(abs(x1-x0), abs(y1-y0)) + 1
	pts := make([]image.Point, 0, n)
	bresenham(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, image.Point{X: x, Y: y})
	})
	return pts
}

// bresenham calls plot for every point of the line. Endpoints are put in a
// canonical order first so the path does not depend on drawing direction:
// tie-breaking in the error term would otherwise pick different pixels for
// (a, b) and (b, a).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	if y1 < y0 || (y1 == y0 && x1 < x0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
