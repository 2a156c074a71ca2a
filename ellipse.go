package pxl

// DrawEllipse draws the ellipse inscribed in the rectangle spanned by
// (x0, y0) and (x1, y1) with the midpoint algorithm. Corners may be given
// in any order.
//
// With fill set, every step paints the two horizontal spans between the
// mirrored x coordinates; otherwise only the four mirrored boundary points
// are stamped with a w×w block. Filled spans are w rows tall and extend w-1
// pixels to the right so they cover the same footprint a border of the same
// width would.
//
// Degenerate boxes are handled: a zero-width or zero-height box draws a
// straight line, a zero-size box a single point.
func DrawEllipse(p *Pixmap, x0, y0, x1, y1, w int, c RGB, fill bool) {
	if w < 1 {
		w = 1
	}

	plot := func(xl, xr, y int) {
		if fill {
			p.SetBlock(xl, y, xr-xl+w, w, c)
			return
		}
		PutPixel(p, xl, y, w, c)
		PutPixel(p, xr, y, w, c)
	}

	// Error terms grow with the cube of the diameter; int64 keeps boxes up
	// to 65535 pixels wide exact on every platform.
	a := int64(abs(x1 - x0))
	b := int64(abs(y1 - y0))
	b1 := b & 1
	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	e := dx + dy + b1*a*a

	left, right := int64(min(x0, x1)), int64(max(x0, x1))
	yDown := int64(min(y0, y1)) + (b+1)>>1
	yUp := yDown - b1
	a8 := 8 * a * a
	b8 := 8 * b * b

	for {
		plot(int(left), int(right), int(yDown))
		if yUp != yDown {
			plot(int(left), int(right), int(yUp))
		}

		e2 := 2 * e
		if e2 <= dy {
			yDown++
			yUp--
			dy += a8
			e += dy
		}
		if e2 >= dx || 2*e > dy {
			left++
			right--
			dx += b8
			e += dx
		}
		if left > right {
			break
		}
	}

	// Very flat ellipses stop before the vertical extent is covered; finish
	// the tips.
	for yDown-yUp <= b {
		plot(int(left-1), int(right+1), int(yDown))
		plot(int(left-1), int(right+1), int(yUp))
		yDown++
		yUp--
	}
}
