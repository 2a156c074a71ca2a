package pxl

import "image"

// FloodFill fills the four-connected region around (x, y) with c.
//
// The region is determined by reference: every pixel reachable from the
// seed through neighbors (N, E, S, W) that have the seed's color in
// reference is written to target. Reference and target may be the same
// pixmap. Reading happens on a snapshot of reference and writing on a
// snapshot of target, which is copied back in one step, so no caller ever
// observes a partial fill.
//
// When the pixmaps differ in size, only their overlap is considered. The
// fill is a no-op when the seed lies outside that overlap or when the seed
// color already equals c. FloodFill returns the number of pixels written.
func FloodFill(target, reference *Pixmap, x, y int, c RGB) int {
	bounds := target.Bounds().Intersect(reference.Bounds())
	seed := image.Point{X: x, Y: y}
	if !seed.In(bounds) {
		return 0
	}

	refColor, _ := reference.Pixel(x, y)
	if refColor == c {
		return 0
	}

	ref := reference.Snapshot()
	out := target.Snapshot()
	rw, tw := reference.width, target.width
	visited := newBitset(bounds.Dx() * bounds.Dy())

	matches := func(px, py int) bool {
		i := (py*rw + px) * 4
		return ref[i] == refColor.R && ref[i+1] == refColor.G && ref[i+2] == refColor.B
	}

	filled := 0
	stack := make([]image.Point, 0, 256)
	stack = append(stack, seed)
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !pt.In(bounds) {
			continue
		}
		bit := pt.Y*bounds.Dx() + pt.X
		if visited.test(bit) || !matches(pt.X, pt.Y) {
			continue
		}
		visited.set(bit)

		i := (pt.Y*tw + pt.X) * 4
		out[i+0] = c.R
		out[i+1] = c.G
		out[i+2] = c.B
		out[i+3] = 255
		filled++

		stack = append(stack,
			image.Point{X: pt.X, Y: pt.Y - 1},
			image.Point{X: pt.X + 1, Y: pt.Y},
			image.Point{X: pt.X, Y: pt.Y + 1},
			image.Point{X: pt.X - 1, Y: pt.Y},
		)
	}

	copy(target.data, out)
	Logger().Debug("pxl: flood fill", "seed", seed, "pixels", filled)
	return filled
}

// bitset is a fixed-size set of small non-negative integers.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) test(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}
