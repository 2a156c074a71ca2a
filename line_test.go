package pxl

import (
	"image"
	"testing"
)

// painted returns the set of non-empty pixels of p.
func painted(p *Pixmap) map[image.Point]bool {
	out := make(map[image.Point]bool)
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if !p.IsEmpty(x, y) {
				out[image.Pt(x, y)] = true
			}
		}
	}
	return out
}

func samePoints(a, b map[image.Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for pt := range a {
		if !b[pt] {
			return false
		}
	}
	return true
}

// fourConnected reports whether every point of set can reach every other
// through up/down/left/right steps.
func fourConnected(set map[image.Point]bool) bool {
	if len(set) == 0 {
		return true
	}
	var start image.Point
	for pt := range set {
		start = pt
		break
	}
	seen := map[image.Point]bool{start: true}
	stack := []image.Point{start}
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range []image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := pt.Add(d)
			if set[n] && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen) == len(set)
}

var lineCases = []struct{ x0, y0, x1, y1 int }{
	{0, 0, 0, 0},
	{0, 0, 10, 0},
	{0, 0, 0, 10},
	{0, 0, 10, 10},
	{0, 0, 2, 1},
	{3, 17, 25, 4},
	{25, 4, 3, 17},
	{1, 1, 29, 8},
	{15, 0, 16, 29},
	{29, 29, 0, 13},
}

func TestLinePointsEndpoints(t *testing.T) {
	for _, c := range lineCases {
		pts := LinePoints(c.x0, c.y0, c.x1, c.y1)
		count := make(map[image.Point]int)
		for _, pt := range pts {
			count[pt]++
		}
		for _, end := range []image.Point{{c.x0, c.y0}, {c.x1, c.y1}} {
			if count[end] != 1 {
				t.Errorf("line %v: endpoint %v stamped %d times, want 1", c, end, count[end])
			}
		}
		// Consecutive stamp origins are 8-neighbors.
		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
				t.Errorf("line %v: step %v -> %v is not a unit step", c, pts[i-1], pts[i])
			}
		}
		want := max(abs(c.x1-c.x0), abs(c.y1-c.y0)) + 1
		if len(pts) != want {
			t.Errorf("line %v: %d stamps, want %d", c, len(pts), want)
		}
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	p := mustPixmap(t, 10, 10)
	DrawLine(p, 4, 4, 4, 4, 1, Black)
	got := painted(p)
	if len(got) != 1 || !got[image.Pt(4, 4)] {
		t.Errorf("single point line painted %v", got)
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	for _, c := range lineCases {
		for _, w := range []int{1, 2, 3} {
			a := mustPixmap(t, 32, 32)
			b := mustPixmap(t, 32, 32)
			DrawLine(a, c.x0, c.y0, c.x1, c.y1, w, Black)
			DrawLine(b, c.x1, c.y1, c.x0, c.y0, w, Black)
			if !samePoints(painted(a), painted(b)) {
				t.Errorf("line %v width %d: swapped endpoints paint different pixels", c, w)
			}
		}
	}
}

func TestDrawLineConnected(t *testing.T) {
	// Width-2 stamps overlap on diagonal steps, so the footprint is
	// four-connected.
	for _, c := range lineCases {
		p := mustPixmap(t, 32, 32)
		DrawLine(p, c.x0, c.y0, c.x1, c.y1, 2, Black)
		if !fourConnected(painted(p)) {
			t.Errorf("line %v width 2 is not four-connected", c)
		}
	}
}

func TestDrawLineAxisAligned(t *testing.T) {
	p := mustPixmap(t, 10, 10)
	DrawLine(p, 1, 5, 8, 5, 1, Red)
	got := painted(p)
	if len(got) != 8 {
		t.Fatalf("horizontal line painted %d pixels, want 8", len(got))
	}
	for x := 1; x <= 8; x++ {
		if !got[image.Pt(x, 5)] {
			t.Errorf("pixel (%d, 5) missing", x)
		}
	}
}

func TestDrawLineWidth(t *testing.T) {
	p := mustPixmap(t, 10, 10)
	DrawLine(p, 0, 0, 3, 0, 3, Red)
	// Four stamps of 3x3 along a row: a 6x3 block.
	if got := painted(p); len(got) != 18 {
		t.Errorf("width-3 line painted %d pixels, want 18", len(got))
	}
}

func TestDrawLineClipped(t *testing.T) {
	p := mustPixmap(t, 10, 10)
	DrawLine(p, -5, -5, 20, 20, 1, Red)
	got := painted(p)
	if len(got) != 10 {
		t.Errorf("clipped diagonal painted %d pixels, want 10", len(got))
	}
}

func TestPutPixel(t *testing.T) {
	p := mustPixmap(t, 10, 10)
	PutPixel(p, 2, 2, 0, Red)
	if got := painted(p); len(got) != 1 {
		t.Errorf("width 0 stamp painted %d pixels, want 1", len(got))
	}
	PutPixel(p, 5, 5, 4, Red)
	if got := painted(p); len(got) != 1+16 {
		t.Errorf("painted %d pixels, want 17", len(got))
	}
	PutPixel(p, 8, 8, 4, Red) // clipped to 2x2
	if got := painted(p); len(got) != 1+16+4 {
		t.Errorf("painted %d pixels, want 21", len(got))
	}
}
