package carve

import (
	"math/rand"
	"testing"

	"jigsaw/src/base"
	"jigsaw/src/raster"
)

// scripted replays fixed draws and fails the test on misuse.
type scripted struct {
	t      *testing.T
	values []int
}

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	if len(s.values) == 0 {
		s.t.Fatalf("unexpected draw Intn(%d)", n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range for Intn(%d)", v, n)
	}
	return v
}

var (
	red  = base.PackPixel(255, 0, 0, 255)
	blue = base.PackPixel(0, 0, 255, 255)
)

// cell builds a buffer with a margin-wide transparent band around a w x h body.
func cell(w, h, margin int, p base.Pixel) *raster.Buffer {
	b := raster.NewBuffer(w+2*margin, h+2*margin)
	for y := margin; y < margin+h; y++ {
		for x := margin; x < margin+w; x++ {
			b.Set(x, y, p)
		}
	}
	return b
}

func TestTransferExactPixels(t *testing.T) {
	a := cell(10, 10, 4, red)
	b := cell(10, 10, 4, blue)

	moved := Transfer(2, a, 14, 9, b, 4, 9)
	if moved != 4 {
		t.Fatalf("moved = %d, want 4", moved)
	}
	for _, p := range [][2]int{{13, 8}, {13, 9}, {13, 10}, {12, 9}} {
		if a.At(p[0], p[1]).Opaque() {
			t.Errorf("donor pixel %v still opaque", p)
		}
	}
	for _, p := range [][2]int{{3, 8}, {3, 9}, {3, 10}, {2, 9}} {
		if got := b.At(p[0], p[1]); got != red {
			t.Errorf("recipient pixel %v = %#x, want red", p, uint32(got))
		}
	}
	if b.At(3, 7).Opaque() || b.At(1, 9).Opaque() {
		t.Errorf("pixel outside the disk was written")
	}
}

func TestTransferConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := cell(12, 9, 5, red)
		b := cell(12, 9, 5, blue)
		before := a.Count() + b.Count()
		r := 1 + rng.Intn(8)
		Transfer(r, a, rng.Intn(30)-4, rng.Intn(30)-4, b, rng.Intn(30)-4, rng.Intn(30)-4)
		if after := a.Count() + b.Count(); after != before {
			t.Fatalf("iteration %d: opaque count %d -> %d", i, before, after)
		}
	}
}

func TestTransferOutOfBoundsSkipped(t *testing.T) {
	a := cell(4, 4, 1, red)
	b := cell(4, 4, 1, blue)
	moved := Transfer(10, a, 0, 0, b, 100, 100)
	if moved != 0 {
		t.Errorf("moved = %d with recipient centre far outside", moved)
	}
	if a.Count() != 16 {
		t.Errorf("donor lost pixels on skipped transfer")
	}
}

func TestCarveEastPolarity(t *testing.T) {
	tests := []struct {
		name         string
		polarity     int
		firstDonates bool
		moved        int
	}{
		// The left disk is centred on the first margin column, the right one
		// on the first body column, so the right-hand tab is one column wider.
		{"LeftDonates", 0, true, 4},
		{"RightDonates", 1, false, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := [][]*raster.Buffer{{cell(10, 10, 4, red)}, {cell(10, 10, 4, blue)}}
			// polarity, radius 1+1=2, offset 2-2=0
			src := &scripted{t: t, values: []int{tt.polarity, 1, 2}}
			edges := NewCarver(2, 4, src).Carve(cells)
			if len(edges) != 1 {
				t.Fatalf("edges = %d, want 1", len(edges))
			}
			e := edges[0]
			if e.Dir != base.East || e.FirstDonates != tt.firstDonates || e.Radius != 2 || e.Offset != 0 || e.Moved != tt.moved {
				t.Fatalf("edge = %+v", e)
			}
			left, right := cells[0][0], cells[1][0]
			if tt.firstDonates {
				if right.At(3, 9) != red || left.At(13, 9).Opaque() {
					t.Errorf("tab did not move from left to right")
				}
			} else {
				if left.At(14, 9) != blue || right.At(4, 9).Opaque() {
					t.Errorf("tab did not move from right to left")
				}
			}
			if got := left.Count() + right.Count(); got != 200 {
				t.Errorf("pair holds %d opaque pixels, want 200", got)
			}
		})
	}
}

func TestCarveSouthUsesOffset(t *testing.T) {
	cells := [][]*raster.Buffer{{cell(10, 10, 4, red), cell(10, 10, 4, blue)}}
	// polarity upper donates, radius 1+0=1, offset 3-2=+1
	src := &scripted{t: t, values: []int{0, 0, 3}}
	edges := NewCarver(2, 4, src).Carve(cells)
	if len(edges) != 1 || edges[0].Dir != base.South || edges[0].Offset != 1 || edges[0].Radius != 1 {
		t.Fatalf("edges = %+v", edges)
	}
	lower := cells[0][1]
	// upper centre (10, 14): the disk row above the seam lands at y=3 around x=10.
	if lower.At(10, 3) != red {
		t.Errorf("tab pixel missing at (10,3)")
	}
	if lower.At(9, 3).Opaque() {
		t.Errorf("offset ignored: (9,3) is opaque")
	}
	if edges[0].Moved != 1 {
		t.Errorf("moved = %d, want 1", edges[0].Moved)
	}
}

func TestCarveVisitsEveryInteriorEdgeOnce(t *testing.T) {
	const cols, rows = 4, 3
	cells := make([][]*raster.Buffer, cols)
	before := 0
	for c := range cells {
		cells[c] = make([]*raster.Buffer, rows)
		for r := range cells[c] {
			cells[c][r] = cell(20, 16, 8, red)
			before += cells[c][r].Count()
		}
	}
	edges := NewCarver(6, 8, rand.New(rand.NewSource(1))).Carve(cells)
	if want := rows*(cols-1) + cols*(rows-1); len(edges) != want {
		t.Fatalf("edges = %d, want %d", len(edges), want)
	}
	seen := map[Edge]bool{}
	after := 0
	for _, e := range edges {
		key := Edge{Col: e.Col, Row: e.Row, Dir: e.Dir}
		if seen[key] {
			t.Errorf("edge %+v carved twice", key)
		}
		seen[key] = true
		if e.Radius < 3 || e.Radius > 6 || e.Offset < -6 || e.Offset > 6 {
			t.Errorf("edge %+v draws out of range", e)
		}
	}
	for c := range cells {
		for r := range cells[c] {
			after += cells[c][r].Count()
		}
	}
	if after != before {
		t.Errorf("lattice opaque count %d -> %d", before, after)
	}
}

func TestTransferHugeRadiusStaysInBuffers(t *testing.T) {
	a := raster.NewBuffer(10, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			a.Set(x, y, red)
		}
	}
	b := raster.NewBuffer(10, 8)
	if moved := Transfer(1_000_000, a, 5, 4, b, 5, 4); moved != 80 {
		t.Errorf("moved = %d, want every pixel (80)", moved)
	}
	if a.Count() != 0 || b.Count() != 80 {
		t.Errorf("counts after transfer: donor %d recipient %d", a.Count(), b.Count())
	}
	// centres far outside both buffers move nothing
	if moved := Transfer(3, b, -50, -50, a, 500, 500); moved != 0 {
		t.Errorf("moved = %d from outside the buffers", moved)
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		radius, dc, rc, dn, rn int
		lo, hi                 int
	}{
		{2, 5, 5, 10, 10, -2, 2},
		{100, 3, 6, 10, 10, -3, 3},
		{4, 1, 8, 12, 10, -1, 1},
	}
	for _, tt := range tests {
		lo, hi := span(tt.radius, tt.dc, tt.rc, tt.dn, tt.rn)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("span(%d, %d, %d, %d, %d) = %d,%d want %d,%d", tt.radius, tt.dc, tt.rc, tt.dn, tt.rn, lo, hi, tt.lo, tt.hi)
		}
	}
}
