// Package carve cuts interlocking tabs between neighbouring cell buffers.
package carve

import (
	"jigsaw/src/base"
	"jigsaw/src/raster"
)

const DefaultRadius int = 14

// Source is the randomness the carver draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Edge records how one interior boundary was carved.
type Edge struct {
	Col, Row int            // the left or upper cell
	Dir      base.Direction // East or South
	// FirstDonates is true when the left/upper cell lost the disk and its
	// neighbour grew the tab.
	FirstDonates bool
	Radius       int
	Offset       int
	Moved        int
}

type Carver struct {
	radius int
	margin int
	src    Source
}

func NewCarver(radius, margin int, src Source) *Carver {
	return &Carver{radius: radius, margin: margin, src: src}
}

// Carve walks every interior boundary of the [col][row] lattice exactly once,
// column by column, and moves a random disk of pixels across it. For each
// boundary it draws, in order, the polarity, the radius in [R/2, R] and the
// offset along the edge in [-R, R].
func (c *Carver) Carve(cells [][]*raster.Buffer) []Edge {
	var edges []Edge
	cols := len(cells)
	for col := 0; col < cols; col++ {
		rows := len(cells[col])
		for row := 0; row < rows; row++ {
			a := cells[col][row]
			if col+1 < cols {
				edges = append(edges, c.carveEast(col, row, a, cells[col+1][row]))
			}
			if row+1 < rows {
				edges = append(edges, c.carveSouth(col, row, a, cells[col][row+1]))
			}
		}
	}
	return edges
}

func (c *Carver) draw() (firstDonates bool, radius, offset int) {
	firstDonates = c.src.Intn(2) == 0
	lo := c.radius / 2
	radius = lo + c.src.Intn(c.radius-lo+1)
	offset = c.src.Intn(2*c.radius+1) - c.radius
	return
}

func (c *Carver) carveEast(col, row int, a, b *raster.Buffer) Edge {
	e := Edge{Col: col, Row: row, Dir: base.East}
	e.FirstDonates, e.Radius, e.Offset = c.draw()
	aw, ah := a.Size()
	_, bh := b.Size()
	if e.FirstDonates {
		e.Moved = Transfer(e.Radius, a, aw-c.margin, ah/2+e.Offset, b, c.margin, bh/2+e.Offset)
	} else {
		e.Moved = Transfer(e.Radius, b, c.margin, bh/2+e.Offset, a, aw-c.margin, ah/2+e.Offset)
	}
	return e
}

func (c *Carver) carveSouth(col, row int, a, b *raster.Buffer) Edge {
	e := Edge{Col: col, Row: row, Dir: base.South}
	e.FirstDonates, e.Radius, e.Offset = c.draw()
	aw, ah := a.Size()
	bw, _ := b.Size()
	if e.FirstDonates {
		e.Moved = Transfer(e.Radius, a, aw/2+e.Offset, ah-c.margin, b, bw/2+e.Offset, c.margin)
	} else {
		e.Moved = Transfer(e.Radius, b, bw/2+e.Offset, c.margin, a, aw/2+e.Offset, ah-c.margin)
	}
	return e
}

// Transfer moves every opaque donor pixel within radius of (dcx, dcy) to the
// same offset around (rcx, rcy) in the recipient, clearing the donor pixel.
// Pairs that fall outside either buffer, or whose destination is already
// opaque, are left alone, so the opaque pixel count of the pair never
// changes. It returns the number of pixels moved.
func Transfer(radius int, donor *raster.Buffer, dcx, dcy int, recipient *raster.Buffer, rcx, rcy int) int {
	dw, dh := donor.Size()
	rw, rh := recipient.Size()
	i0, i1 := span(radius, dcx, rcx, dw, rw)
	j0, j1 := span(radius, dcy, rcy, dh, rh)
	moved := 0
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			if i*i+j*j > radius*radius {
				continue
			}
			sx, sy := dcx+i, dcy+j
			tx, ty := rcx+i, rcy+j
			if !donor.In(sx, sy) || !recipient.In(tx, ty) {
				continue
			}
			p := donor.At(sx, sy)
			if !p.Opaque() || recipient.At(tx, ty).Opaque() {
				continue
			}
			recipient.Set(tx, ty, p)
			donor.Set(sx, sy, base.Transparent)
			moved++
		}
	}
	return moved
}

// span narrows [-radius, radius] on one axis to the offsets that land inside
// both buffers. An empty span has lo > hi.
func span(radius, dc, rc, dn, rn int) (lo, hi int) {
	return max(-radius, -dc, -rc), min(radius, dn-1-dc, rn-1-rc)
}
