package piece

import (
	"fmt"
	"image"
	"image/color"

	"jigsaw/src/base"
	"jigsaw/src/logic/grid"
	"jigsaw/src/raster"
)

// Style controls the derived surfaces of a piece.
type Style struct {
	HaloWidth int
	HaloColor color.NRGBA
}

func DefaultStyle() Style {
	return Style{HaloWidth: 1, HaloColor: color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}}
}

type Piece struct {
	ID       int
	Col, Row int // fixed lattice coordinates
	X, Y     int // screen position of the buffer's top-left corner
	W, H     int
	Selected bool

	shape     raster.Shape
	neighbors [4]*Piece

	surface   *image.NRGBA
	highlight *image.NRGBA
}

func (p *Piece) String() string {
	return fmt.Sprintf("piece#%d(%d,%d)", p.ID, p.Col, p.Row)
}

func (p *Piece) Shape() raster.Shape { return p.shape }

// Neighbor returns nil on the outer edge of the lattice.
func (p *Piece) Neighbor(d base.Direction) *Piece {
	return p.neighbors[d]
}

// Neighbors lists the existing neighbours in N/E/S/W order.
func (p *Piece) Neighbors() []*Piece {
	out := make([]*Piece, 0, 4)
	for _, n := range p.neighbors {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (p *Piece) Bounds() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)
}

// Inner is the screen rectangle of the original cell, excluding the margin
// that tabs may grow into.
func (p *Piece) Inner(margin int) image.Rectangle {
	return image.Rect(p.X+margin, p.Y+margin, p.X+p.W-margin, p.Y+p.H-margin)
}

// Hit reports whether the screen point lands on an opaque pixel.
func (p *Piece) Hit(x, y int) bool {
	if x < p.X || x >= p.X+p.W || y < p.Y || y >= p.Y+p.H {
		return false
	}
	return p.shape.Opaque(x-p.X, y-p.Y)
}

func (p *Piece) MoveBy(dx, dy int) {
	p.X += dx
	p.Y += dy
}

func (p *Piece) Position() image.Point { return image.Pt(p.X, p.Y) }

// Surface is the drawable image of the piece.
func (p *Piece) Surface() image.Image { return p.surface }

// Highlight is Surface with the border halo, used while selected.
func (p *Piece) Highlight() image.Image { return p.highlight }

// Assemble freezes the carved [col][row] buffers into pieces, indexed by ID,
// and links every piece to its lattice neighbours in both directions.
func Assemble(cfg grid.Config, cells [][]*raster.Buffer, st Style) ([]*Piece, error) {
	if len(cells) != cfg.Cols() {
		return nil, fmt.Errorf("got %d columns, grid has %d", len(cells), cfg.Cols())
	}
	pieces := make([]*Piece, cfg.Count())
	for col := 0; col < cfg.Cols(); col++ {
		if len(cells[col]) != cfg.Rows() {
			return nil, fmt.Errorf("column %d has %d rows, grid has %d", col, len(cells[col]), cfg.Rows())
		}
		for row := 0; row < cfg.Rows(); row++ {
			shape := cells[col][row].Freeze()
			w, h := shape.Size()
			pieces[cfg.ID(col, row)] = &Piece{
				ID:        cfg.ID(col, row),
				Col:       col,
				Row:       row,
				W:         w,
				H:         h,
				shape:     shape,
				surface:   raster.Render(shape),
				highlight: raster.Halo(shape, st.HaloWidth, st.HaloColor),
			}
		}
	}
	for _, p := range pieces {
		for _, d := range []base.Direction{base.East, base.South} {
			dc, dr := d.Offset()
			if !cfg.InGrid(p.Col+dc, p.Row+dr) {
				continue
			}
			n := pieces[cfg.ID(p.Col+dc, p.Row+dr)]
			p.neighbors[d] = n
			n.neighbors[d.Opposite()] = p
		}
	}
	return pieces, nil
}
