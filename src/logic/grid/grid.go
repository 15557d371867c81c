// Package grid partitions a raster image into the piece lattice.
package grid

import (
	"fmt"
	"image"

	"jigsaw/src/raster"
)

const (
	DefaultCellW  int = 90
	DefaultCellH  int = 60
	DefaultMargin int = 18
)

// Spec describes the wanted lattice. Positive Cols/Rows win over the target
// cell size.
type Spec struct {
	Cols, Rows   int
	CellW, CellH int
	Margin       int
}

func DefaultSpec() Spec {
	return Spec{CellW: DefaultCellW, CellH: DefaultCellH, Margin: DefaultMargin}
}

type DegenerateGridError struct {
	Width, Height int
	Cols, Rows    int
}

func (e *DegenerateGridError) Error() string {
	return fmt.Sprintf("degenerate grid: %dx%d image gives %d columns x %d rows", e.Width, e.Height, e.Cols, e.Rows)
}

// Config is the immutable lattice description shared by every component
// that needs grid geometry. Copy it freely.
type Config struct {
	width, height int
	cols, rows    int
	margin        int
	edgesX        []int
	edgesY        []int
}

// NewConfig derives the lattice for a width x height image.
func NewConfig(width, height int, s Spec) (Config, error) {
	cols, rows := s.Cols, s.Rows
	if cols <= 0 {
		if s.CellW <= 0 {
			return Config{}, fmt.Errorf("invalid cell width %d", s.CellW)
		}
		cols = width / s.CellW
	}
	if rows <= 0 {
		if s.CellH <= 0 {
			return Config{}, fmt.Errorf("invalid cell height %d", s.CellH)
		}
		rows = height / s.CellH
	}
	if cols < 1 || rows < 1 || cols > width || rows > height {
		return Config{}, &DegenerateGridError{Width: width, Height: height, Cols: cols, Rows: rows}
	}
	if s.Margin < 0 {
		return Config{}, fmt.Errorf("invalid margin %d", s.Margin)
	}
	return Config{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		margin: s.Margin,
		edgesX: Boundaries(width, cols),
		edgesY: Boundaries(height, rows),
	}, nil
}

// Boundaries splits [0, dimension] into count cells: boundary[i] =
// dimension*i/count. Remainder pixels are spread over the cells.
func Boundaries(dimension, count int) []int {
	b := make([]int, count+1)
	for i := 0; i <= count; i++ {
		b[i] = dimension * i / count
	}
	return b
}

func (c Config) Cols() int   { return c.cols }
func (c Config) Rows() int   { return c.rows }
func (c Config) Margin() int { return c.margin }
func (c Config) Width() int  { return c.width }
func (c Config) Height() int { return c.height }
func (c Config) Count() int  { return c.cols * c.rows }

func (c Config) EdgesX() []int { return append([]int(nil), c.edgesX...) }
func (c Config) EdgesY() []int { return append([]int(nil), c.edgesY...) }

// ID numbers pieces column by column.
func (c Config) ID(col, row int) int { return col*c.rows + row }

func (c Config) Coords(id int) (col, row int) { return id / c.rows, id % c.rows }

func (c Config) InGrid(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// Cell returns the source-image block of a cell.
func (c Config) Cell(col, row int) image.Rectangle {
	return image.Rect(c.edgesX[col], c.edgesY[row], c.edgesX[col+1], c.edgesY[row+1])
}

// PieceSize is the cell size plus the margin on every side.
func (c Config) PieceSize(col, row int) (int, int) {
	r := c.Cell(col, row)
	return r.Dx() + 2*c.margin, r.Dy() + 2*c.margin
}

// Target is the jigsaw-correct displacement from one cell's piece to
// another's.
func (c Config) Target(fromCol, fromRow, toCol, toRow int) image.Point {
	return image.Pt(c.edgesX[toCol]-c.edgesX[fromCol], c.edgesY[toRow]-c.edgesY[fromRow])
}

// TotalConnections counts grid-adjacent pairs: horizontal plus vertical links.
func (c Config) TotalConnections() int {
	return c.rows*(c.cols-1) + c.cols*(c.rows-1)
}

// Partition copies every cell of img into its own padded buffer. The result
// is indexed [col][row].
func Partition(img image.Image, c Config) ([][]*raster.Buffer, error) {
	b := img.Bounds()
	if b.Dx() != c.width || b.Dy() != c.height {
		return nil, fmt.Errorf("image is %dx%d, grid expects %dx%d", b.Dx(), b.Dy(), c.width, c.height)
	}
	cells := make([][]*raster.Buffer, c.cols)
	for col := 0; col < c.cols; col++ {
		cells[col] = make([]*raster.Buffer, c.rows)
		for row := 0; row < c.rows; row++ {
			w, h := c.PieceSize(col, row)
			buf := raster.NewBuffer(w, h)
			buf.Blit(img, c.Cell(col, row).Add(b.Min), c.margin, c.margin)
			cells[col][row] = buf
		}
	}
	return cells, nil
}
