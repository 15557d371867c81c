package snap

import (
	"image"
	"image/color"
	"testing"

	"jigsaw/src/logic/grid"
	"jigsaw/src/logic/piece"
	"jigsaw/src/logic/union"
)

func setup(t *testing.T, cols, rows int) (grid.Config, []*piece.Piece, *union.Forest, *Resolver) {
	t.Helper()
	w, h := cols*30, rows*20
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	cfg, err := grid.NewConfig(w, h, grid.Spec{Cols: cols, Rows: rows, Margin: 4})
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	cells, err := grid.Partition(img, cfg)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	pieces, err := piece.Assemble(cfg, cells, piece.Style{HaloWidth: 1, HaloColor: color.NRGBA{A: 255}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	// far apart, nothing in reach
	for _, p := range pieces {
		p.X, p.Y = p.ID*500, 0
	}
	f := union.NewForest(len(pieces))
	return cfg, pieces, f, NewResolver(cfg, DefaultTolerance, f, pieces)
}

func TestResolveWithinTolerance(t *testing.T) {
	cfg, pieces, f, r := setup(t, 2, 1)
	a, b := pieces[cfg.ID(0, 0)], pieces[cfg.ID(1, 0)]
	a.X, a.Y = 100, 100
	b.X, b.Y = 100+30+7, 100-10

	res := r.Resolve([]*piece.Piece{a})
	if res.Merged != 1 || res.Connections != 1 {
		t.Fatalf("result = %+v, want 1 merge, 1 connection", res)
	}
	if !f.Same(a.ID, b.ID) {
		t.Errorf("pair not merged")
	}
	if b.X != 130 || b.Y != 100 {
		t.Errorf("neighbour at %d,%d, want 130,100", b.X, b.Y)
	}
	if a.X != 100 || a.Y != 100 {
		t.Errorf("active piece moved to %d,%d", a.X, a.Y)
	}
	if e := r.Offset(a, b); e != (image.Point{}) {
		t.Errorf("offset after snap = %v, want zero", e)
	}
}

func TestResolveOutsideTolerance(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
	}{
		{"X", 11, 0},
		{"Y", 0, -11},
		{"Both", 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, pieces, f, r := setup(t, 2, 1)
			a, b := pieces[cfg.ID(0, 0)], pieces[cfg.ID(1, 0)]
			a.X, a.Y = 0, 0
			b.X, b.Y = 30+tt.dx, tt.dy
			res := r.Resolve([]*piece.Piece{a})
			if res.Merged != 0 || f.Same(a.ID, b.ID) {
				t.Errorf("merged with offset (%d,%d)", tt.dx, tt.dy)
			}
			if b.X != 30+tt.dx || b.Y != tt.dy {
				t.Errorf("neighbour moved without a merge")
			}
		})
	}
}

func TestResolveMovesWholeNeighbourGroup(t *testing.T) {
	cfg, pieces, f, r := setup(t, 3, 1)
	a, b, c := pieces[cfg.ID(0, 0)], pieces[cfg.ID(1, 0)], pieces[cfg.ID(2, 0)]
	// b and c already joined and correctly aligned
	b.X, b.Y = 40, 5
	c.X, c.Y = 70, 5
	f.Union(b.ID, c.ID)
	a.X, a.Y = 0, 0

	res := r.Resolve([]*piece.Piece{a})
	if res.Merged != 1 || res.Connections != 2 {
		t.Fatalf("result = %+v", res)
	}
	if b.X != 30 || b.Y != 0 || c.X != 60 || c.Y != 0 {
		t.Errorf("group not translated rigidly: b=%d,%d c=%d,%d", b.X, b.Y, c.X, c.Y)
	}
	if !f.Connected() || !r.Solved() {
		t.Errorf("3x1 strip should be solved")
	}
}

func TestResolveSkipsSameGroup(t *testing.T) {
	cfg, pieces, f, r := setup(t, 2, 1)
	a, b := pieces[cfg.ID(0, 0)], pieces[cfg.ID(1, 0)]
	f.Union(a.ID, b.ID)
	a.X, a.Y = 0, 0
	b.X, b.Y = 35, 3
	res := r.Resolve([]*piece.Piece{a, b})
	if res.Merged != 0 {
		t.Errorf("same-group pair snapped again")
	}
	if b.X != 35 {
		t.Errorf("same-group neighbour moved")
	}
}

func TestSolvedTwoByTwo(t *testing.T) {
	cfg, pieces, f, r := setup(t, 2, 2)
	if cfg.TotalConnections() != 4 {
		t.Fatalf("TotalConnections = %d, want 4", cfg.TotalConnections())
	}
	piece.Arrange(pieces, cfg, image.Pt(200, 150))
	res := r.Resolve(pieces)
	if res.Connections != 4 || res.Connections != cfg.TotalConnections() {
		t.Fatalf("connections = %d, want 4", res.Connections)
	}
	if !f.Connected() || !r.Solved() {
		t.Errorf("2x2 puzzle not solved")
	}
	if pieces[0].X != 200 || pieces[0].Y != 150 {
		t.Errorf("exact placement drifted: %v", pieces[0].Position())
	}
}

func TestConnectionsIgnoresNonAdjacentGroups(t *testing.T) {
	cfg, pieces, f, r := setup(t, 3, 1)
	f.Union(pieces[cfg.ID(0, 0)].ID, pieces[cfg.ID(2, 0)].ID)
	if got := r.Connections(); got != 0 {
		t.Errorf("Connections = %d, want 0 for non-adjacent group", got)
	}
}
