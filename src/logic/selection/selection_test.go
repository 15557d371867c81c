package selection

import (
	"image"
	"image/color"
	"testing"

	"jigsaw/src/logic/grid"
	"jigsaw/src/logic/piece"
	"jigsaw/src/logic/union"
)

const margin = 5

// lattice returns a 3x1 strip of 30x30 cells (40x40 buffers).
func lattice(t *testing.T) ([]*piece.Piece, *union.Forest, *Manager) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 90, 30))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	cfg, err := grid.NewConfig(90, 30, grid.Spec{Cols: 3, Rows: 1, Margin: margin})
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	cells, err := grid.Partition(img, cfg)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	pieces, err := piece.Assemble(cfg, cells, piece.Style{HaloColor: color.NRGBA{A: 255}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	f := union.NewForest(len(pieces))
	return pieces, f, NewManager(pieces, f, margin)
}

func TestOverlaps(t *testing.T) {
	inner := image.Rect(50, 50, 80, 80)
	tests := []struct {
		name string
		band image.Rectangle
		want bool
	}{
		{"Disjoint", image.Rect(0, 0, 5, 5), false},
		{"Containing", image.Rect(0, 0, 100, 100), true},
		{"Inside", image.Rect(60, 60, 61, 61), true},
		{"CornerTouch", image.Rect(0, 0, 50, 50), false},
		{"PartialX", image.Rect(70, 0, 200, 55), true},
		{"OnlyXOverlaps", image.Rect(60, 0, 70, 40), false},
		{"Empty", image.Rect(60, 60, 60, 60), false},
	}
	for _, tt := range tests {
		if got := Overlaps(tt.band, inner); got != tt.want {
			t.Errorf("%s: Overlaps(%v) = %v, want %v", tt.name, tt.band, got, tt.want)
		}
	}
}

func TestSelectAtSelectsWholeGroup(t *testing.T) {
	pieces, f, m := lattice(t)
	for i, p := range pieces {
		p.X, p.Y = i*100, 0
	}
	f.Union(0, 2)

	if hit := m.SelectAt(20, 20, pieces); hit != pieces[0] {
		t.Fatalf("hit = %v, want piece 0", hit)
	}
	if !pieces[0].Selected || !pieces[2].Selected || pieces[1].Selected {
		t.Errorf("selection = %v,%v,%v, want true,false,true", pieces[0].Selected, pieces[1].Selected, pieces[2].Selected)
	}
}

func TestSelectAtFirstInOrderWins(t *testing.T) {
	pieces, _, m := lattice(t)
	for _, p := range pieces {
		p.X, p.Y = 0, 0
	}
	order := []*piece.Piece{pieces[2], pieces[0], pieces[1]}
	if hit := m.SelectAt(20, 20, order); hit != pieces[2] {
		t.Fatalf("hit = %v, want piece 2", hit)
	}
	if pieces[0].Selected || pieces[1].Selected {
		t.Errorf("selection leaked past the first match")
	}
}

func TestSelectAtTransparentMisses(t *testing.T) {
	pieces, _, m := lattice(t)
	pieces[0].X, pieces[0].Y = 0, 0
	if hit := m.SelectAt(2, 2, pieces[:1]); hit != nil {
		t.Errorf("margin pixel selected %v", hit)
	}
	if m.Any() {
		t.Errorf("selection not empty")
	}
}

func TestBandSelectsOverlappingGroups(t *testing.T) {
	pieces, f, m := lattice(t)
	for i, p := range pieces {
		p.X, p.Y = i*100, 0
	}
	f.Union(1, 2)

	// Dragged up and to the left; the band is normalised.
	m.BeginBand(30, 30)
	m.TrackBand(-10, -10)
	if r, ok := m.Band(); !ok || r != image.Rect(-10, -10, 30, 30) {
		t.Fatalf("Band = %v, %v", r, ok)
	}
	if n := m.EndBand(-10, -10); n != 1 {
		t.Fatalf("EndBand selected %d, want 1", n)
	}
	if m.Banding() {
		t.Errorf("band still active")
	}
	m.Clear()

	// Band grazes only the margin of piece 1: no selection.
	m.BeginBand(100, 0)
	if n := m.EndBand(104, 40); n != 0 {
		t.Errorf("margin-only band selected %d", n)
	}

	m.BeginBand(130, 10)
	if n := m.EndBand(120, 20); n != 2 {
		t.Errorf("band over piece 1 selected %d, want its 2-piece group", n)
	}
}

func TestDragMovesOnlySelected(t *testing.T) {
	pieces, _, m := lattice(t)
	pieces[1].Selected = true
	m.Drag(7, -3)
	if pieces[1].X != 7 || pieces[1].Y != -3 {
		t.Errorf("selected piece at %v", pieces[1].Position())
	}
	if pieces[0].X != 0 || pieces[2].X != 0 {
		t.Errorf("unselected piece moved")
	}
	m.Clear()
	if m.Any() {
		t.Errorf("Clear left a selection")
	}
}
