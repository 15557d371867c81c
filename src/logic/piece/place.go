package piece

import (
	"image"

	"jigsaw/src/logic/grid"
)

type Source interface {
	Intn(n int) int
}

// DefaultZone is the placement area for a screen: a screenW/2 x screenH/2
// box whose corner sits at (100, 100).
func DefaultZone(screenW, screenH int) image.Rectangle {
	return image.Rect(100, 100, 100+screenW/2, 100+screenH/2)
}

// Scatter drops every piece at a random position inside zone.
func Scatter(pieces []*Piece, zone image.Rectangle, src Source) {
	for _, p := range pieces {
		p.X = zone.Min.X + intn(src, zone.Dx())
		p.Y = zone.Min.Y + intn(src, zone.Dy())
	}
}

func intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return src.Intn(n)
}

// Arrange moves every piece to its jigsaw-correct position with the top-left
// cell at origin.
func Arrange(pieces []*Piece, cfg grid.Config, origin image.Point) {
	for _, p := range pieces {
		t := cfg.Target(0, 0, p.Col, p.Row)
		p.X, p.Y = origin.X+t.X, origin.Y+t.Y
	}
}
