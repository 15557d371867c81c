// Package selection implements click and rubber-band selection of piece
// groups, and dragging of the selection.
package selection

import (
	"image"

	"jigsaw/src/logic/piece"
	"jigsaw/src/logic/union"
)

type Manager struct {
	pieces []*piece.Piece
	forest *union.Forest
	margin int

	banding bool
	anchor  image.Point
	current image.Point
}

func NewManager(pieces []*piece.Piece, forest *union.Forest, margin int) *Manager {
	return &Manager{pieces: pieces, forest: forest, margin: margin}
}

// SelectAt selects the group of the first piece in order that has an opaque
// pixel under (x, y). It returns that piece, or nil when nothing was hit.
func (m *Manager) SelectAt(x, y int, order []*piece.Piece) *piece.Piece {
	for _, p := range order {
		if p.Hit(x, y) {
			m.selectGroup(p)
			return p
		}
	}
	return nil
}

func (m *Manager) selectGroup(p *piece.Piece) {
	root := m.forest.Find(p.ID)
	for _, q := range m.pieces {
		if m.forest.Find(q.ID) == root {
			q.Selected = true
		}
	}
}

func (m *Manager) BeginBand(x, y int) {
	m.banding = true
	m.anchor = image.Pt(x, y)
	m.current = m.anchor
}

func (m *Manager) TrackBand(x, y int) {
	if m.banding {
		m.current = image.Pt(x, y)
	}
}

// Band returns the normalised rubber-band rectangle while one is active.
func (m *Manager) Band() (image.Rectangle, bool) {
	if !m.banding {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: m.anchor, Max: m.current}.Canon(), true
}

func (m *Manager) Banding() bool { return m.banding }

// EndBand closes the rubber band at (x, y) and selects the group of every
// piece whose inner bounds overlap it. It returns the number of pieces
// selected.
func (m *Manager) EndBand(x, y int) int {
	if !m.banding {
		return 0
	}
	m.current = image.Pt(x, y)
	rect, _ := m.Band()
	m.banding = false
	for _, p := range m.pieces {
		if Overlaps(rect, p.Inner(m.margin)) {
			m.selectGroup(p)
		}
	}
	return len(m.Selected())
}

// Overlaps is an interval-overlap test on both axes. Empty rectangles never
// overlap anything.
func Overlaps(band, inner image.Rectangle) bool {
	return band.Overlaps(inner)
}

// Drag translates the selected pieces.
func (m *Manager) Drag(dx, dy int) {
	for _, p := range m.pieces {
		if p.Selected {
			p.MoveBy(dx, dy)
		}
	}
}

func (m *Manager) Selected() []*piece.Piece {
	var out []*piece.Piece
	for _, p := range m.pieces {
		if p.Selected {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) Any() bool {
	for _, p := range m.pieces {
		if p.Selected {
			return true
		}
	}
	return false
}

func (m *Manager) Clear() {
	for _, p := range m.pieces {
		p.Selected = false
	}
	m.banding = false
}
