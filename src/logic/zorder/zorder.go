// Package zorder keeps the front-to-back order used for hit-testing and
// painting.
package zorder

import "jigsaw/src/logic/piece"

type Order struct {
	items []*piece.Piece // front first
}

func New(pieces []*piece.Piece) *Order {
	return &Order{items: append([]*piece.Piece(nil), pieces...)}
}

func (o *Order) Len() int { return len(o.items) }

// FrontToBack is the hit-test order. The slice is a copy.
func (o *Order) FrontToBack() []*piece.Piece {
	return append([]*piece.Piece(nil), o.items...)
}

// BackToFront is the paint order.
func (o *Order) BackToFront() []*piece.Piece {
	out := make([]*piece.Piece, len(o.items))
	for i, p := range o.items {
		out[len(o.items)-1-i] = p
	}
	return out
}

// Promote moves every matching piece to the front, keeping the relative
// order within both the moved and the remaining pieces.
func (o *Order) Promote(match func(*piece.Piece) bool) {
	front := make([]*piece.Piece, 0, len(o.items))
	rest := make([]*piece.Piece, 0, len(o.items))
	for _, p := range o.items {
		if match(p) {
			front = append(front, p)
		} else {
			rest = append(rest, p)
		}
	}
	o.items = append(front, rest...)
}

func (o *Order) PromoteSelected() {
	o.Promote(func(p *piece.Piece) bool { return p.Selected })
}
