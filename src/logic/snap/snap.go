// Package snap merges piece groups whose relative placement matches the
// lattice within a tolerance.
package snap

import (
	"image"

	"jigsaw/src/logic/grid"
	"jigsaw/src/logic/piece"
	"jigsaw/src/logic/union"
)

const DefaultTolerance int = 10

type Resolver struct {
	cfg       grid.Config
	tolerance int
	forest    *union.Forest
	pieces    []*piece.Piece
}

// NewResolver expects pieces indexed by ID and a forest of the same size.
func NewResolver(cfg grid.Config, tolerance int, forest *union.Forest, pieces []*piece.Piece) *Resolver {
	return &Resolver{cfg: cfg, tolerance: tolerance, forest: forest, pieces: pieces}
}

type Result struct {
	Merged      int // successful snaps in this pass
	Connections int // adjacent pairs sharing a group afterwards
}

// Offset is target minus actual displacement from c to n.
func (r *Resolver) Offset(c, n *piece.Piece) image.Point {
	target := r.cfg.Target(c.Col, c.Row, n.Col, n.Row)
	actual := n.Position().Sub(c.Position())
	return target.Sub(actual)
}

func (r *Resolver) within(e image.Point) bool {
	return abs(e.X) <= r.tolerance && abs(e.Y) <= r.tolerance
}

// Resolve checks every neighbour of every active piece. When the offset is
// within tolerance on both axes the neighbour's whole group is translated
// by it first and only then joined to the active piece's group, so the pair
// ends up exactly at its lattice displacement.
func (r *Resolver) Resolve(active []*piece.Piece) Result {
	var res Result
	for _, c := range active {
		for _, n := range c.Neighbors() {
			if r.forest.Same(c.ID, n.ID) {
				continue
			}
			e := r.Offset(c, n)
			if !r.within(e) {
				continue
			}
			r.translateGroup(n, e)
			r.forest.Union(c.ID, n.ID)
			res.Merged++
		}
	}
	res.Connections = r.Connections()
	return res
}

func (r *Resolver) translateGroup(member *piece.Piece, d image.Point) {
	root := r.forest.Find(member.ID)
	for _, p := range r.pieces {
		if r.forest.Find(p.ID) == root {
			p.MoveBy(d.X, d.Y)
		}
	}
}

// Connections counts adjacent pairs in the same group. Every link is seen
// from both ends, hence the halving.
func (r *Resolver) Connections() int {
	n := 0
	for _, p := range r.pieces {
		for _, q := range p.Neighbors() {
			if r.forest.Same(p.ID, q.ID) {
				n++
			}
		}
	}
	return n / 2
}

// Solved reports whether every adjacent pair is connected.
func (r *Resolver) Solved() bool {
	return r.Connections() == r.cfg.TotalConnections() && r.forest.Connected()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
