package src

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"time"

	"jigsaw/src/base"
	"jigsaw/src/logic/carve"
	"jigsaw/src/logic/grid"
	"jigsaw/src/logic/piece"
	"jigsaw/src/logic/selection"
	"jigsaw/src/logic/snap"
	"jigsaw/src/logic/union"
	"jigsaw/src/logic/zorder"
	"jigsaw/src/logx"
)

// Options tune how a puzzle is cut and played.
type Options struct {
	Grid      grid.Spec
	Radius    int
	Tolerance int
	Style     piece.Style
	// Zone is where pieces are scattered. Empty means piece.DefaultZone for
	// a 1000x700 window.
	Zone image.Rectangle
	// Source feeds carving and scattering. Nil means a generator seeded with
	// Seed, or with the current time when Seed is zero.
	Source carve.Source
	Seed   int64
	Clock  func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Grid:      grid.DefaultSpec(),
		Radius:    carve.DefaultRadius,
		Tolerance: snap.DefaultTolerance,
		Style:     piece.DefaultStyle(),
	}
}

// Sprite is one entry of the paint list.
type Sprite struct {
	Image    image.Image
	X, Y     int
	ID       int
	Selected bool
}

// at first use CreateFromImage
type PuzzleBuilder struct {
	cfg      grid.Config
	pieces   []*piece.Piece
	forest   *union.Forest
	order    *zorder.Order
	sel      *selection.Manager
	resolver *snap.Resolver
	source   image.Image

	status      base.GameStatus
	connections int
	dragging    bool
	pointer     image.Point

	clock       func() time.Time
	start, stop time.Time
	onSolved    func()

	logger logx.Logger
}

var (
	ErrNotCreated     = errors.New("puzzle not created")
	ErrInvalidOptions = errors.New("invalid puzzle options")
)

func (o Options) validate() error {
	if o.Radius < 0 {
		return fmt.Errorf("%w: tab radius %d is negative", ErrInvalidOptions, o.Radius)
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: snap tolerance %d is negative", ErrInvalidOptions, o.Tolerance)
	}
	return nil
}

func NewPuzzleBuilder(logger logx.Logger) *PuzzleBuilder {
	return &PuzzleBuilder{status: base.InvalidGame, clock: time.Now, logger: logger}
}

// CreateFromImage partitions img, carves the tabs, scatters the pieces and
// starts the clock.
func (pb *PuzzleBuilder) CreateFromImage(img image.Image, opts Options) (base.GameStatus, error) {
	if err := opts.validate(); err != nil {
		pb.status = base.InvalidGame
		return pb.status, err
	}
	b := img.Bounds()
	pb.logger.Debugf("create puzzle from %dx%d image", b.Dx(), b.Dy())
	cfg, err := grid.NewConfig(b.Dx(), b.Dy(), opts.Grid)
	if err != nil {
		pb.status = base.InvalidGame
		return pb.status, err
	}
	if opts.Radius > cfg.Margin() {
		pb.logger.Warnf("tab radius %d exceeds margin %d, tabs will be clipped", opts.Radius, cfg.Margin())
	}
	cells, err := grid.Partition(img, cfg)
	if err != nil {
		pb.status = base.InvalidGame
		return pb.status, err
	}

	src := opts.Source
	if src == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		pb.logger.Debugf("random seed: %d", seed)
		src = rand.New(rand.NewSource(seed))
	}
	edges := carve.NewCarver(opts.Radius, cfg.Margin(), src).Carve(cells)
	moved := 0
	for _, e := range edges {
		moved += e.Moved
	}
	pb.logger.Debugf("carved %d edges, %d pixels moved", len(edges), moved)

	pieces, err := piece.Assemble(cfg, cells, opts.Style)
	if err != nil {
		pb.status = base.InvalidGame
		return pb.status, err
	}
	zone := opts.Zone
	if zone.Empty() {
		zone = piece.DefaultZone(1000, 700)
	}
	piece.Scatter(pieces, zone, src)

	pb.cfg = cfg
	pb.pieces = pieces
	pb.source = img
	pb.forest = union.NewForest(len(pieces))
	pb.order = zorder.New(pieces)
	pb.sel = selection.NewManager(pieces, pb.forest, cfg.Margin())
	pb.resolver = snap.NewResolver(cfg, opts.Tolerance, pb.forest, pieces)
	pb.connections = 0
	pb.dragging = false
	if opts.Clock != nil {
		pb.clock = opts.Clock
	}
	pb.start = pb.clock()
	pb.stop = time.Time{}
	pb.status = base.Pass

	pb.logger.Infof("puzzle %dx%d: %d pieces, %d connections", cfg.Cols(), cfg.Rows(), cfg.Count(), cfg.TotalConnections())
	return pb.status, nil
}

func (pb *PuzzleBuilder) Status() base.GameStatus {
	return pb.status
}

func (pb *PuzzleBuilder) Config() grid.Config {
	return pb.cfg
}

// Source is the image the puzzle was cut from.
func (pb *PuzzleBuilder) Source() image.Image {
	return pb.source
}

// SetOnSolved registers a hook called once, on the release that completes
// the puzzle.
func (pb *PuzzleBuilder) SetOnSolved(fn func()) {
	pb.onSolved = fn
}

// Press grabs the group under the pointer. A press that misses every piece
// starts a rubber band. It reports whether a drag started.
func (pb *PuzzleBuilder) Press(x, y int) bool {
	if pb.status == base.InvalidGame {
		return false
	}
	pb.pointer = image.Pt(x, y)
	pb.sel.Clear()
	if hit := pb.sel.SelectAt(x, y, pb.order.FrontToBack()); hit != nil {
		pb.order.PromoteSelected()
		pb.dragging = true
		pb.logger.Debugf("grab %v", hit)
		return true
	}
	pb.sel.BeginBand(x, y)
	return false
}

// Move feeds a pointer position; the delta from the previous one drags the
// selection or stretches the rubber band.
func (pb *PuzzleBuilder) Move(x, y int) {
	if pb.status == base.InvalidGame {
		return
	}
	d := image.Pt(x, y).Sub(pb.pointer)
	pb.pointer = image.Pt(x, y)
	switch {
	case pb.dragging:
		if d != (image.Point{}) {
			pb.sel.Drag(d.X, d.Y)
		}
	case pb.sel.Banding():
		pb.sel.TrackBand(x, y)
	}
}

// Release ends the current gesture. Ending a rubber band first selects the
// groups under it. Either way the selected pieces snap to matching
// neighbours, then the selection is cleared and connections recounted.
func (pb *PuzzleBuilder) Release(x, y int) base.GameStatus {
	if pb.status == base.InvalidGame {
		return pb.status
	}
	pb.Move(x, y)
	if pb.sel.Banding() {
		if n := pb.sel.EndBand(x, y); n > 0 {
			pb.order.PromoteSelected()
			pb.logger.Debugf("band selected %d pieces", n)
		}
	}
	pb.dragging = false
	pb.finish(pb.resolver.Resolve(pb.sel.Selected()))
	return pb.status
}

func (pb *PuzzleBuilder) finish(res snap.Result) {
	pb.sel.Clear()
	if res.Merged > 0 {
		pb.logger.Infof("snapped %d, connections %d/%d", res.Merged, res.Connections, pb.cfg.TotalConnections())
	}
	pb.connections = res.Connections
	if pb.status == base.Solved || !pb.resolver.Solved() {
		return
	}
	pb.status = base.Solved
	pb.stop = pb.clock()
	pb.logger.Infof("puzzle solved in %v", pb.Elapsed().Round(time.Second))
	if pb.onSolved != nil {
		pb.onSolved()
	}
}

// Solve lays every piece at its lattice position with the top-left cell at
// origin and runs the snap pass over all of them.
func (pb *PuzzleBuilder) Solve(origin image.Point) base.GameStatus {
	if pb.status == base.InvalidGame {
		return pb.status
	}
	piece.Arrange(pb.pieces, pb.cfg, origin)
	pb.dragging = false
	pb.finish(pb.resolver.Resolve(pb.pieces))
	return pb.status
}

// Frame lists the pieces back to front; selected pieces use their halo
// surface.
func (pb *PuzzleBuilder) Frame() []Sprite {
	if pb.order == nil {
		return nil
	}
	out := make([]Sprite, 0, pb.order.Len())
	for _, p := range pb.order.BackToFront() {
		img := p.Surface()
		if p.Selected {
			img = p.Highlight()
		}
		out = append(out, Sprite{Image: img, X: p.X, Y: p.Y, ID: p.ID, Selected: p.Selected})
	}
	return out
}

// Band is the active rubber band, if any.
func (pb *PuzzleBuilder) Band() (image.Rectangle, bool) {
	if pb.sel == nil {
		return image.Rectangle{}, false
	}
	return pb.sel.Band()
}

func (pb *PuzzleBuilder) Dragging() bool {
	return pb.dragging
}

// Elapsed stops advancing once the puzzle is solved.
func (pb *PuzzleBuilder) Elapsed() time.Duration {
	if pb.status == base.InvalidGame {
		return 0
	}
	if pb.status == base.Solved {
		return pb.stop.Sub(pb.start)
	}
	return pb.clock().Sub(pb.start)
}

func (pb *PuzzleBuilder) Connections() (current, total int) {
	return pb.connections, pb.cfg.TotalConnections()
}

// Progress is the connected share of adjacent pairs, in percent.
func (pb *PuzzleBuilder) Progress() float64 {
	if pb.status == base.InvalidGame {
		return 0
	}
	cur, total := pb.Connections()
	if total == 0 {
		return 100
	}
	return float64(cur) * 100 / float64(total)
}

// Groups is the number of separate groups left on the table.
func (pb *PuzzleBuilder) Groups() int {
	if pb.forest == nil {
		return 0
	}
	return pb.forest.Groups()
}

// FormatElapsed renders d as m:ss.
func FormatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
