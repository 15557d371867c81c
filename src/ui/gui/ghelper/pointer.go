package ghelper

import "github.com/hajimehoshi/ebiten/v2"

// Pointer turns the polled left mouse button into press and release edges.
type Pointer struct {
	X, Y     int
	Down     bool
	Pressed  bool
	Released bool
}

// Poll reads the cursor for this tick.
func (p *Pointer) Poll() {
	p.X, p.Y = ebiten.CursorPosition()
	p.Track(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (p *Pointer) Track(down bool) {
	p.Pressed = down && !p.Down
	p.Released = !down && p.Down
	p.Down = down
}

// TickSeconds is the length of one Update call.
func TickSeconds() float64 { return 1 / float64(ebiten.TPS()) }
