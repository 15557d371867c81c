package ghelper

import (
	"image/color"
	"math"

	"jigsaw/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ---- Button ----

type buttonState int

const (
	btnIdle buttonState = iota
	btnHover
	btnPressed
)

const buttonSpeed = 10.0

// Button eases its scale and vertical offset toward the values of its
// current state.
type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	state   buttonState
	bounce  bool // short overshoot after a click
	scale   float64
	offsetY float64
}

func NewButton(label string, x, y, w, h int, img *ebiten.Image) *Button {
	return &Button{Label: label, X: x, Y: y, W: w, H: h, Image: img, scale: 1}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

func (b *Button) Pressed() bool { return b.state == btnPressed }

// HandleInput reports a click: a release inside the button after a press
// that also started inside it.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	clicked := false
	switch {
	case justClicked && inside:
		b.state = btnPressed
	case justReleased && b.state == btnPressed:
		clicked = inside
		b.bounce = inside
		b.state = btnIdle
	}
	if b.state != btnPressed {
		b.state = btnIdle
		if inside {
			b.state = btnHover
		}
	}
	return clicked
}

func (b *Button) target() (scale, offsetY float64) {
	switch {
	case b.state == btnPressed:
		return 0.96, 3
	case b.bounce:
		return 1.03, 0
	case b.state == btnHover:
		return 1.02, 0
	}
	return 1, 0
}

// UpdateAnim advances the easing by dt seconds.
func (b *Button) UpdateAnim(dt float64) {
	ts, to := b.target()
	k := 1 - math.Exp(-buttonSpeed*dt)
	b.scale += (ts - b.scale) * k
	b.offsetY += (to - b.offsetY) * k
	if b.bounce && math.Abs(b.scale-1.03) < 0.005 {
		b.bounce = false
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X) + float64(b.W)/2
	cy := float64(b.Y) + float64(b.H)/2 + b.offsetY

	iw, ih := b.Image.Bounds().Dx(), b.Image.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Scale(b.scale, b.scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	lb := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-lb.Dx()/2, int(cy)+lb.Dy()/2, theme.ButtonText)
}

// ---- MessageBox ----

type imageRect struct{ X, Y, W, H int }

func (r imageRect) contains(x, y int) bool { return PointInRect(x, y, r.X, r.Y, r.W, r.H) }

type boxPhase int

const (
	boxClosed boxPhase = iota
	boxGrowing
	boxShown
	boxShrinking
)

const (
	okW, okH  = 120, 44
	boxPad    = 20
	boxGrowth = 6.0 // full size per second
)

// MessageBox is a modal with a single OK button. It grows from the centre
// of the window and shrinks back when dismissed.
type MessageBox struct {
	Label   string
	OnClose func()

	phase boxPhase
	size  float64 // 0..1
	frame imageRect
}

// ShowMessage opens the box with msg. onClose runs once the box has fully
// shrunk.
func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Label = msg
	mb.OnClose = onClose
	mb.phase = boxGrowing
	mb.size = 0
	mb.frame = imageRect{}
}

// Step advances the grow or shrink animation by dt seconds.
func (mb *MessageBox) Step(dt float64) {
	switch mb.phase {
	case boxGrowing:
		if mb.size = math.Min(1, mb.size+boxGrowth*dt); mb.size == 1 {
			mb.phase = boxShown
		}
	case boxShrinking:
		if mb.size = math.Max(0, mb.size-boxGrowth*dt); mb.size == 0 {
			mb.phase = boxClosed
			if mb.OnClose != nil {
				mb.OnClose()
			}
		}
	}
}

// Dismiss starts shrinking the box.
func (mb *MessageBox) Dismiss() {
	if mb.phase == boxGrowing || mb.phase == boxShown {
		mb.phase = boxShrinking
	}
}

func (mb *MessageBox) IsOverlayed() bool { return mb.phase != boxClosed }

// Update dismisses the box when the pointer is released over OK or when
// Enter is hit.
func (mb *MessageBox) Update(ctx *GUIGameContext, mx, my int, justReleased, enter bool) {
	if mb.phase != boxShown {
		return
	}
	mb.frame = mb.bounds(ctx)
	if enter || (justReleased && mb.okRect().contains(mx, my)) {
		mb.Dismiss()
	}
}

func (mb *MessageBox) okRect() imageRect {
	f := mb.frame
	return imageRect{X: f.X + (f.W-okW)/2, Y: f.Y + f.H - okH - boxPad, W: okW, H: okH}
}

// bounds is the box rectangle at the current animation size, centred in
// the window.
func (mb *MessageBox) bounds(ctx *GUIGameContext) imageRect {
	lb := text.BoundString(ctx.AssetsWorker.Fonts().Bold, mb.Label)
	w := max(lb.Dx(), 200) + 3*boxPad
	h := lb.Dy() + okH + 4*boxPad
	// ease out so the box settles gently
	k := 1 - (1-mb.size)*(1-mb.size)
	w = max(int(float64(w)*k), 6)
	h = max(int(float64(h)*k), 6)
	return imageRect{
		X: (ctx.Config.WindowW - w) / 2,
		Y: (ctx.Config.WindowH - h) / 2,
		W: w,
		H: h,
	}
}

func (mb *MessageBox) Draw(ctx *GUIGameContext, screen *ebiten.Image) {
	if !mb.IsOverlayed() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(ctx.Config.WindowW), float32(ctx.Config.WindowH), ctx.Theme.ModalBg, false)

	mb.frame = mb.bounds(ctx)
	f := mb.frame
	panel := RenderRoundedRect(f.W, f.H, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(f.X), float64(f.Y))
	screen.DrawImage(panel, op)
	if mb.phase != boxShown {
		return
	}

	bold := ctx.AssetsWorker.Fonts().Bold
	lb := text.BoundString(bold, mb.Label)
	text.Draw(screen, mb.Label, bold, f.X+(f.W-lb.Dx())/2, f.Y+boxPad+lb.Dy(), ctx.Theme.MenuText)

	ok := mb.okRect()
	btn := RenderRoundedRect(ok.W, ok.H, 12, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 3)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ok.X), float64(ok.Y))
	screen.DrawImage(btn, op)
	normal := ctx.AssetsWorker.Fonts().Normal
	label := ctx.AssetsWorker.Lang().T("button.ok")
	ob := text.BoundString(normal, label)
	text.Draw(screen, label, normal, ok.X+(ok.W-ob.Dx())/2, ok.Y+(ok.H+ob.Dy())/2, color.White)
}
