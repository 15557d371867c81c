package ghelper

import (
	"image/color"

	"jigsaw/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
)

// Panel is a rounded rect rasterised once per palette.
type Panel struct {
	W, H, Radius int
	StrokeW      float64

	theme  string
	built  bool
	builds int
	img    *ebiten.Image
	render func(w, h, radius int, fill, stroke color.RGBA, strokeW float64) *ebiten.Image
}

func NewPanel(w, h, radius int, strokeW float64) *Panel {
	return &Panel{W: w, H: h, Radius: radius, StrokeW: strokeW, render: RenderRoundedRect}
}

// Image returns the panel in the colours of theme. The old image is freed
// when the palette changes.
func (p *Panel) Image(theme gbase.Palette) *ebiten.Image {
	if p.built && p.theme == theme.Name {
		return p.img
	}
	if p.img != nil {
		p.img.Deallocate()
	}
	p.img = p.render(p.W, p.H, p.Radius, theme.ButtonFill, theme.ButtonStroke, p.StrokeW)
	p.theme, p.built = theme.Name, true
	p.builds++
	return p.img
}
