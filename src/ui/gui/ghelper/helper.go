package ghelper

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	return ebiten.NewImageFromImage(RoundedRect(w, h, radius, fill, stroke, strokeW))
}

// RoundedRect draws an anti-aliased rounded rectangle with gg.
func RoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return dc.Image()
}

// DashedRect draws the outline used for the rubber band.
func DashedRect(w, h int, c color.RGBA) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 0x22)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
	dc.SetLineWidth(1.5)
	dc.SetDash(6, 4)
	dc.DrawRectangle(1, 1, float64(w)-2, float64(h)-2)
	dc.Stroke()
	return dc.Image()
}

func AppendButton(ctx *GUIGameContext, label string, x, y, w, h int, buttons []*Button) (int, []*Button) {
	img := RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	return len(buttons), append(buttons, NewButton(label, x, y, w, h, img))
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// Outline splits the border of r into four strips of the given thickness:
// top, bottom, left, right. Thickness is clamped to half the short side.
func Outline(r image.Rectangle, thickness int) []image.Rectangle {
	r = r.Canon()
	if r.Empty() || thickness <= 0 {
		return nil
	}
	t := min(thickness, r.Dx()/2, r.Dy()/2)
	if t == 0 {
		return []image.Rectangle{r}
	}
	return []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t),
		image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+t, r.Min.X+t, r.Max.Y-t),
		image.Rect(r.Max.X-t, r.Min.Y+t, r.Max.X, r.Max.Y-t),
	}
}

// StrokeRect draws the outline of r straight onto screen.
func StrokeRect(screen *ebiten.Image, r image.Rectangle, thickness int, c color.Color) {
	for _, s := range Outline(r, thickness) {
		vector.DrawFilledRect(screen, float32(s.Min.X), float32(s.Min.Y), float32(s.Dx()), float32(s.Dy()), c, false)
	}
}
