package raster

import (
	"image"
	"image/color"

	"jigsaw/src/base"
)

// Render projects a shape onto a drawable surface. Transparent entries stay
// fully transparent.
func Render(s Shape) *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			p := s.At(x, y)
			if !p.Opaque() {
				continue
			}
			r, g, b, a := p.RGBA()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

// Halo renders the shape and paints a border of the given half-width around
// its outline: every opaque pixel with a transparent 4-neighbour gets a
// (2*halfWidth+1)^2 square of c painted around it.
func Halo(s Shape, halfWidth int, c color.NRGBA) *image.NRGBA {
	img := Render(s)
	if halfWidth < 0 {
		return img
	}
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if !s.Opaque(x, y) || !onOutline(s, x, y) {
				continue
			}
			for dy := -halfWidth; dy <= halfWidth; dy++ {
				for dx := -halfWidth; dx <= halfWidth; dx++ {
					if !s.In(x+dx, y+dy) {
						continue
					}
					img.SetNRGBA(x+dx, y+dy, c)
				}
			}
		}
	}
	return img
}

func onOutline(s Shape, x, y int) bool {
	for _, d := range base.Directions {
		dx, dy := d.Offset()
		if !s.Opaque(x+dx, y+dy) {
			return true
		}
	}
	return false
}
