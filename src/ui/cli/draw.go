package cli

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"jigsaw/src"

	"golang.org/x/image/draw"
)

var tableColor = color.NRGBA{0x30, 0x30, 0x30, 0xff}

// Compose paints the sprites back to front onto one image covering all of
// them. Its origin is the top-left corner of the table.
func Compose(frame []src.Sprite) *image.NRGBA {
	var area image.Rectangle
	for _, s := range frame {
		area = area.Union(s.Image.Bounds().Add(image.Pt(s.X, s.Y)))
	}
	area = area.Union(image.Rect(0, 0, 1, 1))
	canvas := image.NewNRGBA(image.Rect(0, 0, area.Max.X, area.Max.Y))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(tableColor), image.Point{}, draw.Src)
	for _, s := range frame {
		b := s.Image.Bounds()
		dst := image.Rect(s.X, s.Y, s.X+b.Dx(), s.Y+b.Dy())
		draw.Draw(canvas, dst, s.Image, b.Min, draw.Over)
	}
	return canvas
}

// PrintTable draws the table with upper half blocks, two pixel rows per
// text line, scaled to width columns.
func PrintTable(out io.Writer, pb *src.PuzzleBuilder, width int) {
	PrintImage(out, Compose(pb.Frame()), width)
}

func PrintImage(out io.Writer, img image.Image, width int) {
	const reset = "\033[0m"
	b := img.Bounds()
	if width < 1 || b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	height := b.Dy() * width / b.Dx()
	if height < 2 {
		height = 2
	}
	height += height % 2
	small := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	fmt.Fprintln(out)
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top, bottom := small.NRGBAAt(x, y), small.NRGBAAt(x, y+1)
			fmt.Fprintf(out, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		fmt.Fprintln(out, reset)
	}
}
