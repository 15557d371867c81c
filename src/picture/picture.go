// Package picture loads source images for a puzzle and renders the small
// preview shown next to the table.
package picture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const ThumbnailHeight = 200

// Load decodes a png, jpeg, gif, bmp or webp file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format and normalises the result to
// NRGBA anchored at the origin.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return ToNRGBA(src), format, nil
}

func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Procedural draws the built-in picture used when no image is given.
func Procedural(w, h int) *image.NRGBA {
	dc := gg.NewContext(w, h)
	grad := gg.NewLinearGradient(0, 0, float64(w), float64(h))
	grad.AddColorStop(0, color.RGBA{0x1e, 0x3c, 0x72, 0xff})
	grad.AddColorStop(0.5, color.RGBA{0x2a, 0xa1, 0xd1, 0xff})
	grad.AddColorStop(1, color.RGBA{0xf7, 0xc8, 0x73, 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	// sun
	r := math.Min(float64(w), float64(h)) / 6
	dc.SetRGBA255(0xff, 0xe0, 0x66, 0xee)
	dc.DrawCircle(float64(w)*0.75, float64(h)*0.3, r)
	dc.Fill()

	// hills
	for i, c := range []color.RGBA{
		{0x2e, 0x7d, 0x32, 0xff},
		{0x1b, 0x5e, 0x20, 0xff},
	} {
		base := float64(h) * (0.7 + 0.12*float64(i))
		dc.MoveTo(0, float64(h))
		for x := 0.0; x <= float64(w); x += 4 {
			dc.LineTo(x, base-math.Sin(x/float64(w)*math.Pi*float64(2+i))*float64(h)*0.08)
		}
		dc.LineTo(float64(w), float64(h))
		dc.ClosePath()
		dc.SetColor(c)
		dc.Fill()
	}

	// a checker strip so neighbouring pieces are easy to tell apart
	cell := float64(w) / 16
	for i := 0; i < 16; i++ {
		if i%2 == 0 {
			dc.SetRGBA255(0xff, 0xff, 0xff, 0x55)
		} else {
			dc.SetRGBA255(0x00, 0x00, 0x00, 0x33)
		}
		dc.DrawRectangle(float64(i)*cell, float64(h)*0.05, cell, float64(h)*0.04)
		dc.Fill()
	}
	return ToNRGBA(dc.Image())
}

// Thumbnail scales img to the given height, keeping the aspect ratio.
func Thumbnail(img image.Image, height int) *image.NRGBA {
	b := img.Bounds()
	if height <= 0 || b.Dy() == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	width := b.Dx() * height / b.Dy()
	if width < 1 {
		width = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Fit scales img down so it fits in maxW x maxH. Smaller images are
// returned unchanged.
func Fit(img image.Image, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return ToNRGBA(img)
	}
	s := math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w, h := int(float64(b.Dx())*s), int(float64(b.Dy())*s)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
