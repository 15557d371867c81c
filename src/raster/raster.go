// Package raster holds the pixel buffers pieces are cut from.
//
// A Buffer is writable only during puzzle setup. Freeze seals it and hands
// out a Shape, the read-only form every piece keeps for its lifetime.
package raster

import (
	"image"
	"image/color"

	"jigsaw/src/base"
)

type Buffer struct {
	w, h   int
	pix    []base.Pixel
	sealed bool
}

// NewBuffer returns a w x h buffer filled with base.Transparent.
func NewBuffer(w, h int) *Buffer {
	if w < 0 || h < 0 {
		panic("raster: negative buffer size")
	}
	return &Buffer{w: w, h: h, pix: make([]base.Pixel, w*h)}
}

func (b *Buffer) Size() (int, int) { return b.w, b.h }

func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// At returns base.Transparent for coordinates outside the buffer.
func (b *Buffer) At(x, y int) base.Pixel {
	if !b.In(x, y) {
		return base.Transparent
	}
	return b.pix[y*b.w+x]
}

func (b *Buffer) Set(x, y int, p base.Pixel) {
	if b.sealed {
		panic("raster: write to a frozen buffer")
	}
	b.pix[y*b.w+x] = p
}

// Count returns the number of opaque entries.
func (b *Buffer) Count() int {
	return countOpaque(b.pix)
}

// Blit copies the r block of img into the buffer with its top-left corner at
// (dx, dy). Pixels with zero alpha stay transparent.
func (b *Buffer) Blit(img image.Image, r image.Rectangle, dx, dy int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			tx, ty := dx+x-r.Min.X, dy+y-r.Min.Y
			if !b.In(tx, ty) {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			b.Set(tx, ty, base.PackPixel(c.R, c.G, c.B, c.A))
		}
	}
}

// Freeze seals the buffer and returns its read-only view.
func (b *Buffer) Freeze() Shape {
	b.sealed = true
	return Shape{w: b.w, h: b.h, pix: b.pix}
}

// Shape is the immutable pixel payload of a piece.
type Shape struct {
	w, h int
	pix  []base.Pixel
}

func (s Shape) Size() (int, int) { return s.w, s.h }

func (s Shape) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

func (s Shape) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

func (s Shape) At(x, y int) base.Pixel {
	if !s.In(x, y) {
		return base.Transparent
	}
	return s.pix[y*s.w+x]
}

func (s Shape) Opaque(x, y int) bool {
	return s.At(x, y).Opaque()
}

func (s Shape) Count() int {
	return countOpaque(s.pix)
}

func countOpaque(pix []base.Pixel) int {
	n := 0
	for _, p := range pix {
		if p.Opaque() {
			n++
		}
	}
	return n
}
