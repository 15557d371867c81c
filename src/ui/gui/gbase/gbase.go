package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 700

	// reference picture in the top-left corner
	ThumbX = 10
	ThumbY = 10
)

// ---- Styles (palettes) ----

// Palette is a named colour theme. Table is the felt the pieces lie on.
type Palette struct {
	Name         string
	Bg           color.RGBA
	Table        color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	Band         color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string { return p.Name }

// PaletteFromString falls back to the light palette for unknown names.
func PaletteFromString(name string) Palette {
	if name == DarkPalette.Name {
		return DarkPalette
	}
	return LightPalette
}

// Toggle returns the other palette.
func (p Palette) Toggle() Palette {
	if p.Name == DarkPalette.Name {
		return LightPalette
	}
	return DarkPalette
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

var LightPalette = Palette{
	Name:         "light",
	Bg:           rgb(0xf4f1ea),
	Table:        rgb(0x3f6b4f),
	ButtonFill:   rgb(0xfffdf8),
	ButtonStroke: rgb(0x8a7f6e),
	ButtonText:   rgb(0x2b2620),
	MenuText:     rgb(0x2b2620),
	Accent:       rgb(0xc9733a),
	Band:         rgb(0xf2d16b),
	ModalBg:      color.RGBA{0x10, 0x0c, 0x08, 0x80},
}

var DarkPalette = Palette{
	Name:         "dark",
	Bg:           rgb(0x17181b),
	Table:        rgb(0x1f3a2c),
	ButtonFill:   rgb(0x25272c),
	ButtonStroke: rgb(0xb8b2a6),
	ButtonText:   rgb(0xece7dd),
	MenuText:     rgb(0xece7dd),
	Accent:       rgb(0xd88a4e),
	Band:         rgb(0xe8e2d4),
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0xa0},
}
