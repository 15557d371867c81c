package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Bold   font.Face
	Mono   font.Face
}

func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	if fonts.Small, err = newFace(regular, 12); err != nil {
		return nil, err
	}
	if fonts.Normal, err = newFace(regular, 16); err != nil {
		return nil, err
	}
	// for titles
	if fonts.Bold, err = newFace(bold, 22); err != nil {
		return nil, err
	}
	// HUD digits keep their width while the timer runs
	if fonts.Mono, err = newFace(mono, 16); err != nil {
		return nil, err
	}
	return fonts, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
