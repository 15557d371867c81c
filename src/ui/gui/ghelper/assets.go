package ghelper

import (
	"image"

	"jigsaw/src/ui/gui/gbase/gconf"
	"jigsaw/src/ui/gui/ghelper/gfont"
	"jigsaw/src/ui/gui/ghelper/gimages"
	"jigsaw/src/ui/gui/ghelper/glang"
)

type GUIAssetsWorker struct {
	fonts    *gfont.Fonts
	icons    map[int]image.Image
	lang     *glang.GUILangWorker
	surfaces *gimages.SurfaceCache
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	l, err := glang.NewGUILangWorker("assets/lang", cfg.Lang)
	if err != nil {
		return nil, err
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{
		fonts:    f,
		icons:    gimages.Icons(),
		lang:     l,
		surfaces: gimages.NewSurfaceCache(),
	}, nil
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

func (aw *GUIAssetsWorker) Icons() []image.Image {
	out := make([]image.Image, 0, len(gimages.IconSizes))
	for _, s := range gimages.IconSizes {
		out = append(out, aw.icons[s])
	}
	return out
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Surfaces() *gimages.SurfaceCache {
	return aw.surfaces
}
