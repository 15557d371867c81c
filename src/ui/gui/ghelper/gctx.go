package ghelper

import (
	"fmt"
	"image"

	"jigsaw/src"
	"jigsaw/src/base"
	"jigsaw/src/logic/piece"
	"jigsaw/src/logx"
	"jigsaw/src/picture"
	"jigsaw/src/ui/gui/gbase"
	"jigsaw/src/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.PuzzleBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Options      src.Options
	Theme        gbase.Palette
	Logx         logx.Logger

	// picture of the next or current puzzle; empty path means the built-in one
	ImagePath string
	Thumbnail image.Image
}

func NewGUIGameContext(b *src.PuzzleBuilder, a *GUIAssetsWorker, c *gconf.Config, opts src.Options, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Options:      opts,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
		ImagePath:    c.LastImage,
	}
}

// NewPuzzle cuts the picture at ImagePath, or the built-in picture, into a
// fresh puzzle scattered over the play area.
func (ctx *GUIGameContext) NewPuzzle() error {
	var img image.Image
	if ctx.ImagePath == "" {
		img = picture.Procedural(ctx.Config.WindowW*3/5, ctx.Config.WindowH*3/5)
	} else {
		loaded, err := picture.Load(ctx.ImagePath)
		if err != nil {
			return err
		}
		img = picture.Fit(loaded, ctx.Config.WindowW*4/5, ctx.Config.WindowH*4/5)
	}
	opts := ctx.Options
	opts.Zone = piece.DefaultZone(ctx.Config.WindowW, ctx.Config.WindowH)
	ctx.AssetsWorker.Surfaces().Clear()
	if _, err := ctx.Builder.CreateFromImage(img, opts); err != nil {
		return err
	}
	if ctx.Builder.Status() != base.Pass {
		return fmt.Errorf("puzzle not ready: %v", ctx.Builder.Status())
	}
	ctx.Thumbnail = picture.Thumbnail(img, picture.ThumbnailHeight)
	return nil
}
