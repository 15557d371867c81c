package gui

import (
	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/src/ui/gui/gbase/gconf"
	"jigsaw/src/ui/gui/gdraw"
	"jigsaw/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

// NewGUI wires the builder, assets and config into the scene manager. An
// empty imagePath keeps the picture remembered in cfg.
func NewGUI(b *src.PuzzleBuilder, cfg *gconf.Config, opts src.Options, imagePath string, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(b, as, cfg, opts, logx)
	if imagePath != "" {
		ctx.ImagePath = imagePath
	}
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowIcon(gp.ctx.AssetsWorker.Icons())
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gp.ctx.AssetsWorker.Lang().T("title"))
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
