package gdraw

import (
	"fmt"
	"image"

	"jigsaw/src"
	"jigsaw/src/base"
	"jigsaw/src/ui/gui/gbase"
	"jigsaw/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPlayDrawer implements Scene
type GUIPlayDrawer struct {
	thumb *ebiten.Image

	// HUD panel top-right
	hudX, hudY int
	hud        *ghelper.Panel

	// rubber band outline, rebuilt when its size changes
	bandImg  *ebiten.Image
	bandSize image.Point

	msg  *ghelper.MessageBox
	back bool

	ptr ghelper.Pointer
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{msg: &ghelper.MessageBox{}}
	if ctx.Thumbnail != nil {
		pd.thumb = ebiten.NewImageFromImage(ctx.Thumbnail)
	}
	pd.hud = ghelper.NewPanel(220, 64, 12, 2)
	pd.hudX = ctx.Config.WindowW - pd.hud.W - 16
	pd.hudY = 16
	return pd
}

func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	if pd.back {
		return SceneMenu, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ctx.Theme = ctx.Theme.Toggle()
		ctx.Config.Theme = ctx.Theme.String()
		if pd.bandImg != nil {
			pd.bandImg.Deallocate()
			pd.bandImg = nil
		}
	}

	pd.ptr.Poll()
	mx, my := pd.ptr.X, pd.ptr.Y

	if pd.msg.IsOverlayed() {
		enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
		pd.msg.Update(ctx, mx, my, pd.ptr.Released, enter)
		pd.msg.Step(ghelper.TickSeconds())
		return SceneNotChanged, nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}

	pb := ctx.Builder
	switch {
	case pd.ptr.Pressed:
		pb.Press(mx, my)
	case pd.ptr.Released:
		if pb.Release(mx, my) == base.Solved {
			cur, total := pb.Connections()
			ctx.Logx.Infof("solved in %s, %d/%d connections", src.FormatElapsed(pb.Elapsed()), cur, total)
			pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.solved"), func() { pd.back = true })
		}
	case pd.ptr.Down:
		pb.Move(mx, my)
	}
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Table)

	if pd.thumb != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(gbase.ThumbX, gbase.ThumbY)
		op.ColorScale.ScaleAlpha(0.85)
		screen.DrawImage(pd.thumb, op)
	}

	pd.drawPieces(ctx, screen)
	pd.drawBand(ctx, screen)
	pd.drawHUD(ctx, screen)

	hint := ctx.AssetsWorker.Lang().T("play.hint")
	text.Draw(screen, hint, ctx.AssetsWorker.Fonts().Small, 16, ctx.Config.WindowH-16, ctx.Theme.MenuText)

	if ctx.Config.Debug {
		pd.drawCells(ctx, screen)
		cur, total := ctx.Builder.Connections()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f groups: %d links: %d/%d",
			ebiten.ActualTPS(), ctx.Builder.Groups(), cur, total), 16, ctx.Config.WindowH-44)
	}

	pd.msg.Draw(ctx, screen)
}

func (pd *GUIPlayDrawer) drawPieces(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	cache := ctx.AssetsWorker.Surfaces()
	for _, s := range ctx.Builder.Frame() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(s.X), float64(s.Y))
		screen.DrawImage(cache.Get(s.Image), op)
	}
}

// drawCells outlines the cell body of every piece, the area a rubber band
// has to touch to pick the piece up.
func (pd *GUIPlayDrawer) drawCells(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	m := ctx.Builder.Config().Margin()
	for _, s := range ctx.Builder.Frame() {
		b := s.Image.Bounds()
		inner := image.Rect(s.X+m, s.Y+m, s.X+b.Dx()-m, s.Y+b.Dy()-m)
		ghelper.StrokeRect(screen, inner, 1, ctx.Theme.Band)
	}
}

func (pd *GUIPlayDrawer) drawBand(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	r, ok := ctx.Builder.Band()
	if !ok || r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	if pd.bandImg == nil || pd.bandSize != r.Size() {
		if pd.bandImg != nil {
			pd.bandImg.Deallocate()
		}
		pd.bandImg = ebiten.NewImageFromImage(ghelper.DashedRect(r.Dx(), r.Dy(), ctx.Theme.Band))
		pd.bandSize = r.Size()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(pd.bandImg, op)
}

func (pd *GUIPlayDrawer) drawHUD(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.hudX), float64(pd.hudY))
	screen.DrawImage(pd.hud.Image(ctx.Theme), op)

	lang := ctx.AssetsWorker.Lang()
	face := ctx.AssetsWorker.Fonts().Mono
	timer := fmt.Sprintf("%s: %s", lang.T("play.time"), src.FormatElapsed(ctx.Builder.Elapsed()))
	progress := fmt.Sprintf("%s: %.2f%%", lang.T("play.progress"), ctx.Builder.Progress())
	text.Draw(screen, timer, face, pd.hudX+14, pd.hudY+26, ctx.Theme.MenuText)
	text.Draw(screen, progress, face, pd.hudX+14, pd.hudY+50, ctx.Theme.MenuText)
}
