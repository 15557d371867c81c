package gdraw

import (
	"errors"
	"fmt"
	"math"

	"jigsaw/src/ui/gui/gbase"
	"jigsaw/src/ui/gui/ghelper"
	"jigsaw/src/ui/gui/ghelper/gdialog"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIMenuDrawer struct {
	buttons []*ghelper.Button

	// index of buttons
	btnPlayIdx int
	btnOpenIdx int
	btnExitIdx int

	// language selector square bottom-left
	langBoxX, langBoxY, langBoxS int
	langBox                      *ghelper.Panel

	ptr ghelper.Pointer

	// logo above the buttons
	logoImg     *ebiten.Image
	logoElapsed float64
	shadowImg   *ebiten.Image
}

func NewGUIMenuDrawer(ctx *ghelper.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{}
	md.makeLayout(ctx)
	icons := ctx.AssetsWorker.Icons()
	md.logoImg = ebiten.NewImageFromImage(icons[len(icons)-1])
	return md
}

func (md *GUIMenuDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ctx.Theme = ctx.Theme.Toggle()
		ctx.Config.Theme = ctx.Theme.String()
		md.saveConfig(ctx)
		md.refreshButtons(ctx)
	}

	md.ptr.Poll()
	mx, my := md.ptr.X, md.ptr.Y
	dt := ghelper.TickSeconds()
	md.logoElapsed += dt

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, md.ptr.Pressed, md.ptr.Released)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		ctx.Logx.Infof("%s (%d) clicked", b.Label, i)
		switch i {
		case md.btnPlayIdx:
			return md.startPuzzle(ctx), nil
		case md.btnOpenIdx:
			path, err := gdialog.OpenImage(ctx.AssetsWorker.Lang().T("dialog.open"))
			if errors.Is(err, gdialog.ErrCancelled) {
				return SceneNotChanged, nil
			}
			if err != nil {
				ctx.Logx.Errorf("open dialog: %v", err)
				gdialog.ShowError(ctx.AssetsWorker.Lang().T("title"), err.Error())
				return SceneNotChanged, nil
			}
			ctx.ImagePath = path
			next := md.startPuzzle(ctx)
			if next == ScenePlay {
				ctx.Config.LastImage = path
				md.saveConfig(ctx)
			}
			return next, nil
		case md.btnExitIdx:
			return SceneNotChanged, gbase.ErrExit
		}
	}

	if md.ptr.Pressed && ghelper.PointInRect(mx, my, md.langBoxX, md.langBoxY, md.langBoxS, md.langBoxS) {
		lang := ctx.AssetsWorker.Lang()
		if err := lang.SetLang(lang.Next()); err != nil {
			ctx.Logx.Errorf("switch language: %v", err)
			return SceneNotChanged, nil
		}
		ctx.Config.Lang = lang.Lang()
		md.saveConfig(ctx)
		md.refreshButtons(ctx)
	}

	return SceneNotChanged, nil
}

// startPuzzle cuts the chosen picture; failures are reported and keep the
// menu open.
func (md *GUIMenuDrawer) startPuzzle(ctx *ghelper.GUIGameContext) SceneType {
	if err := ctx.NewPuzzle(); err != nil {
		ctx.Logx.Errorf("new puzzle from %q: %v", ctx.ImagePath, err)
		gdialog.ShowError(ctx.AssetsWorker.Lang().T("title"),
			fmt.Sprintf("%s: %v", ctx.AssetsWorker.Lang().T("error.puzzle"), err))
		ctx.ImagePath = ""
		return SceneNotChanged
	}
	return ScenePlay
}

func (md *GUIMenuDrawer) saveConfig(ctx *ghelper.GUIGameContext) {
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("save config: %v", err)
	}
}

func (md *GUIMenuDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := ctx.AssetsWorker.Lang().T("title")
	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Bold, title)
	text.Draw(screen, title, ctx.AssetsWorker.Fonts().Bold, (ctx.Config.WindowW-bounds.Dx())/2, md.buttons[0].Y-40, ctx.Theme.MenuText)

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}
	md.drawBoxes(ctx, screen)
	md.drawLogo(screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *ghelper.GUIGameContext) {
	btnW, btnH := 320, 64
	gap := 18
	n := 3
	totalH := n*btnH + (n-1)*gap
	startY := (ctx.Config.WindowH-totalH)/2 + 40
	x := ctx.Config.WindowW/2 - btnW/2
	lang := ctx.AssetsWorker.Lang()

	md.buttons = []*ghelper.Button{}
	md.btnPlayIdx, md.buttons = ghelper.AppendButton(ctx, lang.T("menu.play"), x, startY, btnW, btnH, md.buttons)
	md.btnOpenIdx, md.buttons = ghelper.AppendButton(ctx, lang.T("menu.open"), x, startY+btnH+gap, btnW, btnH, md.buttons)
	md.btnExitIdx, md.buttons = ghelper.AppendButton(ctx, lang.T("menu.exit"), x, startY+2*(btnH+gap), btnW, btnH, md.buttons)

	md.langBoxS = 56
	md.langBoxX = 20
	md.langBoxY = ctx.Config.WindowH - md.langBoxS - 20
	md.langBox = ghelper.NewPanel(md.langBoxS, md.langBoxS, 8, 2)
}

func (md *GUIMenuDrawer) refreshButtons(ctx *ghelper.GUIGameContext) {
	lang := ctx.AssetsWorker.Lang()
	labels := map[int]string{
		md.btnPlayIdx: lang.T("menu.play"),
		md.btnOpenIdx: lang.T("menu.open"),
		md.btnExitIdx: lang.T("menu.exit"),
	}
	for i, b := range md.buttons {
		b.Label = labels[i]
		b.Image.Deallocate()
		b.Image = ghelper.RenderRoundedRect(b.W, b.H, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	}
}

func (md *GUIMenuDrawer) drawBoxes(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.langBoxX), float64(md.langBoxY))
	screen.DrawImage(md.langBox.Image(ctx.Theme), op)
	text.Draw(screen, ctx.AssetsWorker.Lang().T("lang.type"), ctx.AssetsWorker.Fonts().Normal, md.langBoxX+16, md.langBoxY+md.langBoxS/2+6, ctx.Theme.ButtonText)

	hint := ctx.AssetsWorker.Lang().T("menu.hint")
	b := text.BoundString(ctx.AssetsWorker.Fonts().Small, hint)
	text.Draw(screen, hint, ctx.AssetsWorker.Fonts().Small, ctx.Config.WindowW-b.Dx()-20, ctx.Config.WindowH-24, ctx.Theme.MenuText)
}

func (md *GUIMenuDrawer) drawLogo(screen *ebiten.Image) {
	play := md.buttons[md.btnPlayIdx]
	centerX := float64(play.X + play.W/2)

	// bobbing
	const amp = 8.0
	dy := math.Sin(2*math.Pi*md.logoElapsed) * amp
	rot := math.Sin(2*math.Pi*0.8*md.logoElapsed) * (5 * math.Pi / 180.0)

	w, h := md.logoImg.Bounds().Dx(), md.logoImg.Bounds().Dy()
	finalY := float64(play.Y) - 150 + dy

	if md.shadowImg == nil {
		sw, sh := w*3/2, h/3
		dc := gg.NewContext(sw, sh)
		for i := 0; i < 8; i++ {
			dc.SetRGBA(0, 0, 0, 0.18*(1.0-float64(i)/8.0))
			pad := float64(i)
			dc.DrawEllipse(float64(sw)/2, float64(sh)/2, float64(sw)/2-pad, float64(sh)/2-pad*0.6)
			dc.Fill()
		}
		md.shadowImg = ebiten.NewImageFromImage(dc.Image())
	}

	// shadow shrinks while the logo rises
	s := 0.8 + (dy+amp)/(2*amp)*0.2
	sw, sh := float64(md.shadowImg.Bounds().Dx()), float64(md.shadowImg.Bounds().Dy())
	sop := &ebiten.DrawImageOptions{}
	sop.GeoM.Translate(-sw/2, -sh/2)
	sop.GeoM.Scale(s, s)
	sop.GeoM.Translate(centerX, float64(play.Y)-150+float64(h)/2+14)
	sop.Filter = ebiten.FilterLinear
	screen.DrawImage(md.shadowImg, sop)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2.0, -float64(h)/2.0)
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(centerX, finalY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(md.logoImg, op)
}
