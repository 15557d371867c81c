package gdraw

import (
	"jigsaw/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) (SceneType, error)
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneNotChanged
)

func (t SceneType) String() string {
	switch t {
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	default:
	}
	return "not changed"
}

func (t SceneType) ToScene(s Scene, ctx *ghelper.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

type SceneManager struct {
	ctx     *ghelper.GUIGameContext
	current Scene
}

func NewSceneManager(ctx *ghelper.GUIGameContext) *SceneManager {
	return &SceneManager{ctx: ctx, current: NewGUIMenuDrawer(ctx)}
}

func (m *SceneManager) Update() error {
	t, err := m.current.Update(m.ctx)
	if err != nil {
		return err
	}
	if t != SceneNotChanged {
		m.ctx.Logx.Debugf("scene -> %s", t)
	}
	m.current = t.ToScene(m.current, m.ctx)
	return nil
}

func (m *SceneManager) Draw(screen *ebiten.Image) {
	m.current.Draw(m.ctx, screen)
}
