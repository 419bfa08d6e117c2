// internal/state/menu_state.go
package state

import (
	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the title screen with difficulty selection.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		m.sm.SetState(NewGameState(m.sm, 0, "easy"))
	case inpututil.IsKeyJustPressed(ebiten.Key2), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.sm.SetState(NewGameState(m.sm, 0, "normal"))
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		m.sm.SetState(NewGameState(m.sm, 0, "hard"))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	cx := config.ScreenWidth / 2
	text.Draw(screen, "ARENA SURVIVAL", face, cx-56, config.ScreenHeight/2-40, config.HUDTextColor)
	text.Draw(screen, "1 easy   2 normal   3 hard", face, cx-92, config.ScreenHeight/2, config.HUDTextColor)
	text.Draw(screen, "space to start", face, cx-49, config.ScreenHeight/2+24, config.HUDTextColor)
}

func (m *MenuState) Exit() {}
