// internal/state/pause_state.go
package state

import (
	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed underneath.
type PauseState struct {
	sm   *StateMachine
	prev State
}

func NewPauseState(sm *StateMachine, prev State) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.prev)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	text.Draw(screen, "PAUSED", basicfont.Face7x13, config.ScreenWidth/2-21, config.ScreenHeight/2, config.HUDTextColor)
}

func (s *PauseState) Exit() {}
