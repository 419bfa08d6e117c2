// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// GameOverState shows the final score over the last frame of the run.
type GameOverState struct {
	sm   *StateMachine
	prev *GameState
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{sm: sm, prev: prev}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	face := basicfont.Face7x13
	session := s.prev.game.ECS.Session
	cx := config.ScreenWidth / 2
	text.Draw(screen, "GAME OVER", face, cx-31, config.ScreenHeight/2-20, config.HUDTextColor)
	text.Draw(screen, fmt.Sprintf("score %d, wave %d", session.Score, s.prev.game.ECS.Wave.Number), face, cx-70, config.ScreenHeight/2+4, config.HUDTextColor)
	text.Draw(screen, "space for menu", face, cx-49, config.ScreenHeight/2+28, config.HUDTextColor)
}

func (s *GameOverState) Exit() {}
