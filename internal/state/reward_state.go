// internal/state/reward_state.go
package state

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RewardState overlays the two-stage boss reward picker on the frozen game.
type RewardState struct {
	sm   *StateMachine
	prev *GameState
	menu *ui.RewardMenu
}

func NewRewardState(sm *StateMachine, prev *GameState) *RewardState {
	return &RewardState{sm: sm, prev: prev, menu: ui.NewRewardMenu()}
}

func (s *RewardState) Enter() {
	s.prev.game.BeginRewardSelection()
}

func (s *RewardState) Update(deltaTime float64) {
	pick := -1
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		pick = 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		pick = 1
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		pick = 2
	}
	if pick < 0 {
		return
	}

	game := s.prev.game
	switch game.Phase() {
	case component.PhaseRewardTempChoice:
		keys := game.PendingTempRewards()
		if pick < len(keys) {
			game.ChooseTempReward(keys[pick])
		}
	case component.PhaseRewardPermChoice:
		keys := game.PendingPermRewards()
		if pick < len(keys) {
			game.ChoosePermReward(keys[pick])
		}
	}

	if game.Phase() == component.PhaseWaveActive {
		s.sm.SetState(s.prev)
	}
}

func (s *RewardState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	game := s.prev.game
	switch game.Phase() {
	case component.PhaseRewardTempChoice:
		s.menu.DrawTemp(screen, game.PendingTempRewards())
	case component.PhaseRewardPermChoice:
		s.menu.DrawPerm(screen, game.PendingPermRewards())
	}
}

func (s *RewardState) Exit() {}
