// internal/state/game_state.go
package state

import (
	"go-arena-survival/internal/app"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/ui"
	"go-arena-survival/internal/utils"
	"go-arena-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState runs the simulation and routes keyboard/mouse intent into it.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.ArenaRenderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, seed int64, difficulty string) *GameState {
	return &GameState{
		sm:       sm,
		game:     app.NewGame(seed, difficulty),
		renderer: render.NewArenaRenderer(),
		hud:      ui.NewHUD(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime, g.readInput())

	switch g.game.Phase() {
	case component.PhaseBossRewardPending:
		g.sm.SetState(NewRewardState(g.sm, g))
	case component.PhaseGameOver:
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) readInput() app.Input {
	var move utils.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += 1
	}

	mx, my := ebiten.CursorPosition()
	return app.Input{
		Move:           move,
		Aim:            g.renderer.Unproject(float64(mx), float64(my)),
		FireHeld:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		UltraRequested: inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)
	g.hud.Draw(screen, g.game.ECS)
}

func (g *GameState) Exit() {}
