// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	weaponsPath := flag.String("weapons", "", "path to a weapon definitions override (JSON)")
	enemiesPath := flag.String("enemies", "", "path to an enemy profiles override (JSON)")
	flag.Parse()

	// Content overrides are all-or-nothing: a bad file aborts startup.
	if *weaponsPath != "" {
		if err := defs.LoadWeaponDefinitions(*weaponsPath); err != nil {
			log.Fatal(err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyProfiles(*enemiesPath); err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survival")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
