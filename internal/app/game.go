// internal/app/game.go
package app

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/utils"
)

// Input is one frame of player intent, in world space.
type Input struct {
	Move           utils.Vec2
	Aim            utils.Vec2
	FireHeld       bool
	UltraRequested bool
}

// Game wires the ECS and all systems together and steps the simulation.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem    *system.MovementSystem
	AISystem          *system.AISystem
	BossSystem        *system.BossSystem
	ProjectileSystem  *system.ProjectileSystem
	CombatSystem      *system.CombatSystem
	CollisionSystem   *system.CollisionSystem
	HazardSystem      *system.HazardSystem
	PowerUpSystem     *system.PowerUpSystem
	WaveSystem        *system.WaveSystem
	ProgressionSystem *system.ProgressionSystem
}

// NewGame builds a fresh run. Seed zero means time-based randomness.
func NewGame(seed int64, difficulty string) *Game {
	ecs := entity.NewECS(difficulty)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,

		MovementSystem:    system.NewMovementSystem(ecs),
		AISystem:          system.NewAISystem(ecs, rng),
		BossSystem:        system.NewBossSystem(ecs, rng, dispatcher),
		ProjectileSystem:  system.NewProjectileSystem(ecs),
		CombatSystem:      system.NewCombatSystem(ecs, dispatcher),
		CollisionSystem:   system.NewCollisionSystem(ecs, dispatcher),
		HazardSystem:      system.NewHazardSystem(ecs, dispatcher),
		PowerUpSystem:     system.NewPowerUpSystem(ecs, rng, dispatcher),
		WaveSystem:        system.NewWaveSystem(ecs, rng, dispatcher),
		ProgressionSystem: system.NewProgressionSystem(ecs, rng, dispatcher),
	}
	return g
}

// Update advances the simulation by deltaTime. The sim freezes during
// reward selection and after death; only an active wave phase ticks.
func (g *Game) Update(deltaTime float64, input Input) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.ECS.Session.Phase != component.PhaseWaveActive {
		return
	}
	g.ECS.GameTime += deltaTime

	// Pass 1: intent. Player actions and AI decide movement and attacks.
	if input.UltraRequested {
		g.CombatSystem.TryUltra(input.Aim)
	}
	g.CombatSystem.Update(deltaTime, input.FireHeld, input.Aim)
	g.AISystem.Update(deltaTime)
	g.BossSystem.Update(deltaTime)

	// Pass 2: motion.
	g.MovementSystem.Update(deltaTime, input.Move)
	g.ProjectileSystem.Update(deltaTime)

	// Pass 3: resolution. Hits, hazards and deaths land on settled positions.
	g.CollisionSystem.Update(deltaTime)
	g.HazardSystem.Update(deltaTime)

	// Pass 4: spawning and loot.
	g.WaveSystem.Update(deltaTime)
	g.PowerUpSystem.Update(deltaTime)

	// Pass 5: run-level timers.
	g.ProgressionSystem.Update(deltaTime)
}

// Phase returns the current session phase.
func (g *Game) Phase() component.SessionPhase {
	return g.ECS.Session.Phase
}

// BeginRewardSelection opens the boss reward menu and returns the temporary
// card options.
func (g *Game) BeginRewardSelection() []string {
	return g.ProgressionSystem.BeginRewardSelection()
}

// PendingTempRewards returns the temporary card keys on offer.
func (g *Game) PendingTempRewards() []string {
	return g.ECS.Session.PendingTempKeys
}

// PendingPermRewards returns the permanent boost keys on offer.
func (g *Game) PendingPermRewards() []string {
	return g.ECS.Session.PendingPermKeys
}

// ChooseTempReward picks a temporary card by key.
func (g *Game) ChooseTempReward(key string) bool {
	return g.ProgressionSystem.ChooseTemp(key)
}

// ChoosePermReward picks a permanent boost by key.
func (g *Game) ChoosePermReward(key string) bool {
	return g.ProgressionSystem.ChoosePerm(key)
}
