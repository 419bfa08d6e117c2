// internal/component/wave.go
package component

import "go-arena-survival/internal/defs"

// Wave is the singleton state of the spawn director.
type Wave struct {
	Number int
	Active bool

	// Remaining spawn budget for the current wave, grouped by kind.
	PendingSpawns []defs.BehaviorKind
	SpawnTimer    float64

	// Cooldown between wave clear and the next wave start.
	CooldownTimer float64

	// Powerup director state.
	PowerUpTimer    float64
	LastUltraWave   int
	KillsSinceUltra int

	BossWave bool
	LastBoss defs.BehaviorKind
}
