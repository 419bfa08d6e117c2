// internal/component/enemy.go
package component

import "go-arena-survival/internal/defs"

// AIState labels where an enemy is inside its behavior state machine.
// Most behaviors only use AIIdle/AIActive; the charger and bosses run the
// full set.
type AIState int

const (
	AIIdle AIState = iota
	AIActive
	AIRepositioning
	AIWindup
	AICharging
	AICooldown
)

// Enemy is the behavior and combat state of a hostile entity.
type Enemy struct {
	Kind       defs.BehaviorKind
	MoveSpeed  float64
	AttackMult float64 // scales attack cadence from the stat profile

	// Generic behavior timers.
	AttackCooldown  float64
	ContactCooldown float64
	StateTimer      float64
	State           AIState
	Age             float64 // lifetime in seconds, drives oscillation phases
	Seed            float64 // per-instance phase offset so groups desync

	// Charger state.
	ChargeDirX float64
	ChargeDirY float64

	// Ranged strafing direction, +1 or -1.
	StrafeSign float64
}

// Boss is the extra state carried only by boss entities, alongside Enemy.
type Boss struct {
	Persona         defs.Persona
	Phase           int // 1..3, one-way
	PatternCooldown float64
	LastPatternID   string
	SpiralDeg       float64 // running angle for spiral bursts
	Dying           bool
	DyingTimer      float64
}
