// internal/event/types.go
package event

import (
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/types"
)

const (
	WaveStarted      EventType = "WaveStarted"
	WaveEnded        EventType = "WaveEnded"
	EnemyKilled      EventType = "EnemyKilled"
	BossPhaseChanged EventType = "BossPhaseChanged"
	BossDefeated     EventType = "BossDefeated"
	PlayerDamaged    EventType = "PlayerDamaged"
	PlayerDied       EventType = "PlayerDied"
	PowerUpCollected EventType = "PowerUpCollected"
	UltraFired       EventType = "UltraFired"
	RewardChosen     EventType = "RewardChosen"
)

// WavePayload accompanies WaveStarted/WaveEnded.
type WavePayload struct {
	Number   int
	BossWave bool
}

// KillPayload accompanies EnemyKilled.
type KillPayload struct {
	ID   types.EntityID
	Kind defs.BehaviorKind
	X, Y float64
}

// BossPhasePayload accompanies BossPhaseChanged.
type BossPhasePayload struct {
	ID    types.EntityID
	Kind  defs.BehaviorKind
	Phase int
}

// BossDefeatPayload accompanies BossDefeated.
type BossDefeatPayload struct {
	Kind defs.BehaviorKind
	X, Y float64
}
