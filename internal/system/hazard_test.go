// internal/system/hazard_test.go
package system

import (
	"testing"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardTelegraphDoesNotHurt(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)

	SpawnCircleHazard(ecs, defs.HazardSlam, ecs.Player.X, ecs.Player.Y, 50, 20, 0.5, 0.2)
	hs.Update(1.0 / 60)

	assert.Equal(t, config.PlayerHP, ecs.Player.HP)
}

func TestHazardHitsOnceWhenArmed(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)

	id := SpawnCircleHazard(ecs, defs.HazardSlam, ecs.Player.X, ecs.Player.Y, 50, 20, 0.1, 1.0)
	ecs.Hazards[id].Age = 0.1 // telegraph elapsed

	hs.Update(1.0 / 60)
	assert.Equal(t, config.PlayerHP-20, ecs.Player.HP)

	// Still overlapping, but a one-shot hazard never hits twice.
	hs.Update(1.0 / 60)
	assert.Equal(t, config.PlayerHP-20, ecs.Player.HP)
}

func TestTrapConsumedOnTrigger(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)

	id := SpawnCircleHazard(ecs, defs.HazardTrap, ecs.Player.X, ecs.Player.Y, trapRadius, 12, 0.1, trapLifetime)
	ecs.Hazards[id].Age = 0.1

	hs.Update(1.0 / 60)

	assert.Equal(t, config.PlayerHP-12, ecs.Player.HP)
	assert.NotContains(t, ecs.Hazards, id)
}

func TestUntouchedTrapExpires(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	id := SpawnCircleHazard(ecs, defs.HazardTrap, 0, 0, trapRadius, 12, trapWarnTime, trapLifetime)
	for i := 0; i < int(trapLifetime)+2; i++ {
		hs.Update(1.0)
	}

	assert.NotContains(t, ecs.Hazards, id)
}

func TestLineHazardUsesSegmentDistance(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)

	// A thunder line crossing the player's position.
	id := SpawnLineHazard(ecs, defs.HazardThunder,
		utils.Vec2{X: -400, Y: 0}, utils.Vec2{X: 400, Y: 0},
		thunderHalfWidth, 25, 0.1, 0.5)
	ecs.Hazards[id].Age = 0.1

	hs.Update(1.0 / 60)
	assert.Equal(t, config.PlayerHP-25, ecs.Player.HP)
}

func TestLineHazardMissesOffAxisPlayer(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)
	ecs.Player.Y = 120

	id := SpawnLineHazard(ecs, defs.HazardBeam,
		utils.Vec2{X: -400, Y: 0}, utils.Vec2{X: 400, Y: 0},
		bossBeamHalfWidth, 25, 0.1, 0.5)
	ecs.Hazards[id].Age = 0.1

	hs.Update(1.0 / 60)
	require.Equal(t, config.PlayerHP, ecs.Player.HP)
}

func TestExpiredHazardRemoved(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	hs := NewHazardSystem(ecs, dispatcher)
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	id := SpawnCircleHazard(ecs, defs.HazardSlam, 0, 0, 50, 20, 0.1, 0.2)
	for i := 0; i < 60; i++ {
		hs.Update(1.0 / 60)
	}

	assert.NotContains(t, ecs.Hazards, id)
}
