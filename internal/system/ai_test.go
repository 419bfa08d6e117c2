// internal/system/ai_test.go
package system

import (
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaserHeadsForPlayer(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	id := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 300, 0)
	ai.Update(1.0 / 60)

	vel := ecs.Velocities[id]
	assert.Less(t, vel.X, 0.0) // toward the origin
	assert.InDelta(t, ecs.Enemies[id].MoveSpeed, vel.Vec().Length(), 1e-6)
}

func TestRangedKeepsItsDistance(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	// Too far: closes in.
	farID := SpawnEnemy(ecs, rng, defs.BehaviorRanged, 1, 400, 0)
	// Too close: backs off.
	nearID := SpawnEnemy(ecs, rng, defs.BehaviorRanged, 1, 60, 0)

	ai.Update(1.0 / 60)

	assert.Less(t, ecs.Velocities[farID].X, 0.0)
	assert.Greater(t, ecs.Velocities[nearID].X, 0.0)
}

func TestRangedFiresInsideBand(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	SpawnEnemy(ecs, rng, defs.BehaviorRanged, 1, 200, 0)
	ai.Update(1.0 / 60)

	require.Len(t, ecs.Projectiles, 1)
	for _, proj := range ecs.Projectiles {
		assert.False(t, proj.FromPlayer())
	}
}

func TestChargerStateMachine(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	id := SpawnEnemy(ecs, rng, defs.BehaviorCharger, 1, chargerStandoff, 0)
	enemy := ecs.Enemies[id]

	// In the trigger band with no cooldown: straight into windup.
	ai.Update(1.0 / 60)
	require.Equal(t, component.AIWindup, enemy.State)
	assert.Equal(t, utils.Vec2{}, ecs.Velocities[id].Vec())

	// Windup elapses into the dash with a locked direction.
	enemy.StateTimer = 0
	ai.Update(1.0 / 60)
	require.Equal(t, component.AICharging, enemy.State)
	assert.Less(t, enemy.ChargeDirX, 0.0)

	// While dashing the velocity rides the locked direction at full burst.
	ai.Update(1.0 / 60)
	dashSpeed := ecs.Velocities[id].Vec().Length()
	assert.InDelta(t, enemy.MoveSpeed*chargerDashMult, dashSpeed, 1e-6)

	// Dash ends in cooldown, cooldown returns to repositioning.
	enemy.StateTimer = 0
	ai.Update(1.0 / 60)
	require.Equal(t, component.AICooldown, enemy.State)
	enemy.StateTimer = 0
	ai.Update(1.0 / 60)
	assert.Equal(t, component.AIRepositioning, enemy.State)
}

func TestSpitterFiresThreeWaySpread(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	SpawnEnemy(ecs, rng, defs.BehaviorSpitter, 1, 200, 0)
	ai.Update(1.0 / 60)

	assert.Len(t, ecs.Projectiles, 3)
}

func TestEngineerRespectsConstructionCap(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	// Saturate the arena with traps first.
	for i := 0; i < config.MaxActiveConstructions; i++ {
		SpawnCircleHazard(ecs, defs.HazardTrap, float64(i*30), 500, trapRadius, 10, trapWarnTime, trapLifetime)
	}
	SpawnEnemy(ecs, rng, defs.BehaviorEngineer, 5, engineerStandoff, 0)

	ai.Update(1.0 / 60)
	assert.Len(t, ecs.Hazards, config.MaxActiveConstructions)
}

func TestEngineerDropsTraps(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	SpawnEnemy(ecs, rng, defs.BehaviorEngineer, 5, engineerStandoff, 0)
	ai.Update(1.0 / 60)

	require.Len(t, ecs.Hazards, 1)
	for _, hazard := range ecs.Hazards {
		assert.Equal(t, defs.HazardTrap, hazard.Kind)
	}
}

func TestSwarmDesyncsBySeed(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	a := SpawnEnemy(ecs, rng, defs.BehaviorSwarm, 3, 300, 0)
	b := SpawnEnemy(ecs, rng, defs.BehaviorSwarm, 3, 300, 0)
	ai.Update(1.0 / 60)

	// Same spot, same kind, but different orbit phases steer differently.
	assert.NotEqual(t, ecs.Velocities[a].Vec(), ecs.Velocities[b].Vec())
}

func TestBossesIgnoredByTrashAI(t *testing.T) {
	ecs, _, rng := newTestWorld()
	ai := NewAISystem(ecs, rng)

	id := SpawnEnemy(ecs, rng, defs.BossBrute, 5, 300, 0)
	ai.Update(1.0 / 60)

	assert.Equal(t, utils.Vec2{}, ecs.Velocities[id].Vec())
	assert.Equal(t, 0.0, ecs.Enemies[id].Age)
}
