// internal/system/combat_test.go
package system

import (
	"math"
	"sort"
	"testing"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectileAngles(ecs *entity.ECS) []float64 {
	var angles []float64
	for id := range ecs.Projectiles {
		vel := ecs.Velocities[id]
		angles = append(angles, math.Atan2(vel.Y, vel.X)*180/math.Pi)
	}
	sort.Float64s(angles)
	return angles
}

func TestSpreadVolleyAngles(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.WeaponKey = "spread"

	cs.Update(1.0/60, true, utils.Vec2{X: 100, Y: 0})

	angles := projectileAngles(ecs)
	require.Len(t, angles, 3)
	assert.InDelta(t, -15.0, angles[0], 1e-6)
	assert.InDelta(t, 0.0, angles[1], 1e-6)
	assert.InDelta(t, 15.0, angles[2], 1e-6)

	for _, proj := range ecs.Projectiles {
		assert.Equal(t, 8, proj.Damage)
		assert.Equal(t, defs.ProjectileSpread, proj.Kind)
	}
}

func TestUnknownWeaponFiresNothing(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.WeaponKey = "definitely-not-a-weapon"

	cs.Update(1.0/60, true, utils.Vec2{X: 100, Y: 0})

	assert.Empty(t, ecs.Projectiles)
}

func TestFireIntervalGatesVolleys(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	aim := utils.Vec2{X: 100, Y: 0}

	cs.Update(1.0/60, true, aim)
	require.Len(t, ecs.Projectiles, 1)

	// Holding fire inside the cooldown adds nothing.
	ecs.GameTime += 0.1
	cs.Update(1.0/60, true, aim)
	assert.Len(t, ecs.Projectiles, 1)

	// Past the interval a second volley comes out.
	ecs.GameTime += config.PlayerFireRate
	cs.Update(1.0/60, true, aim)
	assert.Len(t, ecs.Projectiles, 2)
}

func TestVolleyDamageFormula(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.Damage = 7 // bonus contributes half, floored

	cs.Update(1.0/60, true, utils.Vec2{X: 100, Y: 0})

	require.Len(t, ecs.Projectiles, 1)
	for _, proj := range ecs.Projectiles {
		assert.Equal(t, 10+3, proj.Damage)
	}
}

func TestDamageMultScalesVolleys(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Session.DamageMult = 1.35

	cs.Update(1.0/60, true, utils.Vec2{X: 100, Y: 0})

	for _, proj := range ecs.Projectiles {
		assert.Equal(t, 13, proj.Damage) // int(10 * 1.35)
	}
}

func TestUltraChargesAndCooldown(t *testing.T) {
	ecs, dispatcher, _ := newTestWorld()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.UltraFired, recorder)
	cs := NewCombatSystem(ecs, dispatcher)
	aim := utils.Vec2{X: 100, Y: 0}

	// No charge banked yet.
	assert.False(t, cs.TryUltra(aim))

	ecs.Player.UltraCharges = 2
	assert.True(t, cs.TryUltra(aim))
	assert.Equal(t, 1, ecs.Player.UltraCharges)

	// Second cast is gated by the cooldown despite the banked charge.
	assert.False(t, cs.TryUltra(aim))

	ecs.GameTime += config.UltraCooldown
	assert.True(t, cs.TryUltra(aim))
	assert.Equal(t, 0, ecs.Player.UltraCharges)
	assert.Equal(t, 2, recorder.count(event.UltraFired))
}

func TestUltraBeamPierces(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.UltraCharges = 1

	// Three enemies along the beam, one far off axis.
	a := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 80, 0)
	b := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 200, 0)
	c := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 350, 2)
	d := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 200, 200)

	require.True(t, cs.TryUltra(utils.Vec2{X: 100, Y: 0}))

	assert.NotContains(t, ecs.Enemies, a)
	assert.NotContains(t, ecs.Enemies, b)
	assert.NotContains(t, ecs.Enemies, c)
	assert.Contains(t, ecs.Enemies, d)
}

func TestUltraNovaVariant(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.UltraCharges = 1
	ecs.Player.WeaponKey = "heavy"

	near := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 100, 100)
	far := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 350, 100)

	require.True(t, cs.TryUltra(utils.Vec2{X: 1, Y: 0}))

	assert.NotContains(t, ecs.Enemies, near)
	assert.Contains(t, ecs.Enemies, far)
}

func TestLaserReplacesProjectiles(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.LaserUntil = 100 // active well past the test window

	target := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 150, 0)
	hpBefore := ecs.Healths[target].Value

	cs.Update(1.0/60, true, utils.Vec2{X: 100, Y: 0})

	assert.Empty(t, ecs.Projectiles)
	assert.Less(t, ecs.Healths[target].Value, hpBefore)
}

func TestVortexDrainsNearbyEnemies(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	cs := NewCombatSystem(ecs, dispatcher)
	ecs.Player.VortexUntil = 100
	ecs.Player.VortexRadius = config.VortexRadius
	ecs.Player.VortexDPS = config.VortexDPS

	inside := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 40, 0)
	outside := SpawnEnemy(ecs, rng, defs.BehaviorChaser, 1, 300, 0)
	ecs.Healths[inside].Value = 1000 // keep it alive through the drain
	insideHP := ecs.Healths[inside].Value
	outsideHP := ecs.Healths[outside].Value

	// One full second of ticks accumulates well past one damage point.
	for i := 0; i < 60; i++ {
		cs.Update(1.0/60, false, utils.Vec2{})
	}

	assert.Less(t, ecs.Healths[inside].Value, insideHP)
	assert.Equal(t, outsideHP, ecs.Healths[outside].Value)
}
