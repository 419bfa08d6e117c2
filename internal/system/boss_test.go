// internal/system/boss_test.go
package system

import (
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossPhaseTransitions(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.BossPhaseChanged, recorder)
	bs := NewBossSystem(ecs, rng, dispatcher)

	bossID := SpawnEnemy(ecs, rng, defs.BossThunder, 5, 200, 0)
	boss := ecs.Bosses[bossID]
	health := ecs.Healths[bossID]
	require.Equal(t, 1, boss.Phase)

	// Above two thirds nothing changes.
	health.Value = health.Max*3/4 + 1
	bs.Update(1.0 / 60)
	assert.Equal(t, 1, boss.Phase)

	// Crossing two thirds promotes to phase two.
	health.Value = health.Max / 2
	bs.Update(1.0 / 60)
	assert.Equal(t, 2, boss.Phase)
	assert.Equal(t, 1, recorder.count(event.BossPhaseChanged))

	// Crossing one third promotes to phase three.
	health.Value = health.Max / 4
	bs.Update(1.0 / 60)
	assert.Equal(t, 3, boss.Phase)
	assert.Equal(t, 2, recorder.count(event.BossPhaseChanged))

	// Phases never go back, even if HP somehow recovers.
	health.Value = health.Max
	bs.Update(1.0 / 60)
	assert.Equal(t, 3, boss.Phase)
	assert.Equal(t, 2, recorder.count(event.BossPhaseChanged))
}

func TestBossSkipsStraightToPhaseThree(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	bs := NewBossSystem(ecs, rng, dispatcher)

	bossID := SpawnEnemy(ecs, rng, defs.BossLaser, 5, 200, 0)
	ecs.Healths[bossID].Value = 1
	bs.Update(1.0 / 60)

	assert.Equal(t, 3, ecs.Bosses[bossID].Phase)
}

func TestBossNeverRepeatsPattern(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	bs := NewBossSystem(ecs, rng, dispatcher)

	bossID := SpawnEnemy(ecs, rng, defs.BossTrapmaster, 5, 250, 0)
	boss := ecs.Bosses[bossID]
	enemy := ecs.Enemies[bossID]

	prev := ""
	for i := 0; i < 60; i++ {
		boss.PatternCooldown = 0
		enemy.State = component.AIActive
		bs.Update(1.0 / 60)
		require.NotEmpty(t, boss.LastPatternID)
		assert.NotEqual(t, prev, boss.LastPatternID, "iteration %d", i)
		prev = boss.LastPatternID
	}
}

func TestDyingBossDespawnsAndAnnounces(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.BossDefeated, recorder)
	bs := NewBossSystem(ecs, rng, dispatcher)

	bossID := SpawnEnemy(ecs, rng, defs.BossBrute, 5, 200, 0)
	boss := ecs.Bosses[bossID]
	boss.Dying = true
	boss.DyingTimer = config.BossDyingDuration

	steps := int(config.BossDyingDuration/(1.0/60)) + 2
	for i := 0; i < steps; i++ {
		bs.Update(1.0 / 60)
	}

	assert.NotContains(t, ecs.Bosses, bossID)
	assert.NotContains(t, ecs.Enemies, bossID)
	assert.Equal(t, 1, recorder.count(event.BossDefeated))
}

func TestPersonaCadenceAffectsCooldown(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	bs := NewBossSystem(ecs, rng, dispatcher)

	bossID := SpawnEnemy(ecs, rng, defs.BossThunder, 5, 250, 0)
	boss := ecs.Bosses[bossID]
	boss.Persona = defs.PersonaAggressive
	boss.PatternCooldown = 0
	bs.Update(1.0 / 60)

	// Aggressive personas act faster than the slowest table cooldown.
	maxCooldown := 0.0
	for _, entry := range defs.PatternsFor(defs.BossThunder, 1) {
		if entry.Cooldown > maxCooldown {
			maxCooldown = entry.Cooldown
		}
	}
	assert.Less(t, boss.PatternCooldown, maxCooldown)
	assert.Greater(t, boss.PatternCooldown, 0.0)
}
