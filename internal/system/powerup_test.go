// internal/system/powerup_test.go
package system

import (
	"testing"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorHonorsCap(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)
	ecs.Wave.Active = true

	// Park the player far away so nothing gets collected.
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	for i := 0; i < 2000; i++ {
		ps.Update(1.0)
		require.LessOrEqual(t, len(ecs.PowerUps), config.PowerUpCap)
	}
}

func TestBossLootGuarantee(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	NewPowerUpSystem(ecs, rng, dispatcher)
	ecs.Wave.Number = config.BossWaveInterval
	ecs.Wave.LastUltraWave = config.BossWaveInterval // suppress the pity drop
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossDefeatPayload{
		Kind: defs.BossBrute, X: 50, Y: 50,
	}})

	require.GreaterOrEqual(t, len(ecs.PowerUps), 2)
	weapons := 0
	for _, pu := range ecs.PowerUps {
		if pu.Kind == defs.PowerUpWeapon {
			weapons++
			_, err := defs.WeaponByKey(pu.WeaponKey)
			assert.NoError(t, err)
		}
	}
	assert.GreaterOrEqual(t, weapons, 1)
}

func TestBossBonusDropNeverDuplicatesWeapon(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		ecs := entity.NewECS("normal")
		dispatcher := event.NewDispatcher()
		NewPowerUpSystem(ecs, utils.NewPRNGService(seed), dispatcher)
		ecs.Wave.Number = config.BossWaveInterval
		ecs.Wave.LastUltraWave = config.BossWaveInterval
		ecs.Player.X, ecs.Player.Y = 10000, 10000

		dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossDefeatPayload{
			Kind: defs.BossBrute, X: 0, Y: 0,
		}})

		weapons := 0
		for _, pu := range ecs.PowerUps {
			if pu.Kind == defs.PowerUpWeapon {
				weapons++
			}
		}
		require.Equal(t, 1, weapons, "seed %d", seed)
	}
}

func TestUltraPityOnWaveGap(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	NewPowerUpSystem(ecs, rng, dispatcher)
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	ecs.Wave.Number = config.UltraSpawnMinWave + config.UltraWaveGap
	ecs.Wave.LastUltraWave = config.UltraSpawnMinWave

	dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossDefeatPayload{
		Kind: defs.BossBrute, X: 0, Y: 0,
	}})

	ultras := 0
	for _, pu := range ecs.PowerUps {
		if pu.Kind == defs.PowerUpUltra {
			ultras++
		}
	}
	assert.Equal(t, 1, ultras)
	assert.Equal(t, ecs.Wave.Number, ecs.Wave.LastUltraWave)
	assert.Equal(t, 0, ecs.Wave.KillsSinceUltra)
}

func TestNoUltraBeforeMinimumWave(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	NewPowerUpSystem(ecs, rng, dispatcher)
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	ecs.Wave.Number = config.UltraSpawnMinWave - 1
	ecs.Wave.KillsSinceUltra = config.UltraKillPity * 2

	dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossDefeatPayload{
		Kind: defs.BossBrute, X: 0, Y: 0,
	}})

	for _, pu := range ecs.PowerUps {
		assert.NotEqual(t, defs.PowerUpUltra, pu.Kind)
	}
}

func TestPickupApplication(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.PowerUpCollected, recorder)
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	player := ecs.Player
	player.HP = 50

	id := SpawnPowerUp(ecs, defs.PowerUpHeal, "", player.X, player.Y)
	ps.Update(1.0 / 60)

	assert.NotContains(t, ecs.PowerUps, id)
	assert.Equal(t, 50+config.HealAmount, player.HP)
	assert.Equal(t, 1, recorder.count(event.PowerUpCollected))
}

func TestHealNeverOvershootsMax(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	player := ecs.Player
	player.HP = player.MaxHP - 5
	SpawnPowerUp(ecs, defs.PowerUpHeal, "", player.X, player.Y)
	ps.Update(1.0 / 60)

	assert.Equal(t, player.MaxHP, player.HP)
}

func TestWeaponPickupSwapsWeapon(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	SpawnPowerUp(ecs, defs.PowerUpWeapon, "plasma", ecs.Player.X, ecs.Player.Y)
	ps.Update(1.0 / 60)

	assert.Equal(t, "plasma", ecs.Player.WeaponKey)
}

func TestFireRatePickupFloors(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	ecs.Player.FireRate = config.FireRatePickupFloor + 0.01
	SpawnPowerUp(ecs, defs.PowerUpFireRate, "", ecs.Player.X, ecs.Player.Y)
	ps.Update(1.0 / 60)

	assert.InDelta(t, config.FireRatePickupFloor, ecs.Player.FireRate, 1e-9)
}

func TestMagnetPullsSpecialPickups(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	id := SpawnPowerUp(ecs, defs.PowerUpUltra, "", 150, 0)
	before := ecs.Positions[id].X
	ps.Update(1.0 / 60)

	require.Contains(t, ecs.PowerUps, id)
	assert.Less(t, ecs.Positions[id].X, before)
}

func TestNormalPickupsDoNotMagnet(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	id := SpawnPowerUp(ecs, defs.PowerUpHeal, "", 150, 0)
	ps.Update(1.0 / 60)

	require.Contains(t, ecs.PowerUps, id)
	assert.Equal(t, 150.0, ecs.Positions[id].X)
}

func TestUltraPickupCapsAtMaxCharges(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	ecs.Player.UltraCharges = ecs.Player.UltraMaxCharges
	SpawnPowerUp(ecs, defs.PowerUpUltra, "", ecs.Player.X, ecs.Player.Y)
	ps.Update(1.0 / 60)

	assert.Equal(t, ecs.Player.UltraMaxCharges, ecs.Player.UltraCharges)
}

func TestPickupsExpire(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)
	ecs.Player.X, ecs.Player.Y = 10000, 10000

	id := SpawnPowerUp(ecs, defs.PowerUpShield, "", 0, 0)
	for i := 0; i < int(config.PowerUpTTL)+2; i++ {
		ps.Update(1.0)
	}

	assert.NotContains(t, ecs.PowerUps, id)
}

func TestKillDropsRollLoot(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	NewPowerUpSystem(ecs, rng, dispatcher)
	ecs.Player.X, ecs.Player.Y = 10000, 10000
	ecs.Wave.Number = 3

	for i := 0; i < 500; i++ {
		dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillPayload{
			Kind: defs.BehaviorChaser, X: float64(i), Y: 0,
		}})
	}

	// At a 15% drop rate, 500 kills essentially always pay out, and kill
	// drops ignore the director cap.
	assert.Greater(t, len(ecs.PowerUps), config.PowerUpCap)
	assert.Equal(t, 500, ecs.Wave.KillsSinceUltra)
}

func TestDistantPickupStays(t *testing.T) {
	ecs, dispatcher, rng := newTestWorld()
	ps := NewPowerUpSystem(ecs, rng, dispatcher)

	id := SpawnPowerUp(ecs, defs.PowerUpHeal, "", 300, 300)
	ps.Update(1.0 / 60)

	assert.Contains(t, ecs.PowerUps, id)
}
