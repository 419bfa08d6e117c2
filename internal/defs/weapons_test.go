// internal/defs/weapons_test.go
package defs

import (
	"testing"

	"go-arena-survival/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeaponByKey(t *testing.T) {
	def, err := WeaponByKey("basic")
	require.NoError(t, err)
	assert.Equal(t, "basic", def.Key)
	assert.Equal(t, 10, def.Damage)

	_, err = WeaponByKey("bfg9000")
	assert.Error(t, err)
}

func TestWeaponPoolForWave(t *testing.T) {
	assert.Equal(t, []string{"basic"}, WeaponPoolForWave(1))
	assert.Equal(t, []string{"basic"}, WeaponPoolForWave(2))
	assert.Contains(t, WeaponPoolForWave(3), "rapid")
	assert.NotContains(t, WeaponPoolForWave(5), "basic")
	assert.Contains(t, WeaponPoolForWave(7), "heavy")
	assert.NotContains(t, WeaponPoolForWave(7), "rapid")
}

func TestWeaponLootMatchesPool(t *testing.T) {
	for _, wave := range []int{1, 3, 5, 8, 20} {
		pool := WeaponPoolForWave(wave)
		for _, entry := range WeaponLootForWave(wave) {
			assert.Contains(t, pool, entry.Key, "wave %d drops outside its pool", wave)
		}
	}
}

func TestEffectiveFireIntervalBaseline(t *testing.T) {
	basic, _ := WeaponByKey("basic")
	// At the baseline fire-rate stat the weapon fires at its own rate.
	assert.InDelta(t, basic.FireRate, EffectiveFireInterval(basic, config.PlayerFireRate), 1e-9)
}

func TestEffectiveFireIntervalClamps(t *testing.T) {
	basic, _ := WeaponByKey("basic")

	// Absurdly good stat hits the multiplier floor, not zero.
	fast := EffectiveFireInterval(basic, 0.0001)
	assert.InDelta(t, basic.FireRate*config.FireRateMultMin, fast, 1e-9)

	// Absurdly bad stat hits the multiplier ceiling.
	slow := EffectiveFireInterval(basic, 10)
	assert.InDelta(t, basic.FireRate*config.FireRateMultMax, slow, 1e-9)

	// The absolute interval floor always holds.
	rapid, _ := WeaponByKey("rapid")
	assert.GreaterOrEqual(t, EffectiveFireInterval(rapid, 0.0001), config.MinFireInterval)
}
