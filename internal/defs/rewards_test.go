// internal/defs/rewards_test.go
package defs

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempCardDefaults(t *testing.T) {
	card, ok := TempCardByKey("surge")
	require.True(t, ok)
	assert.Equal(t, 1.35, card.DamageMult)
	// Unset multipliers default to neutral.
	assert.Equal(t, 1.0, card.SpeedMult)
	assert.Equal(t, 1.0, card.FireRateMult)
	assert.Equal(t, 1.0, card.IncomingMult)
	assert.Equal(t, 1.0, card.UltraCDMult)
	assert.Greater(t, card.Waves, 0)

	_, ok = TempCardByKey("nope")
	assert.False(t, ok)
}

func TestPermBoostDefaults(t *testing.T) {
	boost, ok := PermBoostByKey("sharpen")
	require.True(t, ok)
	assert.Equal(t, 3, boost.DamageBonus)
	assert.Equal(t, 1.0, boost.IncomingMult)

	plating, ok := PermBoostByKey("plating")
	require.True(t, ok)
	assert.Less(t, plating.IncomingMult, 1.0)
}

func TestRewardTablesCoverPools(t *testing.T) {
	tempTable := TempCardTable()
	assert.Len(t, tempTable, len(TempCardLibrary))
	for _, entry := range tempTable {
		_, ok := TempCardByKey(entry.Key)
		assert.True(t, ok)
		assert.Greater(t, entry.Weight, 0)
	}

	permTable := PermBoostTable()
	assert.Len(t, permTable, len(PermBoostLibrary))
	for _, entry := range permTable {
		_, ok := PermBoostByKey(entry.Key)
		assert.True(t, ok)
		assert.Greater(t, entry.Weight, 0)
	}
}

func TestRewardTablesOrderStable(t *testing.T) {
	// Tables come back key-sorted, so seeded rolls over them never depend
	// on map iteration order.
	keysOf := func(entries []LootEntry) []string {
		keys := make([]string, len(entries))
		for i, entry := range entries {
			keys[i] = entry.Key
		}
		return keys
	}

	tempKeys := keysOf(TempCardTable())
	assert.True(t, sort.StringsAreSorted(tempKeys))
	permKeys := keysOf(PermBoostTable())
	assert.True(t, sort.StringsAreSorted(permKeys))

	for i := 0; i < 10; i++ {
		assert.Equal(t, tempKeys, keysOf(TempCardTable()))
		assert.Equal(t, permKeys, keysOf(PermBoostTable()))
	}
}
