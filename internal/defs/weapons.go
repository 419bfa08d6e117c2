// internal/defs/weapons.go
package defs

import (
	"fmt"

	"go-arena-survival/internal/config"
)

// WeaponDefinition holds all the static data for one weapon archetype.
type WeaponDefinition struct {
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Damage          int            `json:"damage"`
	FireRate        float64        `json:"fire_rate"` // seconds between shots
	ProjectileCount int            `json:"projectile_count"`
	SpreadAngle     float64        `json:"spread_angle"` // total fan, degrees
	ProjectileSpeed float64        `json:"projectile_speed"`
	Projectile      ProjectileKind `json:"projectile_type"`
}

// WeaponLibrary is the library of all weapon definitions, keyed by weapon key.
var WeaponLibrary = map[string]WeaponDefinition{
	"basic": {
		Key: "basic", Name: "Basic Gun",
		Damage: 10, FireRate: 0.28, ProjectileCount: 1,
		SpreadAngle: 0, ProjectileSpeed: 360.0, Projectile: ProjectileBullet,
	},
	"rapid": {
		Key: "rapid", Name: "Rapid Fire",
		Damage: 6, FireRate: 0.12, ProjectileCount: 1,
		SpreadAngle: 5, ProjectileSpeed: 340.0, Projectile: ProjectileBullet,
	},
	"spread": {
		Key: "spread", Name: "Spread Shot",
		Damage: 8, FireRate: 0.35, ProjectileCount: 3,
		SpreadAngle: 30, ProjectileSpeed: 320.0, Projectile: ProjectileSpread,
	},
	"plasma": {
		Key: "plasma", Name: "Plasma Rifle",
		Damage: 12, FireRate: 0.25, ProjectileCount: 2,
		SpreadAngle: 20, ProjectileSpeed: 300.0, Projectile: ProjectilePlasma,
	},
	"heavy": {
		Key: "heavy", Name: "Heavy Cannon",
		Damage: 20, FireRate: 0.38, ProjectileCount: 1,
		SpreadAngle: 0, ProjectileSpeed: 280.0, Projectile: ProjectileMissile,
	},
}

// StarterWeaponKey is the only weapon available on waves 1-2.
const StarterWeaponKey = "basic"

// WeaponByKey looks up a weapon definition. Unknown keys are a content error,
// never silently substituted.
func WeaponByKey(key string) (WeaponDefinition, error) {
	def, ok := WeaponLibrary[key]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("unknown weapon key %q", key)
	}
	return def, nil
}

// WeaponPoolForWave returns the allowed weapon keys for a wave. Pools widen
// every two waves, retiring the oldest tier while keeping an easy option
// available through wave 6.
func WeaponPoolForWave(wave int) []string {
	switch {
	case wave <= 2:
		return []string{"basic"}
	case wave <= 4:
		return []string{"basic", "rapid", "spread"}
	case wave <= 6:
		return []string{"rapid", "spread", "plasma"}
	default:
		return []string{"spread", "plasma", "heavy"}
	}
}

// WeaponLootForWave returns the weighted drop table matching the wave pool.
// Heavy stays intentionally rare; it's a high-commitment weapon.
func WeaponLootForWave(wave int) []LootEntry {
	switch {
	case wave <= 2:
		return []LootEntry{{Key: "basic", Weight: 100}}
	case wave <= 4:
		return []LootEntry{{Key: "basic", Weight: 55}, {Key: "rapid", Weight: 25}, {Key: "spread", Weight: 20}}
	case wave <= 6:
		return []LootEntry{{Key: "rapid", Weight: 35}, {Key: "spread", Weight: 35}, {Key: "plasma", Weight: 30}}
	default:
		return []LootEntry{{Key: "spread", Weight: 45}, {Key: "plasma", Weight: 45}, {Key: "heavy", Weight: 10}}
	}
}

// EffectiveFireInterval computes the actual shot cooldown for a weapon held
// by a player with the given fire-rate stat. The stat acts as a global
// multiplier relative to the baseline; the result never drops below the
// minimum interval clamp.
func EffectiveFireInterval(weapon WeaponDefinition, playerFireRate float64) float64 {
	base := weapon.FireRate
	if base < config.MinFireInterval {
		base = config.MinFireInterval
	}
	baseline := config.PlayerFireRate
	if baseline < config.MinFireInterval {
		baseline = config.MinFireInterval
	}
	mult := playerFireRate / baseline
	if mult < config.FireRateMultMin {
		mult = config.FireRateMultMin
	} else if mult > config.FireRateMultMax {
		mult = config.FireRateMultMax
	}
	interval := base * mult
	if interval < config.MinFireInterval {
		interval = config.MinFireInterval
	}
	return interval
}
