// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWeaponDefinitions reads a weapon configuration file and replaces the
// built-in WeaponLibrary with its contents.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	lib := make(map[string]WeaponDefinition, len(weaponDefs))
	for _, def := range weaponDefs {
		lib[def.Key] = def
	}
	if err := validateWeaponLibrary(lib); err != nil {
		return fmt.Errorf("invalid weapon definitions in %s: %w", path, err)
	}

	WeaponLibrary = lib
	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponLibrary))
	return nil
}

// LoadEnemyProfiles reads an enemy tuning file and replaces the built-in
// EnemyProfiles with its contents.
func LoadEnemyProfiles(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy profiles file: %w", err)
	}

	var profiles map[BehaviorKind]EnemyStatProfile
	if err := json.Unmarshal(file, &profiles); err != nil {
		return fmt.Errorf("failed to unmarshal enemy profiles: %w", err)
	}

	if err := validateEnemyProfiles(profiles); err != nil {
		return fmt.Errorf("invalid enemy profiles in %s: %w", path, err)
	}

	EnemyProfiles = profiles
	fmt.Printf("Loaded %d enemy profiles\n", len(EnemyProfiles))
	return nil
}

func validateWeaponLibrary(lib map[string]WeaponDefinition) error {
	if _, ok := lib[StarterWeaponKey]; !ok {
		return fmt.Errorf("missing starter weapon %q", StarterWeaponKey)
	}
	for key, def := range lib {
		if def.Key != key {
			return fmt.Errorf("weapon %q has mismatched key %q", key, def.Key)
		}
		if def.Damage <= 0 {
			return fmt.Errorf("weapon %q has non-positive damage", key)
		}
		if def.FireRate <= 0 {
			return fmt.Errorf("weapon %q has non-positive fire rate", key)
		}
		if def.ProjectileCount < 1 {
			return fmt.Errorf("weapon %q has no projectiles", key)
		}
		if def.ProjectileSpeed <= 0 {
			return fmt.Errorf("weapon %q has non-positive projectile speed", key)
		}
	}
	return nil
}

func validateEnemyProfiles(profiles map[BehaviorKind]EnemyStatProfile) error {
	for kind, p := range profiles {
		if kind.IsBoss() {
			if p.BossBaseHP <= 0 {
				return fmt.Errorf("boss %q has non-positive base HP", kind)
			}
			continue
		}
		if p.HPMult <= 0 {
			return fmt.Errorf("enemy %q has non-positive HP multiplier", kind)
		}
		if p.SpeedMult <= 0 {
			return fmt.Errorf("enemy %q has non-positive speed multiplier", kind)
		}
	}
	return nil
}
