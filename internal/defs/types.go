// internal/defs/types.go
package defs

// BehaviorKind selects an enemy's movement/attack rules.
type BehaviorKind string

const (
	BehaviorChaser   BehaviorKind = "chaser"
	BehaviorRanged   BehaviorKind = "ranged"
	BehaviorCharger  BehaviorKind = "charger"
	BehaviorSwarm    BehaviorKind = "swarm"
	BehaviorTank     BehaviorKind = "tank"
	BehaviorSpitter  BehaviorKind = "spitter"
	BehaviorFlyer    BehaviorKind = "flyer"
	BehaviorEngineer BehaviorKind = "engineer"

	BossThunder    BehaviorKind = "boss_thunder"
	BossLaser      BehaviorKind = "boss_laser"
	BossTrapmaster BehaviorKind = "boss_trapmaster"
	BossSwarmQueen BehaviorKind = "boss_swarmqueen"
	BossBrute      BehaviorKind = "boss_brute"
)

// IsBoss reports whether the behavior kind belongs to the boss roster.
func (b BehaviorKind) IsBoss() bool {
	switch b {
	case BossThunder, BossLaser, BossTrapmaster, BossSwarmQueen, BossBrute:
		return true
	}
	return false
}

// ProjectileKind selects projectile stats and visuals.
type ProjectileKind string

const (
	ProjectileBullet  ProjectileKind = "bullet"
	ProjectileSpread  ProjectileKind = "spread"
	ProjectileMissile ProjectileKind = "missile"
	ProjectilePlasma  ProjectileKind = "plasma"
)

// PowerUpKind is the pickup effect applied on collection.
type PowerUpKind string

const (
	PowerUpHeal     PowerUpKind = "heal"
	PowerUpDamage   PowerUpKind = "damage"
	PowerUpSpeed    PowerUpKind = "speed"
	PowerUpFireRate PowerUpKind = "firerate"
	PowerUpShield   PowerUpKind = "shield"
	PowerUpLaser    PowerUpKind = "laser"
	PowerUpVortex   PowerUpKind = "vortex"
	PowerUpWeapon   PowerUpKind = "weapon"
	PowerUpUltra    PowerUpKind = "ultra"
)

// IsSpecial reports whether the pickup is boss-tier: bigger pickup radius
// and magnet pull toward the player.
func (k PowerUpKind) IsSpecial() bool {
	return k == PowerUpWeapon || k == PowerUpUltra
}

// Persona is an immutable per-boss-instance modifier biasing spacing,
// cadence and pattern choice.
type Persona string

const (
	PersonaAggressive Persona = "aggressive"
	PersonaCautious   Persona = "cautious"
	PersonaTrickster  Persona = "trickster"
)

// HazardKind describes a transient area threat placed by bosses or engineers.
type HazardKind string

const (
	HazardTrap    HazardKind = "trap"    // armed circle, one hit then gone
	HazardSlam    HazardKind = "slam"    // telegraphed pulse around a boss
	HazardBeam    HazardKind = "beam"    // line segment, hits once after warn
	HazardThunder HazardKind = "thunder" // full-arena line strike
)

// LootEntry is one weighted entry in a drop/choice table.
type LootEntry struct {
	Key    string `json:"key"`
	Weight int    `json:"weight"`
}
