// internal/defs/enemies.go
package defs

// EnemyStatProfile is the base stat scaling profile for one behavior kind.
// Boss HP uses its own base+gain curve instead of the shared formula.
type EnemyStatProfile struct {
	HPOffset       float64 `json:"hp_offset"`
	HPMult         float64 `json:"hp_mult"`
	SpeedMult      float64 `json:"speed_mult"`
	AttackMult     float64 `json:"attack_mult"`
	BossBaseHP     float64 `json:"boss_base_hp"`
	BossWaveHPGain float64 `json:"boss_wave_hp_gain"`
}

// EnemyProfiles is the library of stat profiles, keyed by behavior kind.
var EnemyProfiles = map[BehaviorKind]EnemyStatProfile{
	BehaviorChaser:   {HPOffset: 0, HPMult: 1.0, SpeedMult: 1.32, AttackMult: 1.0},
	BehaviorRanged:   {HPOffset: -5, HPMult: 1.0, SpeedMult: 0.85, AttackMult: 1.2},
	BehaviorCharger:  {HPOffset: 10, HPMult: 1.0, SpeedMult: 1.05, AttackMult: 0.8},
	BehaviorSwarm:    {HPOffset: 0, HPMult: 0.5, SpeedMult: 1.45, AttackMult: 0.5},
	BehaviorTank:     {HPOffset: 0, HPMult: 2.0, SpeedMult: 0.55, AttackMult: 0.9},
	BehaviorSpitter:  {HPOffset: -3, HPMult: 1.0, SpeedMult: 0.9, AttackMult: 1.5},
	BehaviorFlyer:    {HPOffset: -7, HPMult: 1.0, SpeedMult: 1.55, AttackMult: 0.7},
	BehaviorEngineer: {HPOffset: 6, HPMult: 1.0, SpeedMult: 0.75, AttackMult: 1.1},

	BossThunder:    {SpeedMult: 0.9, AttackMult: 1.8, BossBaseHP: 150, BossWaveHPGain: 32},
	BossLaser:      {SpeedMult: 1.1, AttackMult: 1.8, BossBaseHP: 135, BossWaveHPGain: 28},
	BossTrapmaster: {SpeedMult: 0.85, AttackMult: 1.7, BossBaseHP: 170, BossWaveHPGain: 30},
	BossSwarmQueen: {SpeedMult: 0.95, AttackMult: 1.7, BossBaseHP: 155, BossWaveHPGain: 26},
	BossBrute:      {SpeedMult: 1.05, AttackMult: 1.9, BossBaseHP: 190, BossWaveHPGain: 34},
}

// EnemyRadii holds collision radii per behavior kind.
var EnemyRadii = map[BehaviorKind]float64{
	BehaviorChaser:   12.0,
	BehaviorRanged:   12.0,
	BehaviorCharger:  13.0,
	BehaviorSwarm:    9.0,
	BehaviorTank:     16.0,
	BehaviorSpitter:  12.0,
	BehaviorFlyer:    11.0,
	BehaviorEngineer: 13.0,
}

const (
	defaultEnemyRadius = 12.0
	bossRadius         = 24.0
)

// EnemyRadius returns the collision radius for a behavior kind.
func EnemyRadius(kind BehaviorKind) float64 {
	if kind.IsBoss() {
		return bossRadius
	}
	if r, ok := EnemyRadii[kind]; ok {
		return r
	}
	return defaultEnemyRadius
}

// ProjectileRadii holds collision radii per projectile kind.
var ProjectileRadii = map[ProjectileKind]float64{
	ProjectileBullet:  4.5,
	ProjectileSpread:  4.8,
	ProjectilePlasma:  5.5,
	ProjectileMissile: 7.0,
}

// ProjectileRadius returns the collision radius for a projectile kind.
func ProjectileRadius(kind ProjectileKind) float64 {
	if r, ok := ProjectileRadii[kind]; ok {
		return r
	}
	return ProjectileRadii[ProjectileBullet]
}

// DifficultyMods are global tuning multipliers per difficulty setting.
type DifficultyMods struct {
	Spawn   float64
	HP      float64
	Speed   float64
	PowerUp float64
	BossHP  float64
}

var difficultyModifiers = map[string]DifficultyMods{
	"easy":   {Spawn: 0.85, HP: 0.88, Speed: 0.92, PowerUp: 1.15, BossHP: 0.92},
	"normal": {Spawn: 1.0, HP: 1.0, Speed: 1.0, PowerUp: 1.0, BossHP: 1.0},
	"hard":   {Spawn: 1.12, HP: 1.16, Speed: 1.08, PowerUp: 0.9, BossHP: 1.08},
}

// DifficultyModsFor returns the multiplier set for a difficulty, defaulting
// to normal for unknown values.
func DifficultyModsFor(difficulty string) DifficultyMods {
	if m, ok := difficultyModifiers[difficulty]; ok {
		return m
	}
	return difficultyModifiers["normal"]
}

// Boss HP growth on top of the per-boss curve, so repeat boss waves keep up
// with the player's scaling.
const (
	bossHPGrowthBase    = 1.14
	bossHPGrowthPerWave = 0.007
	bossHPGrowthMax     = 1.75
)

// EnemyStats resolves hp, movement speed and attack cadence multiplier for a
// behavior kind at a given wave and difficulty.
func EnemyStats(kind BehaviorKind, wave int, difficulty string) (hp int, speed float64, attackMult float64) {
	if wave < 1 {
		wave = 1
	}
	mods := DifficultyModsFor(difficulty)
	profile, ok := EnemyProfiles[kind]
	if !ok {
		profile = EnemyStatProfile{HPMult: 1.0, SpeedMult: 1.0, AttackMult: 1.0}
	}

	baseHP := 22.0 + float64(wave)*5.0
	baseSpeed := 55.0 + float64(wave)*2.0
	isBoss := kind.IsBoss()

	var hpF float64
	switch {
	case isBoss && profile.BossBaseHP > 0:
		hpF = profile.BossBaseHP + float64(wave)*profile.BossWaveHPGain
	case kind == BehaviorSwarm:
		hpF = baseHP*profile.HPMult + profile.HPOffset
		if hpF < 8 {
			hpF = 8
		}
	default:
		hpF = (baseHP + profile.HPOffset) * profile.HPMult
	}

	if isBoss {
		hpF *= mods.BossHP
		growth := bossHPGrowthBase + bossHPGrowthPerWave*float64(wave)
		if growth > bossHPGrowthMax {
			growth = bossHPGrowthMax
		}
		hpF *= growth
	} else {
		hpF *= mods.HP
	}

	hp = int(hpF)
	if hp < 1 {
		hp = 1
	}
	speed = baseSpeed * profile.SpeedMult * mods.Speed
	attackMult = profile.AttackMult
	if attackMult < 0.5 {
		attackMult = 0.5
	} else if attackMult > 2.5 {
		attackMult = 2.5
	}
	return hp, speed, attackMult
}

// SpawnClass groups behavior kinds that fill the same role in a wave mix.
type SpawnClass struct {
	Key        string
	Members    []BehaviorKind
	UnlockWave int
	Weight     float64
}

// SpawnClasses defines the roles a wave plan draws from, in unlock order.
var SpawnClasses = []SpawnClass{
	{Key: "frontline", Members: []BehaviorKind{BehaviorChaser, BehaviorCharger}, UnlockWave: 1, Weight: 3.0},
	{Key: "gunline", Members: []BehaviorKind{BehaviorRanged}, UnlockWave: 1, Weight: 2.2},
	{Key: "swarmers", Members: []BehaviorKind{BehaviorSwarm}, UnlockWave: 3, Weight: 1.7},
	{Key: "control", Members: []BehaviorKind{BehaviorEngineer}, UnlockWave: 4, Weight: 1.2},
	{Key: "bruisers", Members: []BehaviorKind{BehaviorTank}, UnlockWave: 5, Weight: 1.0},
	{Key: "pressure", Members: []BehaviorKind{BehaviorSpitter, BehaviorFlyer}, UnlockWave: 7, Weight: 1.3},
}

// MaxClassShare prevents wave plans from collapsing into a single class.
const MaxClassShare = 0.6

// ThreatValue scores a kill for the score tracker and combo readout.
var ThreatValue = map[BehaviorKind]int{
	BehaviorChaser:   1,
	BehaviorRanged:   2,
	BehaviorCharger:  2,
	BehaviorSwarm:    1,
	BehaviorEngineer: 3,
	BehaviorTank:     4,
	BehaviorSpitter:  3,
	BehaviorFlyer:    3,
	BossThunder:      20,
	BossLaser:        20,
	BossTrapmaster:   22,
	BossSwarmQueen:   22,
	BossBrute:        24,
}

// BossRoster is the set of bosses the director can pick from.
var BossRoster = []BehaviorKind{BossThunder, BossLaser, BossTrapmaster, BossSwarmQueen, BossBrute}
