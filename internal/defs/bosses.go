// internal/defs/bosses.go
package defs

// PersonaProfile biases a boss instance without changing its kind: spacing,
// attack cadence and which pattern families it favors.
type PersonaProfile struct {
	RangeDelta  float64 // added to the boss's preferred distance band
	CadenceMult float64 // multiplier on pattern cooldowns
	FamilyBias  map[string]float64
}

// PersonaProfiles maps each persona to its modifiers. Family keys match the
// Family field of PatternEntry.
var PersonaProfiles = map[Persona]PersonaProfile{
	PersonaAggressive: {
		RangeDelta:  -60,
		CadenceMult: 0.85,
		FamilyBias:  map[string]float64{"melee": 1.5, "burst": 1.2},
	},
	PersonaCautious: {
		RangeDelta:  70,
		CadenceMult: 1.15,
		FamilyBias:  map[string]float64{"zoning": 1.5, "ranged": 1.25},
	},
	PersonaTrickster: {
		RangeDelta:  0,
		CadenceMult: 1.0,
		FamilyBias:  map[string]float64{"summon": 1.4, "zoning": 1.2},
	},
}

// PersonaRoster lists the personas a newly spawned boss can roll.
var PersonaRoster = []Persona{PersonaAggressive, PersonaCautious, PersonaTrickster}

// PatternEntry is one attack pattern a boss can run in a given phase.
type PatternEntry struct {
	ID     string
	Family string // melee, burst, ranged, zoning, summon
	Weight float64
	// Cooldown is the delay before the next pattern pick, before persona and
	// phase cadence multipliers.
	Cooldown float64
}

// BossDefinition is the static data for one boss kind.
type BossDefinition struct {
	Kind          BehaviorKind
	Name          string
	PreferredDist float64
	MoveSpeedMult float64
	// Patterns holds one table per phase; index 0 is phase one.
	Patterns [3][]PatternEntry
}

// Phase cadence: later phases act faster.
var PhaseCadenceMult = [3]float64{1.0, 0.85, 0.7}

// BossLibrary holds the boss roster definitions, keyed by kind.
var BossLibrary = map[BehaviorKind]BossDefinition{
	BossThunder: {
		Kind: BossThunder, Name: "Thunder Herald",
		PreferredDist: 240, MoveSpeedMult: 1.0,
		Patterns: [3][]PatternEntry{
			{
				{ID: "fan_narrow", Family: "ranged", Weight: 3, Cooldown: 2.2},
				{ID: "thunder_single", Family: "zoning", Weight: 3, Cooldown: 2.6},
				{ID: "ring_small", Family: "burst", Weight: 2, Cooldown: 2.8},
			},
			{
				{ID: "fan_wide", Family: "ranged", Weight: 3, Cooldown: 2.0},
				{ID: "thunder_cross", Family: "zoning", Weight: 3, Cooldown: 2.4},
				{ID: "ring_small", Family: "burst", Weight: 2, Cooldown: 2.4},
			},
			{
				{ID: "thunder_storm", Family: "zoning", Weight: 4, Cooldown: 2.2},
				{ID: "fan_wide", Family: "ranged", Weight: 2, Cooldown: 1.8},
				{ID: "ring_large", Family: "burst", Weight: 2, Cooldown: 2.2},
			},
		},
	},
	BossLaser: {
		Kind: BossLaser, Name: "Prism Warden",
		PreferredDist: 280, MoveSpeedMult: 1.1,
		Patterns: [3][]PatternEntry{
			{
				{ID: "beam_sweep", Family: "zoning", Weight: 3, Cooldown: 2.8},
				{ID: "fan_narrow", Family: "ranged", Weight: 3, Cooldown: 2.0},
				{ID: "ring_small", Family: "burst", Weight: 1, Cooldown: 2.6},
			},
			{
				{ID: "beam_cross", Family: "zoning", Weight: 3, Cooldown: 2.6},
				{ID: "fan_wide", Family: "ranged", Weight: 3, Cooldown: 1.9},
				{ID: "spiral_burst", Family: "burst", Weight: 2, Cooldown: 2.4},
			},
			{
				{ID: "beam_cage", Family: "zoning", Weight: 4, Cooldown: 2.4},
				{ID: "spiral_burst", Family: "burst", Weight: 3, Cooldown: 2.0},
				{ID: "fan_wide", Family: "ranged", Weight: 2, Cooldown: 1.7},
			},
		},
	},
	BossTrapmaster: {
		Kind: BossTrapmaster, Name: "Trapmaster",
		PreferredDist: 260, MoveSpeedMult: 0.9,
		Patterns: [3][]PatternEntry{
			{
				{ID: "trap_scatter", Family: "zoning", Weight: 3, Cooldown: 2.6},
				{ID: "fan_narrow", Family: "ranged", Weight: 2, Cooldown: 2.2},
				{ID: "adds_pair", Family: "summon", Weight: 2, Cooldown: 3.2},
			},
			{
				{ID: "trap_ring", Family: "zoning", Weight: 3, Cooldown: 2.4},
				{ID: "fan_wide", Family: "ranged", Weight: 2, Cooldown: 2.0},
				{ID: "adds_pair", Family: "summon", Weight: 2, Cooldown: 2.8},
			},
			{
				{ID: "trap_field", Family: "zoning", Weight: 4, Cooldown: 2.2},
				{ID: "ring_large", Family: "burst", Weight: 2, Cooldown: 2.2},
				{ID: "adds_trio", Family: "summon", Weight: 2, Cooldown: 2.8},
			},
		},
	},
	BossSwarmQueen: {
		Kind: BossSwarmQueen, Name: "Swarm Queen",
		PreferredDist: 220, MoveSpeedMult: 0.95,
		Patterns: [3][]PatternEntry{
			{
				{ID: "adds_pair", Family: "summon", Weight: 4, Cooldown: 3.0},
				{ID: "fan_narrow", Family: "ranged", Weight: 2, Cooldown: 2.2},
				{ID: "ring_small", Family: "burst", Weight: 2, Cooldown: 2.6},
			},
			{
				{ID: "adds_trio", Family: "summon", Weight: 4, Cooldown: 2.8},
				{ID: "ring_small", Family: "burst", Weight: 2, Cooldown: 2.4},
				{ID: "fan_wide", Family: "ranged", Weight: 2, Cooldown: 2.0},
			},
			{
				{ID: "adds_trio", Family: "summon", Weight: 4, Cooldown: 2.4},
				{ID: "spiral_burst", Family: "burst", Weight: 3, Cooldown: 2.2},
				{ID: "ring_large", Family: "burst", Weight: 2, Cooldown: 2.2},
			},
		},
	},
	BossBrute: {
		Kind: BossBrute, Name: "Arena Brute",
		PreferredDist: 120, MoveSpeedMult: 1.15,
		Patterns: [3][]PatternEntry{
			{
				{ID: "slam", Family: "melee", Weight: 4, Cooldown: 2.6},
				{ID: "charge", Family: "melee", Weight: 3, Cooldown: 3.0},
				{ID: "ring_small", Family: "burst", Weight: 1, Cooldown: 2.8},
			},
			{
				{ID: "slam", Family: "melee", Weight: 3, Cooldown: 2.4},
				{ID: "charge", Family: "melee", Weight: 3, Cooldown: 2.6},
				{ID: "ring_small", Family: "burst", Weight: 2, Cooldown: 2.4},
			},
			{
				{ID: "charge", Family: "melee", Weight: 4, Cooldown: 2.2},
				{ID: "slam", Family: "melee", Weight: 3, Cooldown: 2.2},
				{ID: "ring_large", Family: "burst", Weight: 2, Cooldown: 2.2},
			},
		},
	},
}

// PatternsFor returns the pattern table for a boss kind at the given phase
// (1-based, clamped into range). Nil for non-boss kinds.
func PatternsFor(kind BehaviorKind, phase int) []PatternEntry {
	def, ok := BossLibrary[kind]
	if !ok {
		return nil
	}
	if phase < 1 {
		phase = 1
	}
	if phase > 3 {
		phase = 3
	}
	return def.Patterns[phase-1]
}
