// internal/defs/rewards.go
package defs

import "sort"

// TempCard is a boss reward that lasts a fixed number of waves. All of its
// multipliers default to 1.0 (no effect) so partial definitions stay valid.
type TempCard struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Desc         string  `json:"desc"`
	Waves        int     `json:"waves"`
	DamageMult   float64 `json:"damage_mult"`
	SpeedMult    float64 `json:"speed_mult"`
	FireRateMult float64 `json:"fire_rate_mult"` // < 1.0 shoots faster
	IncomingMult float64 `json:"incoming_mult"`  // < 1.0 takes less damage
	UltraCDMult  float64 `json:"ultra_cd_mult"`
	Weight       int     `json:"weight"`
}

// TempCardLibrary is the pool boss reward rolls draw temporary cards from.
var TempCardLibrary = map[string]TempCard{
	"surge": {
		Key: "surge", Name: "Damage Surge",
		Desc:  "+35% damage for 2 waves",
		Waves: 2, DamageMult: 1.35, Weight: 25,
	},
	"overdrive": {
		Key: "overdrive", Name: "Overdrive",
		Desc:  "+25% fire rate for 2 waves",
		Waves: 2, FireRateMult: 0.8, Weight: 25,
	},
	"fleet": {
		Key: "fleet", Name: "Fleet Foot",
		Desc:  "+20% move speed for 3 waves",
		Waves: 3, SpeedMult: 1.2, Weight: 20,
	},
	"bulwark": {
		Key: "bulwark", Name: "Bulwark",
		Desc:  "-25% damage taken for 2 waves",
		Waves: 2, IncomingMult: 0.75, Weight: 20,
	},
	"flux": {
		Key: "flux", Name: "Ultra Flux",
		Desc:  "-40% ultra cooldown for 3 waves",
		Waves: 3, UltraCDMult: 0.6, Weight: 15,
	},
}

// PermBoost is a boss reward that stacks for the rest of the run.
type PermBoost struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Desc         string  `json:"desc"`
	DamageBonus  int     `json:"damage_bonus"`
	MaxHPBonus   int     `json:"max_hp_bonus"`
	MagnetBonus  float64 `json:"magnet_bonus"`
	UltraCharges int     `json:"ultra_charges"`
	IncomingMult float64 `json:"incoming_mult"` // multiplies per stack
	Weight       int     `json:"weight"`
}

// PermBoostLibrary is the pool boss reward rolls draw permanent boosts from.
var PermBoostLibrary = map[string]PermBoost{
	"sharpen": {
		Key: "sharpen", Name: "Sharpened Rounds",
		Desc: "+3 base damage", DamageBonus: 3, Weight: 25,
	},
	"vitality": {
		Key: "vitality", Name: "Vitality",
		Desc: "+15 max HP, heal the difference", MaxHPBonus: 15, Weight: 25,
	},
	"magnet": {
		Key: "magnet", Name: "Collector",
		Desc: "+40 magnet radius", MagnetBonus: 40, Weight: 20,
	},
	"capacity": {
		Key: "capacity", Name: "Ultra Capacity",
		Desc: "+1 max ultra charge", UltraCharges: 1, Weight: 15,
	},
	"plating": {
		Key: "plating", Name: "Plating",
		Desc: "-6% damage taken", IncomingMult: 0.94, Weight: 15,
	},
}

// RewardChoiceCount is how many options each reward stage presents.
const RewardChoiceCount = 3

func normalizedTempCard(c TempCard) TempCard {
	if c.DamageMult == 0 {
		c.DamageMult = 1.0
	}
	if c.SpeedMult == 0 {
		c.SpeedMult = 1.0
	}
	if c.FireRateMult == 0 {
		c.FireRateMult = 1.0
	}
	if c.IncomingMult == 0 {
		c.IncomingMult = 1.0
	}
	if c.UltraCDMult == 0 {
		c.UltraCDMult = 1.0
	}
	return c
}

// TempCardByKey looks up a temporary card with defaulted multipliers.
func TempCardByKey(key string) (TempCard, bool) {
	c, ok := TempCardLibrary[key]
	if !ok {
		return TempCard{}, false
	}
	return normalizedTempCard(c), true
}

// PermBoostByKey looks up a permanent boost definition.
func PermBoostByKey(key string) (PermBoost, bool) {
	b, ok := PermBoostLibrary[key]
	if !ok {
		return PermBoost{}, false
	}
	if b.IncomingMult == 0 {
		b.IncomingMult = 1.0
	}
	return b, true
}

// TempCardTable returns the weighted roll table over the temp card pool,
// ordered by key so seeded rolls stay reproducible.
func TempCardTable() []LootEntry {
	entries := make([]LootEntry, 0, len(TempCardLibrary))
	for key, c := range TempCardLibrary {
		entries = append(entries, LootEntry{Key: key, Weight: c.Weight})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// PermBoostTable returns the weighted roll table over the perm boost pool,
// ordered by key so seeded rolls stay reproducible.
func PermBoostTable() []LootEntry {
	entries := make([]LootEntry, 0, len(PermBoostLibrary))
	for key, b := range PermBoostLibrary {
		entries = append(entries, LootEntry{Key: key, Weight: b.Weight})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
