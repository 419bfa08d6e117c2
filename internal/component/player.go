// internal/component/player.go
package component

// Player is the singleton state of the controlled character. Timed effects
// store absolute sim timestamps ("until") against the world clock.
type Player struct {
	X, Y float64

	// Last-frame movement in units per second, used for enemy lead aim.
	DriftX, DriftY float64

	HP     int
	MaxHP  int
	Shield int

	Speed    float64
	Damage   int     // base damage bonus added to weapon damage
	FireRate float64 // baseline shot interval stat, seconds

	WeaponKey string
	LastShot  float64 // sim time of the last shot

	// Timed pickup effects.
	LaserUntil   float64
	VortexUntil  float64
	VortexRadius float64
	VortexDPS    float64

	// Ultra ability.
	UltraCharges       int
	UltraMaxCharges    int
	UltraCooldownUntil float64

	MagnetBonus float64
}

// Alive reports whether the player still has hit points.
func (p *Player) Alive() bool {
	return p.HP > 0
}
