// internal/component/powerup.go
package component

import "go-arena-survival/internal/defs"

// PowerUp is a pickup lying in the arena.
type PowerUp struct {
	Kind      defs.PowerUpKind
	WeaponKey string // set only for weapon pickups
	TTL       float64
	Magnet    bool // special pickups pull toward the player
}
