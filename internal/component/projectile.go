// internal/component/projectile.go
package component

import (
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/types"
)

// Projectile is a moving shot. Owner zero means enemy-owned.
type Projectile struct {
	Kind   defs.ProjectileKind
	Damage int
	TTL    float64
	Owner  types.EntityID

	// Position at the start of the current tick, for swept collision.
	PrevX, PrevY float64
}

// FromPlayer reports whether the projectile was fired by the player.
func (p Projectile) FromPlayer() bool {
	return p.Owner != 0
}
