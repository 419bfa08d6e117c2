// internal/component/movement.go
package component

import "go-arena-survival/internal/utils"

// Position is the world-space location of an entity.
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// SetVec overwrites the position from a vector.
func (p *Position) SetVec(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity is per-second world-space movement.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a vector.
func (v Velocity) Vec() utils.Vec2 {
	return utils.Vec2{X: v.X, Y: v.Y}
}

// SetVec overwrites the velocity from a vector.
func (v *Velocity) SetVec(w utils.Vec2) {
	v.X, v.Y = w.X, w.Y
}
