// internal/system/movement.go
package system

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/utils"
)

// MovementSystem moves the player from input and integrates enemy velocity.
// Projectiles are integrated by ProjectileSystem so it can track their
// previous positions.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update applies the player move vector (unit-clamped) and advances enemies.
func (s *MovementSystem) Update(deltaTime float64, move utils.Vec2) {
	player := s.ecs.Player
	if player.Alive() {
		if move.LengthSq() > 1 {
			move = move.Normalized()
		}
		speed := player.Speed * s.ecs.Session.SpeedMult
		drift := move.Scale(speed)
		player.DriftX, player.DriftY = drift.X, drift.Y
		pos := utils.Vec2{X: player.X, Y: player.Y}.Add(drift.Scale(deltaTime))
		pos = utils.ClampToArena(pos, config.ArenaRadius*config.PlayerClampScale)
		player.X, player.Y = pos.X, pos.Y
	}

	for id, enemy := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		next := pos.Vec().Add(vel.Vec().Scale(deltaTime))
		// Flyers swing a little past the rim; everyone else stays inside.
		clamp := config.ArenaRadius * config.EnemyClampScale
		if enemy.Kind == defs.BehaviorFlyer {
			clamp = config.ArenaRadius * 1.05
		}
		pos.SetVec(utils.ClampToArena(next, clamp))
	}
}
