// internal/system/projectile.go
package system

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
)

// ProjectileSystem integrates projectile motion, keeping each shot's
// previous position so collision can sweep the whole tick's travel.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	// A little past the rim so shots visibly leave instead of popping.
	boundSq := (config.ArenaRadius * 1.2) * (config.ArenaRadius * 1.2)

	for id, proj := range s.ecs.Projectiles {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		vel := s.ecs.Velocities[id]
		if vel == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.PrevX, proj.PrevY = pos.X, pos.Y
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		proj.TTL -= deltaTime
		if proj.TTL <= 0 || pos.X*pos.X+pos.Y*pos.Y > boundSq {
			s.ecs.RemoveEntity(id)
		}
	}
}
