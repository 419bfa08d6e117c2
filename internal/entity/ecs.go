// internal/entity/ecs.go
package entity

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Bosses      map[types.EntityID]*component.Boss
	Projectiles map[types.EntityID]*component.Projectile
	PowerUps    map[types.EntityID]*component.PowerUp
	Hazards     map[types.EntityID]*component.Hazard

	Player  *component.Player
	Wave    *component.Wave
	Session *component.Session
}

func NewECS(difficulty string) *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bosses:      make(map[types.EntityID]*component.Boss),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		PowerUps:    make(map[types.EntityID]*component.PowerUp),
		Hazards:     make(map[types.EntityID]*component.Hazard),
		Player: &component.Player{
			HP:              config.PlayerHP,
			MaxHP:           config.PlayerHP,
			Speed:           config.PlayerSpeed,
			Damage:          0,
			FireRate:        config.PlayerFireRate,
			WeaponKey:       defs.StarterWeaponKey,
			LastShot:        -1e9,
			UltraMaxCharges: config.UltraMaxCharges,
		},
		Wave:    &component.Wave{},
		Session: component.NewSession(difficulty),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes every component attached to an entity.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Projectiles, id)
	delete(ecs.PowerUps, id)
	delete(ecs.Hazards, id)
}
