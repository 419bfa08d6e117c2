// internal/system/hazard.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// HazardSystem ages area threats through telegraph, active and expiry, and
// applies their damage to the player.
type HazardSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewHazardSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *HazardSystem {
	return &HazardSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *HazardSystem) Update(deltaTime float64) {
	player := s.ecs.Player
	playerPos := utils.Vec2{X: player.X, Y: player.Y}

	for id, hazard := range s.ecs.Hazards {
		hazard.Age += deltaTime

		if !hazard.Armed() {
			continue
		}
		if render := s.ecs.Renderables[id]; render != nil {
			render.Color = config.HazardColor
		}

		// Traps sit armed until touched; everything else expires on TTL.
		if hazard.Kind != defs.HazardTrap && hazard.Age >= hazard.Warn+hazard.TTL {
			s.ecs.RemoveEntity(id)
			continue
		}
		if hazard.Kind == defs.HazardTrap && hazard.Age >= hazard.TTL {
			s.ecs.RemoveEntity(id)
			continue
		}

		if hazard.HitDone || !player.Alive() {
			continue
		}
		if !s.overlapsPlayer(id, hazard, playerPos) {
			continue
		}

		damagePlayer(s.ecs, s.dispatcher, hazard.Damage)
		hazard.HitDone = true
		if hazard.Kind == defs.HazardTrap {
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *HazardSystem) overlapsPlayer(id types.EntityID, hazard *component.Hazard, playerPos utils.Vec2) bool {
	switch hazard.Kind {
	case defs.HazardBeam, defs.HazardThunder:
		a := utils.Vec2{X: hazard.StartX, Y: hazard.StartY}
		b := utils.Vec2{X: hazard.EndX, Y: hazard.EndY}
		return utils.PointSegmentDistance(playerPos, a, b) <= hazard.Radius+config.PlayerRadius
	default:
		pos := s.ecs.Positions[id]
		if pos == nil {
			return false
		}
		return utils.Dist(pos.Vec(), playerPos) <= hazard.Radius+config.PlayerRadius
	}
}
