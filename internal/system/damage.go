// internal/system/damage.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
)

// damagePlayer applies damage through the session's incoming multiplier,
// draining shield before HP. Dispatches PlayerDamaged and, on the killing
// blow, PlayerDied.
func damagePlayer(ecs *entity.ECS, dispatcher *event.Dispatcher, dmg int) {
	player := ecs.Player
	if !player.Alive() || dmg <= 0 {
		return
	}
	scaled := int(math.Ceil(float64(dmg) * ecs.Session.IncomingMult))
	if scaled < 1 {
		scaled = 1
	}

	if player.Shield > 0 {
		if player.Shield >= scaled {
			player.Shield -= scaled
			scaled = 0
		} else {
			scaled -= player.Shield
			player.Shield = 0
		}
	}
	player.HP -= scaled

	dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: scaled})
	if player.HP <= 0 {
		player.HP = 0
		ecs.Session.Phase = component.PhaseGameOver
		dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// resolveEnemyDeath removes a dead enemy, or starts the boss dying sequence.
// Overkill is allowed: damage may have pushed HP well below zero before this
// runs. Returns true when the entity died.
func resolveEnemyDeath(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID) bool {
	health := ecs.Healths[id]
	if health == nil || health.Value > 0 {
		return false
	}
	enemy := ecs.Enemies[id]
	if enemy == nil {
		return false
	}

	if boss, ok := ecs.Bosses[id]; ok {
		if !boss.Dying {
			boss.Dying = true
			boss.DyingTimer = config.BossDyingDuration
			if vel := ecs.Velocities[id]; vel != nil {
				vel.X, vel.Y = 0, 0
			}
		}
		return true
	}

	pos := ecs.Positions[id]
	if pos != nil && enemy.Kind == defs.BehaviorTank {
		// Tanks detonate on death.
		dx := ecs.Player.X - pos.X
		dy := ecs.Player.Y - pos.Y
		if dx*dx+dy*dy <= config.TankDeathBlastRadius*config.TankDeathBlastRadius {
			damagePlayer(ecs, dispatcher, config.TankDeathBlastDamage)
		}
	}

	payload := event.KillPayload{ID: id, Kind: enemy.Kind}
	if pos != nil {
		payload.X, payload.Y = pos.X, pos.Y
	}
	ecs.RemoveEntity(id)
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: payload})
	return true
}
