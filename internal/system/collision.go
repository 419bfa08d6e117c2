// internal/system/collision.go
package system

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

const contactHitCooldown = 0.8

// CollisionSystem resolves projectile hits and body contact. Detection runs
// over a stable snapshot first; damage and removals apply afterwards, so two
// shots arriving the same tick both land even when the first one kills.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, dispatcher: dispatcher}
}

type projectileHit struct {
	projectile types.EntityID
	enemy      types.EntityID // zero when the player was hit
	damage     int
}

func (s *CollisionSystem) Update(deltaTime float64) {
	hits := s.detect()

	touched := make(map[types.EntityID]bool)
	for _, hit := range hits {
		s.ecs.RemoveEntity(hit.projectile)
		if hit.enemy == 0 {
			damagePlayer(s.ecs, s.dispatcher, hit.damage)
			continue
		}
		if health := s.ecs.Healths[hit.enemy]; health != nil {
			health.Value -= hit.damage
			touched[hit.enemy] = true
		}
	}
	for id := range touched {
		resolveEnemyDeath(s.ecs, s.dispatcher, id)
	}

	s.resolveContact(deltaTime)
}

// detect sweeps every projectile's tick travel against its valid targets.
// Player shots stop at the first enemy along the path; enemy shots test the
// player only.
func (s *CollisionSystem) detect() []projectileHit {
	var hits []projectileHit
	playerPos := utils.Vec2{X: s.ecs.Player.X, Y: s.ecs.Player.Y}

	for projID, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[projID]
		if pos == nil {
			continue
		}
		from := utils.Vec2{X: proj.PrevX, Y: proj.PrevY}
		to := pos.Vec()
		projRadius := defs.ProjectileRadius(proj.Kind)

		if !proj.FromPlayer() {
			if s.ecs.Player.Alive() &&
				utils.PointSegmentDistance(playerPos, from, to) <= projRadius+config.PlayerRadius {
				hits = append(hits, projectileHit{projectile: projID, damage: proj.Damage})
			}
			continue
		}

		// First enemy along the travel direction wins.
		bestID := types.EntityID(0)
		bestT := 0.0
		travel := to.Sub(from)
		travelLenSq := travel.LengthSq()
		for enemyID, enemy := range s.ecs.Enemies {
			epos := s.ecs.Positions[enemyID]
			if epos == nil {
				continue
			}
			if boss, ok := s.ecs.Bosses[enemyID]; ok && boss.Dying {
				continue
			}
			reach := projRadius + defs.EnemyRadius(enemy.Kind)
			if utils.PointSegmentDistance(epos.Vec(), from, to) > reach {
				continue
			}
			t := 0.0
			if travelLenSq > 0 {
				t = epos.Vec().Sub(from).Dot(travel) / travelLenSq
			}
			if bestID == 0 || t < bestT {
				bestID = enemyID
				bestT = t
			}
		}
		if bestID != 0 {
			hits = append(hits, projectileHit{projectile: projID, enemy: bestID, damage: proj.Damage})
		}
	}
	return hits
}

// resolveContact handles enemy bodies touching the player. Swarmers burn up
// on impact; everyone else gets a short grace timer so contact doesn't melt
// the player every frame.
func (s *CollisionSystem) resolveContact(deltaTime float64) {
	player := s.ecs.Player
	if !player.Alive() {
		return
	}
	playerPos := utils.Vec2{X: player.X, Y: player.Y}

	for id, enemy := range s.ecs.Enemies {
		if enemy.ContactCooldown > 0 {
			enemy.ContactCooldown -= deltaTime
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if boss, ok := s.ecs.Bosses[id]; ok && boss.Dying {
			continue
		}
		reach := defs.EnemyRadius(enemy.Kind) + config.PlayerRadius
		if utils.Dist(pos.Vec(), playerPos) > reach {
			continue
		}
		if enemy.ContactCooldown > 0 {
			continue
		}

		dmg := int(float64(config.EnemyContactDamage) * enemy.AttackMult)
		if dmg < 1 {
			dmg = 1
		}
		damagePlayer(s.ecs, s.dispatcher, dmg)

		if enemy.Kind == defs.BehaviorSwarm {
			if health := s.ecs.Healths[id]; health != nil {
				health.Value = 0
			}
			resolveEnemyDeath(s.ecs, s.dispatcher, id)
			continue
		}
		enemy.ContactCooldown = contactHitCooldown
	}
}
