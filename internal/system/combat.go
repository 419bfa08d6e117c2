// internal/system/combat.go
package system

import (
	"math"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"
)

const (
	laserTickInterval = 0.1
	laserTickDamage   = 4
	laserHalfWidth    = 6.0

	ultraNovaRadius = 260.0
	ultraTriSpread  = 22.0 // degrees between beams
	ultraBeamLength = config.ArenaRadius * 2
)

// CombatSystem handles the player's weapon fire, the laser and vortex
// pickup effects, and the ultra ability.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher

	laserTick float64
	vortexAcc float64
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, dispatcher: dispatcher}
}

// Update fires the held weapon toward the aim point and ticks pickup
// effects. Aim is a world-space position.
func (s *CombatSystem) Update(deltaTime float64, fireHeld bool, aim utils.Vec2) {
	player := s.ecs.Player
	if !player.Alive() {
		return
	}

	if fireHeld {
		if player.LaserUntil > s.ecs.GameTime {
			s.fireLaser(deltaTime, aim)
		} else {
			s.fireWeapon(aim)
		}
	} else {
		s.laserTick = 0
	}

	s.tickVortex(deltaTime)
}

// fireWeapon spawns one volley when the shot cooldown has elapsed. Firing is
// edge-exact: holding fire for less than one interval produces at most one
// volley.
func (s *CombatSystem) fireWeapon(aim utils.Vec2) {
	player := s.ecs.Player
	weapon, err := defs.WeaponByKey(player.WeaponKey)
	if err != nil {
		// An unknown held weapon fires nothing rather than something else.
		return
	}

	interval := defs.EffectiveFireInterval(weapon, player.FireRate) * s.ecs.Session.FireRateMult
	if interval < config.MinFireInterval {
		interval = config.MinFireInterval
	}
	if s.ecs.GameTime-player.LastShot < interval {
		return
	}
	player.LastShot = s.ecs.GameTime

	origin := utils.Vec2{X: player.X, Y: player.Y}
	baseAngle := aim.Sub(origin).Angle()
	dmg := s.volleyDamage(weapon)

	count := weapon.ProjectileCount
	if count < 1 {
		count = 1
	}
	if count == 1 {
		SpawnProjectile(s.ecs, weapon.Projectile, playerEntityID, origin.X, origin.Y, baseAngle, weapon.ProjectileSpeed, dmg)
		return
	}
	total := weapon.SpreadAngle * math.Pi / 180
	step := total / float64(count-1)
	start := baseAngle - total/2
	for i := 0; i < count; i++ {
		SpawnProjectile(s.ecs, weapon.Projectile, playerEntityID, origin.X, origin.Y, start+float64(i)*step, weapon.ProjectileSpeed, dmg)
	}
}

// playerEntityID is a sentinel owner for player shots; the player is a
// singleton, not an ECS entity. Any non-zero value marks player ownership.
const playerEntityID = 1<<63 - 1

func (s *CombatSystem) volleyDamage(weapon defs.WeaponDefinition) int {
	base := weapon.Damage + s.ecs.Player.Damage/2
	dmg := int(float64(base) * s.ecs.Session.DamageMult)
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// fireLaser replaces projectiles with a continuous beam while the laser
// pickup is active: everything along the aim line takes tick damage.
func (s *CombatSystem) fireLaser(deltaTime float64, aim utils.Vec2) {
	s.laserTick -= deltaTime
	if s.laserTick > 0 {
		return
	}
	s.laserTick = laserTickInterval

	player := s.ecs.Player
	origin := utils.Vec2{X: player.X, Y: player.Y}
	dir := aim.Sub(origin)
	if dir.LengthSq() < 1 {
		dir = utils.Vec2{X: 1}
	}
	end := origin.Add(dir.Normalized().Scale(config.ArenaRadius * 2))

	dmg := int(float64(laserTickDamage+player.Damage/2) * s.ecs.Session.DamageMult)
	if dmg < 1 {
		dmg = 1
	}
	s.damageAlongSegment(origin, end, laserHalfWidth, dmg)
}

// tickVortex drains enemies caught inside the active vortex aura.
func (s *CombatSystem) tickVortex(deltaTime float64) {
	player := s.ecs.Player
	if player.VortexUntil <= s.ecs.GameTime {
		s.vortexAcc = 0
		return
	}
	// Accumulate fractional DPS into whole damage points.
	s.vortexAcc += player.VortexDPS * deltaTime
	dmg := int(s.vortexAcc)
	if dmg < 1 {
		return
	}
	s.vortexAcc -= float64(dmg)

	rSq := player.VortexRadius * player.VortexRadius
	for id := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		dx, dy := pos.X-player.X, pos.Y-player.Y
		if dx*dx+dy*dy <= rSq {
			health.Value -= dmg
			resolveEnemyDeath(s.ecs, s.dispatcher, id)
		}
	}
}

// TryUltra fires the ultra ability toward the aim point if a charge is
// banked and the cooldown has elapsed. The variant follows the held weapon:
// spread weapons fire a tri-beam, heavy weapons detonate a nova, everything
// else fires a single piercing beam.
func (s *CombatSystem) TryUltra(aim utils.Vec2) bool {
	player := s.ecs.Player
	if !player.Alive() || player.UltraCharges <= 0 || s.ecs.GameTime < player.UltraCooldownUntil {
		return false
	}
	player.UltraCharges--
	player.UltraCooldownUntil = s.ecs.GameTime + config.UltraCooldown*s.ecs.Session.UltraCDMult

	dmg := config.UltraDamageBase + int(float64(player.Damage)*config.UltraDamageMult)
	dmg = int(float64(dmg) * s.ecs.Session.DamageMult)
	origin := utils.Vec2{X: player.X, Y: player.Y}

	switch player.WeaponKey {
	case "heavy", "plasma":
		s.ultraNova(origin, dmg)
	case "spread":
		s.ultraTriBeam(origin, aim, dmg)
	default:
		s.ultraBeam(origin, aim, dmg)
	}

	s.dispatcher.Dispatch(event.Event{Type: event.UltraFired, Data: player.WeaponKey})
	return true
}

func (s *CombatSystem) ultraBeam(origin, aim utils.Vec2, dmg int) {
	dir := aim.Sub(origin)
	if dir.LengthSq() < 1 {
		dir = utils.Vec2{X: 1}
	}
	end := origin.Add(dir.Normalized().Scale(ultraBeamLength))
	s.damageAlongSegment(origin, end, config.UltraBeamThickness/2, dmg)
}

func (s *CombatSystem) ultraTriBeam(origin, aim utils.Vec2, dmg int) {
	base := aim.Sub(origin).Angle()
	spread := ultraTriSpread * math.Pi / 180
	for _, offset := range []float64{-spread, 0, spread} {
		end := origin.Add(utils.FromAngle(base + offset).Scale(ultraBeamLength))
		s.damageAlongSegment(origin, end, config.UltraBeamThickness/2, dmg)
	}
}

func (s *CombatSystem) ultraNova(origin utils.Vec2, dmg int) {
	rSq := ultraNovaRadius * ultraNovaRadius
	for id := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		dx, dy := pos.X-origin.X, pos.Y-origin.Y
		if dx*dx+dy*dy <= rSq {
			health.Value -= dmg
			resolveEnemyDeath(s.ecs, s.dispatcher, id)
		}
	}
}

// damageAlongSegment hits every enemy whose circle overlaps the beam
// segment. Beams pierce: all enemies along the line take full damage.
func (s *CombatSystem) damageAlongSegment(a, b utils.Vec2, halfWidth float64, dmg int) {
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		reach := halfWidth + defs.EnemyRadius(enemy.Kind)
		if utils.PointSegmentDistance(pos.Vec(), a, b) <= reach {
			health.Value -= dmg
			resolveEnemyDeath(s.ecs, s.dispatcher, id)
		}
	}
}
