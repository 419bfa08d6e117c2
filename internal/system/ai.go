// internal/system/ai.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// Behavior tuning. Distances are world units, times are seconds.
const (
	rangedBandNear   = 180.0
	rangedBandFar    = 260.0
	rangedShotCD     = 1.6
	rangedShotSpeed  = 230.0
	rangedLeadFactor = 0.35

	chargerStandoff   = 220.0
	chargerWindup     = 0.5
	chargerDashTime   = 0.6
	chargerDashMult   = 3.0
	chargerCooldown   = 1.0
	chargerDriftMult  = 0.35
	chargerTriggerArc = 40.0

	swarmOrbitRadius = 90.0
	swarmOrbitRate   = 1.6
	swarmCloseRate   = 14.0

	spitterBandNear = 150.0
	spitterBandFar  = 230.0
	spitterShotCD   = 2.2
	spitterSpread   = 18.0 // degrees between the three shots
	spitterShotSpd  = 200.0

	flyerWobbleAmp  = 110.0
	flyerWobbleRate = 3.1

	engineerStandoff = 300.0
	engineerTrapCD   = 3.4
	trapRadius       = 26.0
	trapWarnTime     = 0.8
	trapLifetime     = 12.0

	separationRadius = 26.0
	separationPush   = 40.0
)

// AISystem drives all non-boss enemy behaviors. It writes velocities for
// MovementSystem to integrate and spawns enemy projectiles and traps.
type AISystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewAISystem(ecs *entity.ECS, rng *utils.PRNGService) *AISystem {
	return &AISystem{ecs: ecs, rng: rng}
}

func (s *AISystem) Update(deltaTime float64) {
	player := s.ecs.Player
	playerPos := utils.Vec2{X: player.X, Y: player.Y}

	for id, enemy := range s.ecs.Enemies {
		if enemy.Kind.IsBoss() {
			continue // BossSystem owns these
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		vel := s.ecs.Velocities[id]
		if vel == nil {
			continue
		}

		enemy.Age += deltaTime
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown -= deltaTime
		}

		switch enemy.Kind {
		case defs.BehaviorChaser, defs.BehaviorTank:
			s.steerChase(pos, vel, enemy, playerPos)
		case defs.BehaviorRanged:
			s.steerRanged(id, pos, vel, enemy, playerPos)
		case defs.BehaviorCharger:
			s.steerCharger(pos, vel, enemy, playerPos, deltaTime)
		case defs.BehaviorSwarm:
			s.steerSwarm(pos, vel, enemy, playerPos)
		case defs.BehaviorSpitter:
			s.steerSpitter(pos, vel, enemy, playerPos)
		case defs.BehaviorFlyer:
			s.steerFlyer(pos, vel, enemy, playerPos)
		case defs.BehaviorEngineer:
			s.steerEngineer(pos, vel, enemy, playerPos)
		default:
			s.steerChase(pos, vel, enemy, playerPos)
		}

		if enemy.State != component.AICharging {
			s.applySeparation(id, pos, vel)
		}
	}
}

func (s *AISystem) steerChase(pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2) {
	dir := target.Sub(pos.Vec())
	if dir.LengthSq() < 1 {
		vel.SetVec(utils.Vec2{})
		return
	}
	vel.SetVec(dir.Normalized().Scale(enemy.MoveSpeed))
}

// steerRanged holds a distance band, strafes sideways and fires lead-aimed
// shots at the player's projected position.
func (s *AISystem) steerRanged(id types.EntityID, pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2) {
	toPlayer := target.Sub(pos.Vec())
	dist := toPlayer.Length()
	if dist < 1 {
		dist = 1
	}
	dir := toPlayer.Scale(1 / dist)

	var radial utils.Vec2
	switch {
	case dist > rangedBandFar:
		radial = dir
	case dist < rangedBandNear:
		radial = dir.Scale(-1)
	}
	strafe := dir.Perp().Scale(enemy.StrafeSign * 0.7)
	steer := radial.Add(strafe)
	if steer.LengthSq() > 0 {
		steer = steer.Normalized()
	}
	vel.SetVec(steer.Scale(enemy.MoveSpeed))

	if enemy.AttackCooldown <= 0 && dist <= rangedBandFar+40 {
		// Lead the shot toward where the player is heading.
		lead := target.Add(s.playerDrift().Scale(rangedLeadFactor))
		angle := lead.Sub(pos.Vec()).Angle()
		SpawnProjectile(s.ecs, defs.ProjectileBullet, 0, pos.X, pos.Y, angle, rangedShotSpeed, s.shotDamage(enemy))
		enemy.AttackCooldown = rangedShotCD / clampCadence(enemy.AttackMult)
	}
}

func (s *AISystem) steerCharger(pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2, deltaTime float64) {
	toPlayer := target.Sub(pos.Vec())
	dist := toPlayer.Length()

	switch enemy.State {
	case component.AIIdle, component.AIRepositioning:
		enemy.State = component.AIRepositioning
		var steer utils.Vec2
		if dist > chargerStandoff+30 {
			steer = toPlayer.Normalized()
		} else if dist < chargerStandoff-30 {
			steer = toPlayer.Normalized().Scale(-1)
		}
		vel.SetVec(steer.Scale(enemy.MoveSpeed))
		if math.Abs(dist-chargerStandoff) <= chargerTriggerArc && enemy.AttackCooldown <= 0 {
			enemy.State = component.AIWindup
			enemy.StateTimer = chargerWindup
			vel.SetVec(utils.Vec2{})
		}
	case component.AIWindup:
		vel.SetVec(utils.Vec2{})
		enemy.StateTimer -= deltaTime
		if enemy.StateTimer <= 0 {
			// Lock the dash direction at the end of the windup.
			dir := toPlayer
			if dir.LengthSq() < 1 {
				dir = utils.Vec2{X: 1}
			}
			dir = dir.Normalized()
			enemy.ChargeDirX, enemy.ChargeDirY = dir.X, dir.Y
			enemy.State = component.AICharging
			enemy.StateTimer = chargerDashTime
		}
	case component.AICharging:
		vel.SetVec(utils.Vec2{X: enemy.ChargeDirX, Y: enemy.ChargeDirY}.Scale(enemy.MoveSpeed * chargerDashMult))
		enemy.StateTimer -= deltaTime
		if enemy.StateTimer <= 0 {
			enemy.State = component.AICooldown
			enemy.StateTimer = chargerCooldown
		}
	case component.AICooldown:
		vel.SetVec(toPlayer.Normalized().Scale(enemy.MoveSpeed * chargerDriftMult))
		enemy.StateTimer -= deltaTime
		if enemy.StateTimer <= 0 {
			enemy.State = component.AIRepositioning
			enemy.AttackCooldown = 0.6 / clampCadence(enemy.AttackMult)
		}
	}
}

// steerSwarm orbits the player, slowly tightening the circle. The per-entity
// seed desyncs the orbit phases so a pack spreads out.
func (s *AISystem) steerSwarm(pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2) {
	angle := enemy.Seed + enemy.Age*swarmOrbitRate
	radius := swarmOrbitRadius - enemy.Age*swarmCloseRate
	if radius < 10 {
		radius = 10
	}
	goal := target.Add(utils.FromAngle(angle).Scale(radius))
	dir := goal.Sub(pos.Vec())
	if dir.LengthSq() < 1 {
		vel.SetVec(utils.Vec2{})
		return
	}
	vel.SetVec(dir.Normalized().Scale(enemy.MoveSpeed))
}

func (s *AISystem) steerSpitter(pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2) {
	toPlayer := target.Sub(pos.Vec())
	dist := toPlayer.Length()
	if dist < 1 {
		dist = 1
	}
	dir := toPlayer.Scale(1 / dist)

	var steer utils.Vec2
	switch {
	case dist > spitterBandFar:
		steer = dir
	case dist < spitterBandNear:
		steer = dir.Scale(-1)
	}
	vel.SetVec(steer.Scale(enemy.MoveSpeed))

	if enemy.AttackCooldown <= 0 && dist <= spitterBandFar+30 {
		base := toPlayer.Angle()
		spread := spitterSpread * math.Pi / 180
		for _, offset := range []float64{-spread, 0, spread} {
			SpawnProjectile(s.ecs, defs.ProjectileSpread, 0, pos.X, pos.Y, base+offset, spitterShotSpd, s.shotDamage(enemy))
		}
		enemy.AttackCooldown = spitterShotCD / clampCadence(enemy.AttackMult)
	}
}

func (s *AISystem) steerFlyer(pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2) {
	toPlayer := target.Sub(pos.Vec())
	if toPlayer.LengthSq() < 1 {
		vel.SetVec(utils.Vec2{})
		return
	}
	dir := toPlayer.Normalized()
	wobble := math.Sin(enemy.Seed+enemy.Age*flyerWobbleRate) * flyerWobbleAmp
	steer := dir.Scale(enemy.MoveSpeed).Add(dir.Perp().Scale(wobble))
	vel.SetVec(steer)
}

// steerEngineer hangs back and seeds traps near the player, respecting the
// global construction cap.
func (s *AISystem) steerEngineer(pos *component.Position, vel *component.Velocity, enemy *component.Enemy, target utils.Vec2) {
	toPlayer := target.Sub(pos.Vec())
	dist := toPlayer.Length()
	if dist < 1 {
		dist = 1
	}
	dir := toPlayer.Scale(1 / dist)

	var steer utils.Vec2
	switch {
	case dist > engineerStandoff+40:
		steer = dir
	case dist < engineerStandoff-40:
		steer = dir.Scale(-1)
	default:
		steer = dir.Perp().Scale(enemy.StrafeSign * 0.8)
	}
	vel.SetVec(steer.Scale(enemy.MoveSpeed))

	if enemy.AttackCooldown <= 0 && s.activeConstructions() < config.MaxActiveConstructions {
		drop := target.Add(utils.FromAngle(s.rng.Angle()).Scale(s.rng.Range(40, 120)))
		drop = utils.ClampToArena(drop, config.ArenaRadius*config.EnemyClampScale)
		SpawnCircleHazard(s.ecs, defs.HazardTrap, drop.X, drop.Y, trapRadius, s.shotDamage(enemy), trapWarnTime, trapLifetime)
		enemy.AttackCooldown = engineerTrapCD / clampCadence(enemy.AttackMult)
	}
}

func (s *AISystem) activeConstructions() int {
	count := 0
	for _, h := range s.ecs.Hazards {
		if h.Kind == defs.HazardTrap {
			count++
		}
	}
	return count
}

// applySeparation nudges an enemy away from close neighbors so packs don't
// stack into one circle.
func (s *AISystem) applySeparation(id types.EntityID, pos *component.Position, vel *component.Velocity) {
	var push utils.Vec2
	for otherID, otherPos := range s.ecs.Positions {
		if otherID == id {
			continue
		}
		if _, isEnemy := s.ecs.Enemies[otherID]; !isEnemy {
			continue
		}
		away := pos.Vec().Sub(otherPos.Vec())
		d := away.Length()
		if d > 0 && d < separationRadius {
			push = push.Add(away.Scale((separationRadius - d) / d))
		}
	}
	if push.LengthSq() > 0 {
		v := vel.Vec().Add(push.Normalized().Scale(separationPush))
		vel.SetVec(v)
	}
}

// playerDrift is the player's last-frame movement, for lead aiming.
func (s *AISystem) playerDrift() utils.Vec2 {
	return utils.Vec2{X: s.ecs.Player.DriftX, Y: s.ecs.Player.DriftY}
}

func (s *AISystem) shotDamage(enemy *component.Enemy) int {
	dmg := 6.0 + float64(s.ecs.Wave.Number)*0.8
	dmg *= enemy.AttackMult
	if dmg < 1 {
		return 1
	}
	return int(dmg)
}

// clampCadence keeps attack cooldown scaling inside sane bounds.
func clampCadence(mult float64) float64 {
	if mult < 0.5 {
		return 0.5
	}
	if mult > 2.5 {
		return 2.5
	}
	return mult
}
