// internal/system/boss.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

const (
	bossShotSpeed     = 240.0
	bossStrafeFactor  = 0.5
	bossBandSlack     = 40.0
	bossChargeTime    = 0.7
	bossChargeMult    = 2.6
	bossSlamRadius    = 85.0
	bossSlamWarn      = 0.9
	bossBeamHalfWidth = 10.0
	bossBeamWarn      = 0.8
	bossBeamTTL       = 0.25
	thunderHalfWidth  = 14.0
	thunderWarn       = 1.0
	thunderTTL        = 0.2
)

// BossSystem drives boss movement, phase transitions and attack patterns,
// and resolves the boss death sequence.
type BossSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewBossSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *BossSystem {
	return &BossSystem{ecs: ecs, rng: rng, dispatcher: dispatcher}
}

func (s *BossSystem) Update(deltaTime float64) {
	player := s.ecs.Player
	playerPos := utils.Vec2{X: player.X, Y: player.Y}

	for id, boss := range s.ecs.Bosses {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		health := s.ecs.Healths[id]
		if enemy == nil || pos == nil || vel == nil || health == nil {
			continue
		}

		if boss.Dying {
			vel.SetVec(utils.Vec2{})
			boss.DyingTimer -= deltaTime
			if boss.DyingTimer <= 0 {
				s.dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossDefeatPayload{
					Kind: enemy.Kind, X: pos.X, Y: pos.Y,
				}})
				s.ecs.RemoveEntity(id)
			}
			continue
		}

		enemy.Age += deltaTime
		s.updatePhase(id, boss, enemy, health)
		s.steer(boss, enemy, pos, vel, playerPos, deltaTime)

		boss.PatternCooldown -= deltaTime
		if boss.PatternCooldown <= 0 && enemy.State != component.AICharging {
			s.runPattern(id, boss, enemy, pos, playerPos)
		}
	}
}

// updatePhase promotes the boss when its HP crosses the phase fractions.
// Transitions are one-way and also interrupt the current pattern cadence.
func (s *BossSystem) updatePhase(id types.EntityID, boss *component.Boss, enemy *component.Enemy, health *component.Health) {
	frac := float64(health.Value) / float64(health.Max)
	target := 1
	if frac <= config.BossPhase3HPFrac {
		target = 3
	} else if frac <= config.BossPhase2HPFrac {
		target = 2
	}
	if target > boss.Phase {
		boss.Phase = target
		boss.PatternCooldown = 0.6
		enemy.State = component.AIActive
		s.dispatcher.Dispatch(event.Event{Type: event.BossPhaseChanged, Data: event.BossPhasePayload{
			ID: id, Kind: enemy.Kind, Phase: boss.Phase,
		}})
	}
}

func (s *BossSystem) steer(boss *component.Boss, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, playerPos utils.Vec2, deltaTime float64) {
	if enemy.State == component.AICharging {
		vel.SetVec(utils.Vec2{X: enemy.ChargeDirX, Y: enemy.ChargeDirY}.Scale(enemy.MoveSpeed * bossChargeMult))
		enemy.StateTimer -= deltaTime
		if enemy.StateTimer <= 0 {
			enemy.State = component.AIActive
		}
		return
	}

	def := defs.BossLibrary[enemy.Kind]
	persona := defs.PersonaProfiles[boss.Persona]
	band := def.PreferredDist + persona.RangeDelta
	if band < 60 {
		band = 60
	}

	toPlayer := playerPos.Sub(pos.Vec())
	dist := toPlayer.Length()
	if dist < 1 {
		dist = 1
	}
	dir := toPlayer.Scale(1 / dist)

	var radial utils.Vec2
	switch {
	case dist > band+bossBandSlack:
		radial = dir
	case dist < band-bossBandSlack:
		radial = dir.Scale(-1)
	}
	strafeSign := 1.0
	if math.Sin(enemy.Seed+enemy.Age*0.4) < 0 {
		strafeSign = -1.0
	}
	steer := radial.Add(dir.Perp().Scale(strafeSign * bossStrafeFactor))
	if steer.LengthSq() > 0 {
		steer = steer.Normalized()
	}
	vel.SetVec(steer.Scale(enemy.MoveSpeed * def.MoveSpeedMult))
}

// runPattern does a weighted pick over the phase's table (never repeating
// the previous pattern when an alternative exists), executes it, and arms
// the next cooldown with persona and phase cadence applied.
func (s *BossSystem) runPattern(id types.EntityID, boss *component.Boss, enemy *component.Enemy, pos *component.Position, playerPos utils.Vec2) {
	table := defs.PatternsFor(enemy.Kind, boss.Phase)
	if len(table) == 0 {
		return
	}
	persona := defs.PersonaProfiles[boss.Persona]

	total := 0.0
	weights := make([]float64, len(table))
	for i, entry := range table {
		if entry.ID == boss.LastPatternID && len(table) > 1 {
			continue
		}
		w := entry.Weight
		if bias, ok := persona.FamilyBias[entry.Family]; ok {
			w *= bias
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return
	}

	r := s.rng.Float64() * total
	chosen := table[len(table)-1]
	for i, entry := range table {
		if weights[i] <= 0 {
			continue
		}
		if r < weights[i] {
			chosen = entry
			break
		}
		r -= weights[i]
	}

	s.execute(id, boss, enemy, pos, playerPos, chosen.ID)
	boss.LastPatternID = chosen.ID
	boss.PatternCooldown = chosen.Cooldown * persona.CadenceMult * defs.PhaseCadenceMult[boss.Phase-1]
}

func (s *BossSystem) execute(id types.EntityID, boss *component.Boss, enemy *component.Enemy, pos *component.Position, playerPos utils.Vec2, patternID string) {
	aim := playerPos.Sub(pos.Vec()).Angle()
	dmg := s.bossShotDamage(enemy)

	switch patternID {
	case "fan_narrow":
		s.fireFan(pos, aim, 5, 36, dmg)
	case "fan_wide":
		s.fireFan(pos, aim, 9, 80, dmg)
	case "ring_small":
		s.fireRing(pos, 8, dmg)
	case "ring_large":
		s.fireRing(pos, 14, dmg)
	case "spiral_burst":
		for i := 0; i < 6; i++ {
			angle := boss.SpiralDeg*math.Pi/180 + float64(i)*math.Pi/3
			SpawnProjectile(s.ecs, defs.ProjectilePlasma, 0, pos.X, pos.Y, angle, bossShotSpeed*0.8, dmg)
		}
		boss.SpiralDeg += 23
	case "thunder_single":
		s.thunderLine(playerPos, s.rng.Angle(), dmg+4)
	case "thunder_cross":
		a := s.rng.Angle()
		s.thunderLine(playerPos, a, dmg+4)
		s.thunderLine(playerPos, a+math.Pi/2, dmg+4)
	case "thunder_storm":
		for i := 0; i < 4; i++ {
			at := playerPos.Add(utils.FromAngle(s.rng.Angle()).Scale(s.rng.Range(0, 140)))
			s.thunderLine(at, s.rng.Angle(), dmg+4)
		}
	case "beam_sweep":
		s.bossBeam(pos, aim, dmg+2)
	case "beam_cross":
		s.bossBeam(pos, aim, dmg+2)
		s.bossBeam(pos, aim+math.Pi/2, dmg+2)
	case "beam_cage":
		for i := 0; i < 4; i++ {
			s.bossBeam(pos, aim+float64(i)*math.Pi/2, dmg+2)
		}
	case "trap_scatter":
		s.scatterTraps(playerPos, 3, 60, 150, dmg)
	case "trap_ring":
		for i := 0; i < 6; i++ {
			at := playerPos.Add(utils.FromAngle(float64(i) * math.Pi / 3).Scale(100))
			s.dropTrap(at, dmg)
		}
	case "trap_field":
		s.scatterTraps(playerPos, 6, 40, 200, dmg)
	case "adds_pair":
		s.summonAdds(pos, 2)
	case "adds_trio":
		s.summonAdds(pos, 3)
	case "slam":
		SpawnCircleHazard(s.ecs, defs.HazardSlam, pos.X, pos.Y, bossSlamRadius, dmg+6, bossSlamWarn, 0.2)
	case "charge":
		dir := playerPos.Sub(pos.Vec())
		if dir.LengthSq() < 1 {
			dir = utils.Vec2{X: 1}
		}
		dir = dir.Normalized()
		enemy.ChargeDirX, enemy.ChargeDirY = dir.X, dir.Y
		enemy.State = component.AICharging
		enemy.StateTimer = bossChargeTime
	}
}

func (s *BossSystem) fireFan(pos *component.Position, aim float64, count int, totalDeg float64, dmg int) {
	if count < 2 {
		SpawnProjectile(s.ecs, defs.ProjectileBullet, 0, pos.X, pos.Y, aim, bossShotSpeed, dmg)
		return
	}
	total := totalDeg * math.Pi / 180
	step := total / float64(count-1)
	start := aim - total/2
	for i := 0; i < count; i++ {
		SpawnProjectile(s.ecs, defs.ProjectileBullet, 0, pos.X, pos.Y, start+float64(i)*step, bossShotSpeed, dmg)
	}
}

func (s *BossSystem) fireRing(pos *component.Position, count int, dmg int) {
	for i := 0; i < count; i++ {
		angle := float64(i) * 2 * math.Pi / float64(count)
		SpawnProjectile(s.ecs, defs.ProjectileBullet, 0, pos.X, pos.Y, angle, bossShotSpeed*0.85, dmg)
	}
}

// thunderLine strikes a full-arena line through the given point.
func (s *BossSystem) thunderLine(through utils.Vec2, angle float64, dmg int) {
	dir := utils.FromAngle(angle)
	start := through.Sub(dir.Scale(config.ArenaRadius * 2))
	end := through.Add(dir.Scale(config.ArenaRadius * 2))
	SpawnLineHazard(s.ecs, defs.HazardThunder, start, end, thunderHalfWidth, dmg, thunderWarn, thunderTTL)
}

func (s *BossSystem) bossBeam(pos *component.Position, angle float64, dmg int) {
	start := pos.Vec()
	end := start.Add(utils.FromAngle(angle).Scale(config.ArenaRadius * 2))
	SpawnLineHazard(s.ecs, defs.HazardBeam, start, end, bossBeamHalfWidth, dmg, bossBeamWarn, bossBeamTTL)
}

func (s *BossSystem) scatterTraps(around utils.Vec2, count int, minDist, maxDist float64, dmg int) {
	for i := 0; i < count; i++ {
		at := around.Add(utils.FromAngle(s.rng.Angle()).Scale(s.rng.Range(minDist, maxDist)))
		s.dropTrap(at, dmg)
	}
}

func (s *BossSystem) dropTrap(at utils.Vec2, dmg int) {
	at = utils.ClampToArena(at, config.ArenaRadius*config.EnemyClampScale)
	SpawnCircleHazard(s.ecs, defs.HazardTrap, at.X, at.Y, trapRadius, dmg, trapWarnTime, trapLifetime)
}

// summonAdds spawns swarm minions next to the boss, respecting the global
// enemy cap.
func (s *BossSystem) summonAdds(pos *component.Position, count int) {
	for i := 0; i < count; i++ {
		if len(s.ecs.Enemies) >= config.MaxEnemies {
			return
		}
		at := pos.Vec().Add(utils.FromAngle(s.rng.Angle()).Scale(s.rng.Range(30, 70)))
		at = utils.ClampToArena(at, config.ArenaRadius*config.EnemyClampScale)
		SpawnEnemy(s.ecs, s.rng, defs.BehaviorSwarm, s.ecs.Wave.Number, at.X, at.Y)
	}
}

func (s *BossSystem) bossShotDamage(enemy *component.Enemy) int {
	dmg := (8.0 + float64(s.ecs.Wave.Number)*0.9) * enemy.AttackMult
	if dmg < 1 {
		return 1
	}
	return int(dmg)
}
