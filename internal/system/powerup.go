// internal/system/powerup.go
package system

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"
)

// PowerUpSystem runs the pickup economy: the ambient director, drop rolls on
// kills, the boss loot guarantee, magnet pull and pickup application.
type PowerUpSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewPowerUpSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *PowerUpSystem {
	s := &PowerUpSystem{ecs: ecs, rng: rng, dispatcher: dispatcher}
	dispatcher.Subscribe(event.EnemyKilled, s)
	dispatcher.Subscribe(event.BossDefeated, s)
	return s
}

// OnEvent rolls loot for kills. Drop rolls ignore the director cap so boss
// guarantees and kill streaks always pay out.
func (s *PowerUpSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		payload, ok := e.Data.(event.KillPayload)
		if !ok {
			return
		}
		s.ecs.Wave.KillsSinceUltra++
		if s.rng.Float64() < config.PowerUpDropChance*defs.DifficultyModsFor(s.ecs.Session.Difficulty).PowerUp {
			s.dropAt(payload.X, payload.Y)
		}
	case event.BossDefeated:
		payload, ok := e.Data.(event.BossDefeatPayload)
		if !ok {
			return
		}
		// Bosses always pay out: one weapon plus at least one more pickup,
		// never a second weapon.
		weaponKey := s.rng.ChooseWeighted(defs.WeaponLootForWave(s.ecs.Wave.Number))
		SpawnPowerUp(s.ecs, defs.PowerUpWeapon, weaponKey, payload.X-20, payload.Y)
		s.dropFrom(defs.PowerUpBossBonusTable, payload.X+20, payload.Y)
		s.maybeDropUltra(payload.X, payload.Y+24)
	}
}

func (s *PowerUpSystem) dropAt(x, y float64) {
	s.dropFrom(defs.PowerUpDropTable, x, y)
}

func (s *PowerUpSystem) dropFrom(table []defs.LootEntry, x, y float64) {
	key := s.rng.ChooseWeighted(table)
	kind := defs.PowerUpKind(key)
	weaponKey := ""
	if kind == defs.PowerUpWeapon {
		weaponKey = s.rng.ChooseWeighted(defs.WeaponLootForWave(s.ecs.Wave.Number))
	}
	SpawnPowerUp(s.ecs, kind, weaponKey, x, y)
}

// maybeDropUltra applies the pity rules: ultra pickups appear from a minimum
// wave, then either on a wave gap or after enough kills without one.
func (s *PowerUpSystem) maybeDropUltra(x, y float64) {
	wave := s.ecs.Wave
	if wave.Number < config.UltraSpawnMinWave {
		return
	}
	if wave.Number-wave.LastUltraWave < config.UltraWaveGap && wave.KillsSinceUltra < config.UltraKillPity {
		return
	}
	SpawnPowerUp(s.ecs, defs.PowerUpUltra, "", x, y)
	wave.LastUltraWave = wave.Number
	wave.KillsSinceUltra = 0
}

func (s *PowerUpSystem) Update(deltaTime float64) {
	s.tickDirector(deltaTime)
	s.tickPickups(deltaTime)
}

// tickDirector seeds ambient pickups on a fixed cadence. Only director
// spawns honor the arena cap.
func (s *PowerUpSystem) tickDirector(deltaTime float64) {
	wave := s.ecs.Wave
	if !wave.Active {
		return
	}
	wave.PowerUpTimer += deltaTime
	if wave.PowerUpTimer < config.PowerUpSpawnInterval {
		return
	}
	wave.PowerUpTimer -= config.PowerUpSpawnInterval

	if len(s.ecs.PowerUps) >= config.PowerUpCap {
		return
	}
	chance := config.PowerUpSpawnChance * defs.DifficultyModsFor(s.ecs.Session.Difficulty).PowerUp
	if s.rng.Float64() >= chance {
		return
	}
	at := utils.FromAngle(s.rng.Angle()).Scale(s.rng.Range(40, config.ArenaRadius*0.85))
	key := s.rng.ChooseWeighted(defs.PowerUpDirectorTable)
	SpawnPowerUp(s.ecs, defs.PowerUpKind(key), "", at.X, at.Y)
}

// tickPickups expires, magnets and collects pickups.
func (s *PowerUpSystem) tickPickups(deltaTime float64) {
	player := s.ecs.Player
	playerPos := utils.Vec2{X: player.X, Y: player.Y}
	magnetRadius := config.MagnetRadiusSpecial + player.MagnetBonus + s.ecs.Session.MagnetBonus

	for id, pu := range s.ecs.PowerUps {
		pu.TTL -= deltaTime
		if pu.TTL <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}

		dist := utils.Dist(pos.Vec(), playerPos)
		if pu.Magnet && dist <= magnetRadius && dist > 1 {
			// Pull accelerates as the pickup closes in.
			pull := config.MagnetPullBaseSpeed * (1 + config.MagnetPullNearbyGain*(1-dist/magnetRadius))
			step := playerPos.Sub(pos.Vec()).Normalized().Scale(pull * deltaTime)
			pos.SetVec(pos.Vec().Add(step))
			dist = utils.Dist(pos.Vec(), playerPos)
		}

		pickupRadius := config.PickupRadiusNormal
		if pu.Kind.IsSpecial() {
			pickupRadius = config.PickupRadiusSpecial
		}
		if player.Alive() && dist <= pickupRadius+config.PlayerRadius {
			s.apply(pu.Kind, pu.WeaponKey)
			s.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pu.Kind})
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *PowerUpSystem) apply(kind defs.PowerUpKind, weaponKey string) {
	player := s.ecs.Player
	switch kind {
	case defs.PowerUpHeal:
		player.HP += config.HealAmount
		if player.HP > player.MaxHP {
			player.HP = player.MaxHP
		}
	case defs.PowerUpDamage:
		player.Damage += config.DamagePickupBonus
	case defs.PowerUpSpeed:
		player.Speed += config.SpeedPickupBonus
	case defs.PowerUpFireRate:
		player.FireRate -= config.FireRatePickupBonus
		if player.FireRate < config.FireRatePickupFloor {
			player.FireRate = config.FireRatePickupFloor
		}
	case defs.PowerUpShield:
		player.Shield += config.ShieldPoints
	case defs.PowerUpLaser:
		player.LaserUntil = s.ecs.GameTime + config.LaserDuration
	case defs.PowerUpVortex:
		player.VortexUntil = s.ecs.GameTime + config.VortexDuration
		player.VortexRadius = config.VortexRadius
		player.VortexDPS = config.VortexDPS
	case defs.PowerUpWeapon:
		if _, err := defs.WeaponByKey(weaponKey); err == nil {
			player.WeaponKey = weaponKey
		}
	case defs.PowerUpUltra:
		if player.UltraCharges < player.UltraMaxCharges {
			player.UltraCharges++
		}
	}
}
