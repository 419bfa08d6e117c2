// internal/system/wave.go
package system

import (
	"log"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"
)

const (
	spawnDripInterval = 0.5
	bossEscortCount   = 3
)

// WaveSystem is the spawn director: it plans wave composition from the
// class tables, drips spawns under the enemy cap, schedules bosses on the
// cadence and detects wave clear.
type WaveSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, rng: rng, dispatcher: dispatcher}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave

	if !wave.Active {
		wave.CooldownTimer -= deltaTime
		if wave.CooldownTimer <= 0 {
			s.startWave()
		}
		return
	}

	s.dripSpawns(deltaTime)

	if len(wave.PendingSpawns) == 0 && len(s.ecs.Enemies) == 0 {
		s.endWave()
	}
}

func (s *WaveSystem) startWave() {
	wave := s.ecs.Wave
	wave.Number++
	wave.Active = true
	wave.BossWave = wave.Number%config.BossWaveInterval == 0
	wave.SpawnTimer = 0

	if wave.BossWave {
		boss := s.pickBoss()
		at := s.rimPosition()
		SpawnEnemy(s.ecs, s.rng, boss, wave.Number, at.X, at.Y)
		wave.LastBoss = boss
		wave.PendingSpawns = s.composeEscort()
		log.Printf("wave %d: boss %s", wave.Number, boss)
	} else {
		wave.PendingSpawns = s.composeWave()
		log.Printf("wave %d: %d spawns", wave.Number, len(wave.PendingSpawns))
	}

	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WavePayload{
		Number: wave.Number, BossWave: wave.BossWave,
	}})
}

func (s *WaveSystem) endWave() {
	wave := s.ecs.Wave
	wave.Active = false
	wave.CooldownTimer = config.WaveCooldown
	s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WavePayload{
		Number: wave.Number, BossWave: wave.BossWave,
	}})
}

// pickBoss draws from the roster, never repeating the previous boss.
func (s *WaveSystem) pickBoss() defs.BehaviorKind {
	pool := make([]defs.BehaviorKind, 0, len(defs.BossRoster))
	for _, kind := range defs.BossRoster {
		if kind == s.ecs.Wave.LastBoss && len(defs.BossRoster) > 1 {
			continue
		}
		pool = append(pool, kind)
	}
	return pool[s.rng.Intn(len(pool))]
}

// composeWave builds the spawn list for a normal wave: weighted class picks
// over the unlocked classes, with a share cap so no single class dominates.
func (s *WaveSystem) composeWave() []defs.BehaviorKind {
	wave := s.ecs.Wave.Number
	mods := defs.DifficultyModsFor(s.ecs.Session.Difficulty)

	total := int(float64(6+wave*2) * mods.Spawn)
	if total > 26 {
		total = 26
	}
	if total < 4 {
		total = 4
	}
	maxPerClass := int(float64(total)*defs.MaxClassShare) + 1

	var unlocked []defs.SpawnClass
	for _, class := range defs.SpawnClasses {
		if wave >= class.UnlockWave {
			unlocked = append(unlocked, class)
		}
	}

	spawns := make([]defs.BehaviorKind, 0, total)
	taken := make(map[string]int)
	for len(spawns) < total {
		class, ok := s.pickClass(unlocked, taken, maxPerClass)
		if !ok {
			break
		}
		taken[class.Key]++
		kind := class.Members[s.rng.Intn(len(class.Members))]
		spawns = append(spawns, kind)
	}
	return spawns
}

func (s *WaveSystem) pickClass(classes []defs.SpawnClass, taken map[string]int, maxPerClass int) (defs.SpawnClass, bool) {
	total := 0.0
	for _, class := range classes {
		if taken[class.Key] >= maxPerClass {
			continue
		}
		total += class.Weight
	}
	if total <= 0 {
		return defs.SpawnClass{}, false
	}
	r := s.rng.Float64() * total
	for _, class := range classes {
		if taken[class.Key] >= maxPerClass {
			continue
		}
		if r < class.Weight {
			return class, true
		}
		r -= class.Weight
	}
	return defs.SpawnClass{}, false
}

// composeEscort is the small trash mix accompanying a boss.
func (s *WaveSystem) composeEscort() []defs.BehaviorKind {
	escort := make([]defs.BehaviorKind, 0, bossEscortCount)
	for i := 0; i < bossEscortCount; i++ {
		if s.rng.Float64() < 0.5 {
			escort = append(escort, defs.BehaviorChaser)
		} else {
			escort = append(escort, defs.BehaviorRanged)
		}
	}
	return escort
}

// dripSpawns feeds pending spawns into the arena under the enemy cap.
func (s *WaveSystem) dripSpawns(deltaTime float64) {
	wave := s.ecs.Wave
	if len(wave.PendingSpawns) == 0 {
		return
	}
	wave.SpawnTimer -= deltaTime
	if wave.SpawnTimer > 0 {
		return
	}
	wave.SpawnTimer = spawnDripInterval

	for len(wave.PendingSpawns) > 0 && len(s.ecs.Enemies) < config.MaxEnemies {
		kind := wave.PendingSpawns[0]
		wave.PendingSpawns = wave.PendingSpawns[1:]
		at := s.rimPosition()
		SpawnEnemy(s.ecs, s.rng, kind, wave.Number, at.X, at.Y)
	}
}

func (s *WaveSystem) rimPosition() utils.Vec2 {
	return utils.FromAngle(s.rng.Angle()).Scale(config.ArenaRadius * 0.92)
}
