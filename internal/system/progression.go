// internal/system/progression.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"
)

const (
	comboWindow    = 3.0
	comboScoreStep = 0.1 // each combo level adds 10% score
	comboScoreMax  = 2.0
)

// ProgressionSystem owns the run-level state: score and combo, the temporary
// card lifecycle and the two-stage boss reward pipeline.
type ProgressionSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewProgressionSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *ProgressionSystem {
	s := &ProgressionSystem{ecs: ecs, rng: rng, dispatcher: dispatcher}
	dispatcher.Subscribe(event.EnemyKilled, s)
	dispatcher.Subscribe(event.BossDefeated, s)
	dispatcher.Subscribe(event.WaveEnded, s)
	return s
}

func (s *ProgressionSystem) OnEvent(e event.Event) {
	session := s.ecs.Session
	switch e.Type {
	case event.EnemyKilled:
		payload, ok := e.Data.(event.KillPayload)
		if !ok {
			return
		}
		s.scoreKill(payload.Kind)
	case event.BossDefeated:
		payload, ok := e.Data.(event.BossDefeatPayload)
		if !ok {
			return
		}
		s.scoreKill(payload.Kind)
	case event.WaveEnded:
		payload, ok := e.Data.(event.WavePayload)
		if !ok {
			return
		}
		s.advanceCards()
		if payload.BossWave && session.Phase != component.PhaseGameOver {
			session.Phase = component.PhaseBossRewardPending
		}
	}
}

func (s *ProgressionSystem) scoreKill(kind defs.BehaviorKind) {
	session := s.ecs.Session
	value := defs.ThreatValue[kind]
	if value == 0 {
		value = 1
	}
	mult := 1.0 + comboScoreStep*float64(session.Combo)
	if mult > comboScoreMax {
		mult = comboScoreMax
	}
	session.Score += int(float64(value) * 10 * mult)
	session.Combo++
	session.ComboTimer = comboWindow
}

func (s *ProgressionSystem) Update(deltaTime float64) {
	session := s.ecs.Session
	if session.ComboTimer > 0 {
		session.ComboTimer -= deltaTime
		if session.ComboTimer <= 0 {
			session.Combo = 0
		}
	}
}

// advanceCards ticks temporary cards down at the wave boundary. Cards only
// expire here, never mid-wave.
func (s *ProgressionSystem) advanceCards() {
	session := s.ecs.Session
	kept := session.ActiveCards[:0]
	for _, card := range session.ActiveCards {
		card.WavesRemaining--
		if card.WavesRemaining > 0 {
			kept = append(kept, card)
		}
	}
	session.ActiveCards = kept
	s.recompute()
}

// BeginRewardSelection rolls the temporary card options and opens the first
// reward stage. No-op unless a boss reward is pending.
func (s *ProgressionSystem) BeginRewardSelection() []string {
	session := s.ecs.Session
	if session.Phase != component.PhaseBossRewardPending {
		return nil
	}
	table := defs.TempCardTable()
	if session.LastTempKey != "" {
		kept := table[:0]
		for _, entry := range table {
			if entry.Key != session.LastTempKey {
				kept = append(kept, entry)
			}
		}
		table = kept
	}
	session.PendingTempKeys = s.rollDistinct(table, defs.RewardChoiceCount)
	session.Phase = component.PhaseRewardTempChoice
	return session.PendingTempKeys
}

// ChooseTemp activates the picked temporary card and advances to the
// permanent stage. Unknown or unoffered keys are ignored.
func (s *ProgressionSystem) ChooseTemp(key string) bool {
	session := s.ecs.Session
	if session.Phase != component.PhaseRewardTempChoice || !contains(session.PendingTempKeys, key) {
		return false
	}
	card, ok := defs.TempCardByKey(key)
	if !ok {
		return false
	}
	session.ActiveCards = append(session.ActiveCards, component.ActiveCard{
		Key:            card.Key,
		WavesRemaining: card.Waves,
	})
	session.LastTempKey = card.Key
	session.PendingTempKeys = nil
	session.PendingPermKeys = s.rollDistinct(defs.PermBoostTable(), defs.RewardChoiceCount)
	session.Phase = component.PhaseRewardPermChoice
	s.recompute()
	s.dispatcher.Dispatch(event.Event{Type: event.RewardChosen, Data: key})
	return true
}

// ChoosePerm applies the picked permanent boost and resumes play.
func (s *ProgressionSystem) ChoosePerm(key string) bool {
	session := s.ecs.Session
	if session.Phase != component.PhaseRewardPermChoice || !contains(session.PendingPermKeys, key) {
		return false
	}
	boost, ok := defs.PermBoostByKey(key)
	if !ok {
		return false
	}
	session.PermStacks[key]++

	player := s.ecs.Player
	player.Damage += boost.DamageBonus
	if boost.MaxHPBonus > 0 {
		player.MaxHP += boost.MaxHPBonus
		player.HP += boost.MaxHPBonus
	}
	player.UltraMaxCharges += boost.UltraCharges

	session.PendingPermKeys = nil
	session.Phase = component.PhaseWaveActive
	s.recompute()
	s.dispatcher.Dispatch(event.Event{Type: event.RewardChosen, Data: key})
	return true
}

// rollDistinct picks up to n distinct keys from a weighted table.
func (s *ProgressionSystem) rollDistinct(table []defs.LootEntry, n int) []string {
	picks := make([]string, 0, n)
	pool := append([]defs.LootEntry(nil), table...)
	for len(picks) < n && len(pool) > 0 {
		key := s.rng.ChooseWeighted(pool)
		picks = append(picks, key)
		for i, entry := range pool {
			if entry.Key == key {
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return picks
}

// recompute rebuilds the session's cached multipliers from active cards and
// permanent stacks.
func (s *ProgressionSystem) recompute() {
	session := s.ecs.Session
	session.DamageMult = 1.0
	session.SpeedMult = 1.0
	session.FireRateMult = 1.0
	session.IncomingMult = 1.0
	session.UltraCDMult = 1.0
	session.MagnetBonus = 0

	for _, active := range session.ActiveCards {
		card, ok := defs.TempCardByKey(active.Key)
		if !ok {
			continue
		}
		session.DamageMult *= card.DamageMult
		session.SpeedMult *= card.SpeedMult
		session.FireRateMult *= card.FireRateMult
		session.IncomingMult *= card.IncomingMult
		session.UltraCDMult *= card.UltraCDMult
	}

	for key, stacks := range session.PermStacks {
		boost, ok := defs.PermBoostByKey(key)
		if !ok || stacks <= 0 {
			continue
		}
		session.IncomingMult *= math.Pow(boost.IncomingMult, float64(stacks))
		session.MagnetBonus += boost.MagnetBonus * float64(stacks)
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
