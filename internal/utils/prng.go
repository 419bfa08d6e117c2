// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-arena-survival/internal/defs"
)

// PRNGService wraps Go's standard random generator so the whole game can run
// on a predictable (seeded) source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Angle returns a random angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * 3.141592653589793
}

// Choose returns a uniformly random element of keys. Empty input returns "".
func (s *PRNGService) Choose(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[s.rng.Intn(len(keys))]
}

// ChooseWeighted performs a weighted random pick from a loot table.
// It sums the weights, draws a number in that range and walks the entries.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Key
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Key
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Key
}
