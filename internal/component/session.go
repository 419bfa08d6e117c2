// internal/component/session.go
package component

// SessionPhase is the coarse run state. The sim only advances entities while
// the phase is PhaseWaveActive.
type SessionPhase int

const (
	PhaseWaveActive SessionPhase = iota
	PhaseBossRewardPending
	PhaseRewardTempChoice
	PhaseRewardPermChoice
	PhaseGameOver
)

// ActiveCard is one running temporary boss reward. WavesRemaining only drops
// at wave boundaries; it never ticks mid-wave.
type ActiveCard struct {
	Key            string
	WavesRemaining int
}

// Session is the singleton run-level state: score, difficulty and the boss
// reward pipeline.
type Session struct {
	Phase      SessionPhase
	Difficulty string

	Score      int
	Combo      int
	ComboTimer float64

	// Boss reward pipeline. LastTempKey is the previous temp pick, held
	// out of the next offer roll.
	PendingTempKeys []string
	PendingPermKeys []string
	LastTempKey     string
	ActiveCards     []ActiveCard
	PermStacks      map[string]int

	// Cached aggregate multipliers, recomputed whenever cards or stacks
	// change.
	DamageMult   float64
	SpeedMult    float64
	FireRateMult float64
	IncomingMult float64
	UltraCDMult  float64
	MagnetBonus  float64
}

// NewSession returns a session with neutral multipliers.
func NewSession(difficulty string) *Session {
	return &Session{
		Difficulty:   difficulty,
		PermStacks:   make(map[string]int),
		DamageMult:   1.0,
		SpeedMult:    1.0,
		FireRateMult: 1.0,
		IncomingMult: 1.0,
		UltraCDMult:  1.0,
	}
}
