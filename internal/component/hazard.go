// internal/component/hazard.go
package component

import "go-arena-survival/internal/defs"

// Hazard is a transient area threat: traps, boss slams, beams and thunder
// lines. Circle hazards use Radius around the entity position; line hazards
// use the Start/End segment plus Radius as half-thickness.
type Hazard struct {
	Kind   defs.HazardKind
	Damage int
	Radius float64

	StartX, StartY float64
	EndX, EndY     float64

	Warn    float64 // telegraph time before the hazard arms
	TTL     float64 // active time after arming
	Age     float64
	HitDone bool // one-shot hazards stop damaging after the first hit
}

// Armed reports whether the telegraph has elapsed.
func (h Hazard) Armed() bool {
	return h.Age >= h.Warn
}
