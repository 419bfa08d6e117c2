// internal/component/combat.go
package component

// Health tracks remaining and maximum hit points.
type Health struct {
	Value int
	Max   int
}
