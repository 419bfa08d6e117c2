// internal/utils/vec_test.go
package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecBasics(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	assert.InDelta(t, 5.0, v.Length(), 1e-9)
	assert.InDelta(t, 25.0, v.LengthSq(), 1e-9)

	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)

	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
}

func TestPerpIsOrthogonal(t *testing.T) {
	v := Vec2{X: 2, Y: 7}
	assert.InDelta(t, 0.0, v.Dot(v.Perp()), 1e-9)
}

func TestRotateQuarterTurn(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, 1e-9)
	assert.InDelta(t, 1.0, v.Y, 1e-9)
}

func TestPointSegmentDistance(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	// Perpendicular from the middle.
	assert.InDelta(t, 3.0, PointSegmentDistance(Vec2{X: 5, Y: 3}, a, b), 1e-9)
	// Beyond the end clamps to the endpoint.
	assert.InDelta(t, 5.0, PointSegmentDistance(Vec2{X: 13, Y: 4}, a, b), 1e-9)
	// Degenerate segment is a point distance.
	assert.InDelta(t, 5.0, PointSegmentDistance(Vec2{X: 3, Y: 4}, a, a), 1e-9)
}

func TestClampToArena(t *testing.T) {
	inside := Vec2{X: 10, Y: 10}
	assert.Equal(t, inside, ClampToArena(inside, 100))

	clamped := ClampToArena(Vec2{X: 300, Y: 400}, 100)
	assert.InDelta(t, 100.0, clamped.Length(), 1e-9)
	assert.InDelta(t, 60.0, clamped.X, 1e-9)
	assert.InDelta(t, 80.0, clamped.Y, 1e-9)
}

func TestIsoProjectRoundTrip(t *testing.T) {
	p := Vec2{X: 123.4, Y: -56.7}
	sx, sy := IsoProject(p, 1.0, 0.5)
	back := IsoUnproject(sx, sy, 1.0, 0.5)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}
