// internal/utils/vec.go
package utils

import "math"

// Vec2 is a 2D vector in world space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Length() float64   { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalized returns a unit vector, or the zero vector for near-zero input.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates the vector by the given angle in radians.
func (v Vec2) Rotate(rad float64) Vec2 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Angle returns the vector's angle in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle builds a unit vector from an angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 { return a.Sub(b).Length() }

// PointSegmentDistance returns the distance from p to the segment a-b.
// Used for beam hits and swept projectile tests.
func PointSegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 < 1e-12 {
		return Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return Dist(p, closest)
}

// ClampToArena clamps a point into the circular arena of the given radius.
func ClampToArena(p Vec2, radius float64) Vec2 {
	d := p.Length()
	if d <= radius || d < 1e-9 {
		return p
	}
	return p.Scale(radius / d)
}
