// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle normalizes an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// IsoProject converts a world position to isometric screen offsets.
// The renderer adds the screen center itself.
func IsoProject(p Vec2, scaleX, scaleY float64) (float64, float64) {
	return (p.X - p.Y) * scaleX, (p.X + p.Y) * scaleY * 0.5
}

// IsoUnproject converts isometric screen offsets back to world coordinates.
func IsoUnproject(sx, sy, scaleX, scaleY float64) Vec2 {
	if scaleX == 0 || scaleY == 0 {
		return Vec2{}
	}
	a := sx / scaleX
	b := 2 * sy / scaleY
	return Vec2{X: (a + b) / 2, Y: (b - a) / 2}
}
