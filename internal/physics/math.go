// Package physics provides the sensor probes that measure distances to terrain.
package physics

import "math"

// Vector is a 2D world position or velocity. Y grows upwards.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Round rounds half up to the nearest integer, matching pixel snapping
// (-0.5 rounds to 0, 2.5 rounds to 3).
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FloorMod returns the non-negative remainder of a / b for b > 0.
// Go's % truncates, which would give negative indices for negative a.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// SinDeg returns the sine of an angle in degrees.
func SinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

// CosDeg returns the cosine of an angle in degrees.
func CosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

// SnapToNearest rounds angle to the nearest multiple of snapTo. Halfway values round up.
func SnapToNearest(angle, snapTo float64) float64 {
	return math.Floor(angle/snapTo+0.5) * snapTo
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
