// Package vec holds the small amount of 2D vector math the game needs.
package vec

import "math"

// Vec2 represents a point or direction in canvas space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v.
// ok is false when v has no direction (zero length or non-finite); the
// returned vector is then the zero vector so callers never see NaN.
func (v Vec2) Normalize() (unit Vec2, ok bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Toward returns a velocity of the given speed pointing from 'from' to 'to'.
// A degenerate direction yields the zero vector.
func Toward(from, to Vec2, speed float64) Vec2 {
	dir, ok := to.Sub(from).Normalize()
	if !ok {
		return Vec2{}
	}
	return dir.Scale(speed)
}
