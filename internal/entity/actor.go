package entity

import (
	"image/color"
	"math"

	"chosenoffset.com/kaiju/internal/core/vec"
	"chosenoffset.com/kaiju/internal/render"
)

// ActorColor is drawn as a box when no sprite is available.
var ActorColor = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}

// Actor is the bouncing creature. Width and Height are fixed at construction.
type Actor struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	// Flash counts down the frames of the hit highlight.
	Flash int

	Color color.RGBA
}

// NewActor creates an actor of the given size at (x, y) moving at (vx, vy).
func NewActor(x, y, vx, vy, width, height float64) *Actor {
	return &Actor{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Width:  width,
		Height: height,
		Color:  ActorColor,
	}
}

// Update moves the actor one frame inside a boundW x boundH area, reflecting
// off the edges. The position always ends in [0, bound-size]; when the area
// is smaller than the actor it is pinned to 0.
func (a *Actor) Update(boundW, boundH float64) {
	a.X += a.VX
	a.Y += a.VY

	maxX := math.Max(0, boundW-a.Width)
	if a.X <= 0 || a.X >= maxX {
		a.VX = -a.VX
		a.X = clamp(a.X, 0, maxX)
	}

	maxY := math.Max(0, boundH-a.Height)
	if a.Y <= 0 || a.Y >= maxY {
		a.VY = -a.VY
		a.Y = clamp(a.Y, 0, maxY)
	}

	if a.Flash > 0 {
		a.Flash--
	}
}

// Center returns the centre of the bounding box.
func (a *Actor) Center() vec.Vec2 {
	return vec.Vec2{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Origin returns the top-left corner.
func (a *Actor) Origin() vec.Vec2 {
	return vec.Vec2{X: a.X, Y: a.Y}
}

// Contains reports whether (x, y) lies strictly inside the bounding box.
// Points on an edge do not count.
func (a *Actor) Contains(x, y float64) bool {
	return x > a.X && x < a.X+a.Width && y > a.Y && y < a.Y+a.Height
}

// Accelerate multiplies both velocity components by factor and clamps each
// to |v| <= maxSpeed, keeping its sign.
func (a *Actor) Accelerate(factor, maxSpeed float64) {
	a.VX = clampSpeed(a.VX*factor, maxSpeed)
	a.VY = clampSpeed(a.VY*factor, maxSpeed)
}

// CenterIn places the actor in the middle of a boundW x boundH area.
func (a *Actor) CenterIn(boundW, boundH float64) {
	a.X = boundW/2 - a.Width/2
	a.Y = boundH/2 - a.Height/2
}

func (a *Actor) Draw(dc DrawContext) {
	if dc.Sprite == nil {
		dc.Renderer.FillRect(dc.Screen, float32(a.X), float32(a.Y), float32(a.Width), float32(a.Height), a.Color)
		return
	}

	sx, sy := dc.scale()
	op := render.NewDrawImageOptions()
	op.GeoM.Scale(1/sx, 1/sy)
	op.GeoM.Translate(a.X, a.Y)
	op.Glow = a.Flash > 0
	dc.Screen.DrawImage(dc.Sprite, op)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampSpeed(v, maxSpeed float64) float64 {
	if math.Abs(v) > maxSpeed {
		return math.Copysign(maxSpeed, v)
	}
	return v
}
