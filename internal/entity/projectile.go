package entity

import (
	"image/color"

	"chosenoffset.com/kaiju/internal/core/vec"
)

const (
	ProjectileSpeed  = 8.0
	ProjectileLife   = 100
	ProjectileRadius = 4
)

var (
	projectileOuter = color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
	projectileInner = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}
)

// Projectile flies in a straight line from its launch point.
type Projectile struct {
	Pos  vec.Vec2
	Vel  vec.Vec2
	Life int
}

// NewProjectile aims a projectile from one point to another. When both points
// coincide the projectile stays put and only expires by age.
func NewProjectile(from, to vec.Vec2) *Projectile {
	return &Projectile{
		Pos:  from,
		Vel:  vec.Toward(from, to, ProjectileSpeed),
		Life: ProjectileLife,
	}
}

// Stationary reports whether the projectile has no velocity.
func (p *Projectile) Stationary() bool {
	return p.Vel.IsZero()
}

// Update integrates one frame and reports whether the projectile should be
// kept: it must have life left and, unless stationary, lie strictly inside
// the bounds.
func (p *Projectile) Update(boundW, boundH float64) bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life--
	if p.Life <= 0 {
		return false
	}
	if p.Stationary() {
		return true
	}
	return p.Pos.X > 0 && p.Pos.X < boundW && p.Pos.Y > 0 && p.Pos.Y < boundH
}

// Alpha fades the projectile over its life.
func (p *Projectile) Alpha() float64 {
	return float64(p.Life) / ProjectileLife
}

func (p *Projectile) Draw(dc DrawContext) {
	a := p.Alpha()
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	dc.Renderer.FillCircle(dc.Screen, x, y, ProjectileRadius, withAlpha(projectileOuter, a))
	dc.Renderer.FillCircle(dc.Screen, x, y, ProjectileRadius*0.5, withAlpha(projectileInner, a))
}
