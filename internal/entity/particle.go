package entity

import (
	"image/color"
	"math/rand"

	"chosenoffset.com/kaiju/internal/core/vec"
)

const (
	ParticleLife    = 30
	ParticleRadius  = 3
	ParticleDamping = 0.98
	ParticleSpread  = 10.0
)

// Hue ranges in degrees for the two particle kinds.
const (
	HitHueMin        = 10.0
	HitHueSpan       = 60.0
	ExplosionHueMin  = 10.0
	ExplosionHueSpan = 30.0
)

// Particle is a damped spark drawn as a small fading circle.
type Particle struct {
	Pos     vec.Vec2
	Vel     vec.Vec2
	Life    int
	MaxLife int
	Color   color.RGBA
}

// NewParticle creates a particle at pos with a random velocity in
// [-spread/2, spread/2) per axis and a hue drawn from [hueMin, hueMin+hueSpan).
func NewParticle(rng *rand.Rand, pos vec.Vec2, hueMin, hueSpan float64) *Particle {
	return &Particle{
		Pos: pos,
		Vel: vec.Vec2{
			X: (rng.Float64() - 0.5) * ParticleSpread,
			Y: (rng.Float64() - 0.5) * ParticleSpread,
		},
		Life:    ParticleLife,
		MaxLife: ParticleLife,
		Color:   hslColor(rng.Float64()*hueSpan + hueMin),
	}
}

// Update integrates one frame and reports whether the particle is alive.
func (p *Particle) Update() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel = p.Vel.Scale(ParticleDamping)
	p.Life--
	return p.Life > 0
}

// Alpha is the remaining life fraction.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

func (p *Particle) Draw(dc DrawContext) {
	dc.Renderer.FillCircle(dc.Screen, float32(p.Pos.X), float32(p.Pos.Y), ParticleRadius, withAlpha(p.Color, p.Alpha()))
}
