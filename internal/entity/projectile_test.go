package entity

import (
	"math"
	"testing"

	"chosenoffset.com/kaiju/internal/core/vec"
)

func TestNewProjectileAimsAtTarget(t *testing.T) {
	p := NewProjectile(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 30, Y: 40})

	if math.Abs(p.Vel.X-4.8) > 1e-9 || math.Abs(p.Vel.Y-6.4) > 1e-9 {
		t.Errorf("Expected velocity (4.8, 6.4), got (%f, %f)", p.Vel.X, p.Vel.Y)
	}
	if p.Life != ProjectileLife {
		t.Errorf("Expected life %d, got %d", ProjectileLife, p.Life)
	}
}

func TestProjectileLifeDecreasesUntilDropped(t *testing.T) {
	p := NewProjectile(vec.Vec2{X: 10, Y: 500}, vec.Vec2{X: 11, Y: 500})

	prev := p.Life
	frames := 0
	for p.Update(1e6, 1e6) {
		if p.Life != prev-1 {
			t.Fatalf("Expected life %d, got %d", prev-1, p.Life)
		}
		prev = p.Life
		frames++
		if frames > ProjectileLife {
			t.Fatal("projectile outlived its life")
		}
	}

	if p.Life != 0 {
		t.Errorf("Expected life 0 when dropped, got %d", p.Life)
	}
	if frames != ProjectileLife-1 {
		t.Errorf("Expected %d surviving frames, got %d", ProjectileLife-1, frames)
	}
}

func TestProjectileDroppedOutsideBounds(t *testing.T) {
	p := NewProjectile(vec.Vec2{X: 400, Y: 5}, vec.Vec2{X: 400, Y: -100})

	if p.Update(800, 600) {
		t.Errorf("Expected projectile above the top edge to be dropped, pos=(%f, %f)", p.Pos.X, p.Pos.Y)
	}
}

func TestDegenerateProjectile(t *testing.T) {
	at := vec.Vec2{X: 500, Y: 750}
	p := NewProjectile(at, at)

	if !p.Stationary() {
		t.Fatalf("Expected stationary projectile, got velocity (%f, %f)", p.Vel.X, p.Vel.Y)
	}

	frames := 0
	for p.Update(800, 600) {
		frames++
		if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) {
			t.Fatal("projectile position became NaN")
		}
		if frames > ProjectileLife {
			t.Fatal("degenerate projectile never expired")
		}
	}

	if p.Pos != at {
		t.Errorf("Expected projectile to stay at %v, got %v", at, p.Pos)
	}
}
