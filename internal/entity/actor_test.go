package entity

import (
	"math"
	"math/rand"
	"testing"
)

func TestActorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		w := 100 + rng.Float64()*900
		h := 100 + rng.Float64()*700
		a := NewActor(rng.Float64()*w, rng.Float64()*h, (rng.Float64()-0.5)*16, (rng.Float64()-0.5)*16, 80, 40)

		for frame := 0; frame < 500; frame++ {
			a.Update(w, h)
			if a.X < 0 || a.X > w-a.Width {
				t.Fatalf("trial %d frame %d: x=%f outside [0, %f]", trial, frame, a.X, w-a.Width)
			}
			if a.Y < 0 || a.Y > h-a.Height {
				t.Fatalf("trial %d frame %d: y=%f outside [0, %f]", trial, frame, a.Y, h-a.Height)
			}
		}
	}
}

func TestActorBounceInvertsVelocity(t *testing.T) {
	a := NewActor(95, 10, 10, 0, 10, 10)
	a.Update(100, 100)

	if a.X != 90 {
		t.Errorf("Expected x clamped to 90, got %f", a.X)
	}
	if a.VX != -10 {
		t.Errorf("Expected vx -10 after bounce, got %f", a.VX)
	}
}

func TestActorPinnedWhenAreaTooSmall(t *testing.T) {
	a := NewActor(5, 5, 3, 3, 743, 369)
	for i := 0; i < 10; i++ {
		a.Update(200, 100)
		if a.X != 0 || a.Y != 0 {
			t.Fatalf("Expected actor pinned at origin, got (%f, %f)", a.X, a.Y)
		}
	}
}

func TestActorFlashCountsDown(t *testing.T) {
	a := NewActor(100, 100, 1, 1, 10, 10)
	a.Flash = 2

	a.Update(800, 600)
	a.Update(800, 600)
	a.Update(800, 600)

	if a.Flash != 0 {
		t.Errorf("Expected flash 0, got %d", a.Flash)
	}
}

func TestActorContainsIsExclusive(t *testing.T) {
	a := NewActor(100, 100, 0, 0, 200, 100)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"left edge", 100, 150, false},
		{"right edge", 300, 150, false},
		{"top edge", 150, 100, false},
		{"bottom edge", 150, 200, false},
		{"just inside left", 100.0001, 150, true},
		{"centre", 200, 150, true},
		{"outside", 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%f, %f) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestActorAccelerateClampsPreservingSign(t *testing.T) {
	a := NewActor(0, 0, 7.5, -7.5, 10, 10)
	a.Accelerate(1.1, 8)

	if a.VX != 8 {
		t.Errorf("Expected vx 8, got %f", a.VX)
	}
	if a.VY != -8 {
		t.Errorf("Expected vy -8, got %f", a.VY)
	}

	a = NewActor(0, 0, 4, -3, 10, 10)
	a.Accelerate(1.1, 8)
	if math.Abs(a.VX-4.4) > 1e-9 || math.Abs(a.VY+3.3) > 1e-9 {
		t.Errorf("Expected (4.4, -3.3), got (%f, %f)", a.VX, a.VY)
	}
}

func TestActorCenterIn(t *testing.T) {
	a := NewActor(0, 0, 4, 3, 100, 50)
	a.CenterIn(800, 600)

	c := a.Center()
	if c.X != 400 || c.Y != 300 {
		t.Errorf("Expected centre (400, 300), got (%f, %f)", c.X, c.Y)
	}
}
