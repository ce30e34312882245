package vec

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	unit, ok := Vec2{X: 3, Y: 4}.Normalize()
	if !ok {
		t.Fatalf("expected ok for non-zero vector")
	}
	if math.Abs(unit.X-0.6) > 1e-12 || math.Abs(unit.Y-0.8) > 1e-12 {
		t.Errorf("expected (0.6, 0.8), got %+v", unit)
	}
	if math.Abs(unit.Len()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", unit.Len())
	}
}

func TestNormalizeZero(t *testing.T) {
	unit, ok := Vec2{}.Normalize()
	if ok {
		t.Fatalf("zero vector must not normalize")
	}
	if !unit.IsZero() {
		t.Errorf("expected zero vector, got %+v", unit)
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	if _, ok := (Vec2{X: math.Inf(1), Y: 1}).Normalize(); ok {
		t.Errorf("infinite vector must not normalize")
	}
	if _, ok := (Vec2{X: math.NaN(), Y: 1}).Normalize(); ok {
		t.Errorf("NaN vector must not normalize")
	}
}

func TestToward(t *testing.T) {
	v := Toward(Vec2{X: 500, Y: 750}, Vec2{X: 500, Y: 350}, 8)
	if v.X != 0 || v.Y != -8 {
		t.Errorf("expected (0, -8), got %+v", v)
	}

	v = Toward(Vec2{X: 10, Y: 10}, Vec2{X: 10, Y: 10}, 8)
	if !v.IsZero() {
		t.Errorf("degenerate direction should give zero velocity, got %+v", v)
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Errorf("degenerate direction produced NaN")
	}
}
