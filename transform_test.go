package pando

import (
	"math"
	"testing"
)

func TestAffineConstructors(t *testing.T) {
	assertMatrix(t, "identity", Identity, Affine{1, 0, 0, 1, 0, 0})
	assertMatrix(t, "translate", Translate(10, 20), Affine{1, 0, 0, 1, 10, 20})
	assertMatrix(t, "scale", Scale(2, 3), Affine{2, 0, 0, 3, 0, 0})
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", Rotate(math.Pi/2), Affine{0, 1, -1, 0, 0, 0})
}

func TestAffineMulIdentity(t *testing.T) {
	m := Affine{2, 0.5, -1, 3, 10, 20}
	assertMatrix(t, "I*m", Identity.Mul(m), m)
	assertMatrix(t, "m*I", m.Mul(Identity), m)
}

func TestAffineMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Mul(Scale(2, 2))
	p := m.Apply(Vec2{1, 1})
	assertNear(t, "x", p.X, 12)
	assertNear(t, "y", p.Y, 2)

	// Translate first, then scale.
	m = Scale(2, 2).Mul(Translate(10, 0))
	p = m.Apply(Vec2{1, 1})
	assertNear(t, "x", p.X, 22)
	assertNear(t, "y", p.Y, 2)
}

func TestAffineInvert(t *testing.T) {
	m := Translate(30, -5).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular")
	}
	assertMatrix(t, "m*inv", m.Mul(inv), Identity)

	p := Vec2{7, -3}
	back := inv.Apply(m.Apply(p))
	assertNear(t, "x", back.X, p.X)
	assertNear(t, "y", back.Y, p.Y)
}

func TestAffineInvertSingular(t *testing.T) {
	inv, ok := Scale(0, 1).Invert()
	if ok {
		t.Error("zero scale reported invertible")
	}
	assertMatrix(t, "fallback", inv, Identity)
}

func TestAffineApplyVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Mul(Scale(2, 3))
	v := m.ApplyVector(Vec2{1, 1})
	if v != (Vec2{2, 3}) {
		t.Errorf("ApplyVector = %v", v)
	}
}

func TestAffineScene(t *testing.T) {
	m := Affine{1, 2, 3, 4, 5, 6}
	s := m.Scene()
	x, y := s.TransformPoint(1, 1)
	p := m.Apply(Vec2{1, 1})
	assertNear(t, "x", float64(x), p.X)
	assertNear(t, "y", float64(y), p.Y)
}

func TestAffineBounds(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
		want Rect
	}{
		{"identity", Identity, Rect{0, 0, 10, 20}},
		{"translate", Translate(5, 5), Rect{5, 5, 10, 20}},
		{"scale", Scale(2, 2), Rect{0, 0, 20, 40}},
		{"rot90", Rotate(math.Pi / 2), Rect{-20, 0, 20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Bounds(Size{10, 20})
			assertNear(t, "X", got.X, tt.want.X)
			assertNear(t, "Y", got.Y, tt.want.Y)
			assertNear(t, "Width", got.Width, tt.want.Width)
			assertNear(t, "Height", got.Height, tt.want.Height)
		})
	}
}
