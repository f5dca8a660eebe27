package hypercurve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0, 0, 0).Translate(Vec(-10, 0, 2, 1)), Pt(-10, 0, 2, 1))
	diff(t, Pt(1, 2, 3, 4).Sub(Pt(1, 1, 1, 1)), Vec(0, 1, 2, 3))
	diff(t, Pt(0, 0, 0, 0).Midpoint(Pt(2, 4, 6, 8)), Pt(1, 2, 3, 4))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10, 0, 0)
	p2 := Pt(0, 5, 0, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	// The projective component doesn't contribute.
	p3 := Point{1, 1, 1, 1, 7}
	p4 := Point{2, 2, 2, 2, 1}
	if d := p3.Distance(p4); d != 2 {
		t.Errorf("got distance %v, want 2", d)
	}
	if d := p3.DistanceSquared(p4); d != 4 {
		t.Errorf("got squared distance %v, want 4", d)
	}
}

func TestPointLerpKeepsDivisor(t *testing.T) {
	a := Point{0, 0, 0, 2, 2}
	b := Point{2, 2, 2, 4, 4}
	diff(t, a.Lerp(b, 0.5), Point{1, 1, 1, 3, 3})
}

func TestPointIsNaN(t *testing.T) {
	if Pt(1, 2, 3, 4).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(1, 2, math.NaN(), 4).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
	if !(Point{0, 0, 0, 0, math.Inf(1)}).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
}

func TestVec4(t *testing.T) {
	v := Vec(1, 2, 2, 4)
	if h := v.Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	if d := v.Dot(Vec(1, 0, 0, 1)); d != 5 {
		t.Errorf("got dot product %v, want 5", d)
	}
	diff(t, v.Normalize().Hypot(), 1.0, approx)
	diff(t, v.Negate().Add(v), Vec4{})
	diff(t, v.Point(), Pt(1, 2, 2, 4))
}
