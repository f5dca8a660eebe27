package hypercurve

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0, 0, 0, 0), Pt(1, 1, 1, 1)}
	if got := l.Length(); got != 2 {
		t.Errorf("got length %v, want 2", got)
	}
	diff(t, l.Eval(0.5), Pt(0.5, 0.5, 0.5, 0.5))
	diff(t, l.Start(), Pt(0, 0, 0, 0))
	diff(t, l.End(), Pt(1, 1, 1, 1))
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0, 0, 0), Pt(10, 0, 0, 0)}

	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 0, 0, 3), 9, 0.5},
		{Pt(-2, 0, 0, 0), 4, 0},
		{Pt(12, 0, 1, 0), 5, 1},
		{Pt(2, 1, 1, 1), 3, 0.2},
	}
	for _, tt := range tests {
		distSq, pt := l.Nearest(tt.pt)
		if math.Abs(distSq-tt.distSq) > 1e-12 || math.Abs(pt-tt.t) > 1e-12 {
			t.Errorf("Nearest(%s) = (%v, %v), want (%v, %v)", tt.pt, distSq, pt, tt.distSq, tt.t)
		}
	}

	if d := l.Distance(Pt(5, 0, 0, 3)); d != 3 {
		t.Errorf("got distance %v, want 3", d)
	}
}

func TestLineNearestDegenerate(t *testing.T) {
	l := Line{Pt(1, 1, 1, 1), Pt(1, 1, 1, 1)}
	distSq, pt := l.Nearest(Pt(1, 1, 1, 3))
	if distSq != 4 || pt != 0 {
		t.Errorf("got (%v, %v), want (4, 0)", distSq, pt)
	}
}
