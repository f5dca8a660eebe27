package hypercurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	for i := range got {
		if d := got[i] - want[i]; d > epsilon || d < -epsilon {
			t.Fatalf("got %s, expected %s", got, want)
		}
	}
}

func mustCurve(t *testing.T, pts []Point, times []float64) *Curve {
	t.Helper()
	c, err := NewCurve(pts, times)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
