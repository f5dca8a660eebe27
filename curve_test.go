package hypercurve

import (
	"errors"
	"math"
	"testing"
)

func TestNewCurveErrors(t *testing.T) {
	if _, err := NewCurve(nil, nil); !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("got error %v, want %v", err, ErrEmptyCurve)
	}
	if _, err := NewCurve([]Point{Pt(0, 0, 0, 0)}, []float64{0, 1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got error %v, want %v", err, ErrLengthMismatch)
	}
	_, err := NewCurve([]Point{Pt(0, 0, 0, 0), Pt(1, 0, 0, 0)}, []float64{1, 0})
	if !errors.Is(err, ErrTimeOrder) {
		t.Errorf("got error %v, want %v", err, ErrTimeOrder)
	}
}

func TestCurveAddPoint(t *testing.T) {
	c := mustCurve(t, []Point{Pt(0, 0, 0, 0)}, []float64{0})
	if len(c.Edges) != 0 {
		t.Fatalf("single point curve has %d edges", len(c.Edges))
	}
	if err := c.AddPoint(Pt(1, 0, 0, 0), 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPoint(Pt(2, 0, 0, 0), 1); err != nil {
		t.Fatal("equal timestamps were rejected:", err)
	}
	if err := c.AddPoint(Pt(3, 0, 0, 0), 0.5); !errors.Is(err, ErrTimeOrder) {
		t.Errorf("got error %v, want %v", err, ErrTimeOrder)
	}
	if c.Len() != 3 {
		t.Errorf("got %d vertices, want 3", c.Len())
	}
	diff(t, []Edge{{0, 1, DefaultCurveColor}, {1, 2, DefaultCurveColor}}, c.Edges)
	if c.TMin() != 0 || c.TMax() != 1 || c.Duration() != 1 {
		t.Errorf("got time range [%v, %v]", c.TMin(), c.TMax())
	}
}

func TestCurvePoint(t *testing.T) {
	c := mustCurve(t,
		[]Point{Pt(0, 0, 0, 0), Pt(1, 0, 0, 0), Pt(3, 2, 0, -2)},
		[]float64{0, 1, 3})

	tests := []struct {
		t    float64
		want Point
	}{
		{-1, Pt(0, 0, 0, 0)},
		{0, Pt(0, 0, 0, 0)},
		{0.25, Pt(0.25, 0, 0, 0)},
		{1, Pt(1, 0, 0, 0)},
		{2, Pt(2, 1, 0, -1)},
		{3, Pt(3, 2, 0, -2)},
		{10, Pt(3, 2, 0, -2)},
		{math.NaN(), Pt(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		assertNear(t, c.Point(tt.t), tt.want, 1e-12)
	}
}

func TestCurvePointContinuity(t *testing.T) {
	var pts []Point
	var times []float64
	for i := range 50 {
		ti := float64(i) * 0.1
		pts = append(pts, Pt(math.Cos(ti), math.Sin(ti), ti, math.Sin(2*ti)))
		times = append(times, ti)
	}
	c := mustCurve(t, pts, times)
	if err := c.UpdateStats(0.5, 0.1, 1); err != nil {
		t.Fatal(err)
	}

	const h = 1e-3
	limit := c.Stats().MaxSpeed*h + 1e-9
	for ts := c.TMin(); ts < c.TMax(); ts += h {
		if d := c.Point(ts).Distance(c.Point(ts + h)); d > limit {
			t.Fatalf("curve jumps by %v at t = %v", d, ts)
		}
	}
}

func TestCurveIndex(t *testing.T) {
	c := mustCurve(t,
		[]Point{Pt(0, 0, 0, 0), Pt(1, 0, 0, 0), Pt(3, 0, 0, 0)},
		[]float64{0, 1, 3})
	for _, tt := range []struct{ t, want float64 }{
		{-5, 0},
		{0.5, 0.5},
		{2, 1.5},
		{3, 2},
		{4, 2},
		{math.NaN(), 0},
	} {
		if got := c.Index(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Index(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestCurveSinglePoint(t *testing.T) {
	c := mustCurve(t, []Point{Pt(1, 2, 3, 4)}, []float64{7})
	for _, ts := range []float64{0, 7, 100} {
		diff(t, Pt(1, 2, 3, 4), c.Point(ts))
		if got := c.Index(ts); got != 0 {
			t.Errorf("Index(%v) = %v, want 0", ts, got)
		}
	}

	var empty Curve
	diff(t, Point{}, empty.Point(1))
}

func TestCurveClone(t *testing.T) {
	c := mustCurve(t,
		[]Point{Pt(0, 0, 0, 0), Pt(1, 1, 1, 1), Pt(2, 0, 2, 0)},
		[]float64{0, 1, 2})
	if err := c.UpdateStats(0.5, 0.1, 1); err != nil {
		t.Fatal(err)
	}
	cl := c.Clone()
	diff(t, c.Stats(), cl.Stats())

	cl.Transform(func(pt Point) Point { return pt.Translate(Vec(10, 0, 0, 0)) })
	cl.Edges[0].Color.R = 99
	diff(t, Pt(0, 0, 0, 0), c.Vertices[0])
	if c.Edges[0].Color.R == 99 {
		t.Error("modifying the clone's edges modified the original")
	}
}

func TestCurveMoveAxis(t *testing.T) {
	c := mustCurve(t,
		[]Point{Pt(0, 0, 0, 0), Pt(1, 1, 1, 1), Pt(2, 0, 2, -1)},
		[]float64{0, 1, 2})
	half := c.Clone()
	half.MoveAxis(W, 1, 0.5)
	diff(t, []Point{Pt(0, 0, 0, 0.5), Pt(1, 1, 1, 1), Pt(2, 0, 2, 0)}, half.Vertices)

	c.MoveAxis(Z, -3, 1)
	for _, v := range c.Vertices {
		if v[Z] != -3 {
			t.Errorf("vertex %s not moved to z = -3", v)
		}
	}

	// Landing on the target must be exact, whatever the starting value.
	var pts []Point
	var times []float64
	for i := range 100 {
		ti := float64(i) / 10
		pts = append(pts, Pt(0, 0, 0, 0.9*math.Cos(3*ti)))
		times = append(times, ti)
	}
	wavy := mustCurve(t, pts, times)
	wavy.MoveAxis(W, 1, 1)
	for i, v := range wavy.Vertices {
		if v[W] != 1 {
			t.Fatalf("vertex %d: w = %v, want exactly 1", i, v[W])
		}
	}
}
