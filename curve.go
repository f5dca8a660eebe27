package hypercurve

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyCurve       = errors.New("curve has no points")
	ErrLengthMismatch   = errors.New("number of vertices and timestamps differ")
	ErrTimeOrder        = errors.New("timestamps must not decrease")
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// Curve is a trajectory through 4D space. Each vertex carries a timestamp;
// vertices are stored in temporal order and consecutive vertices are joined
// by edges.
//
// Derived data (statistics, arrows and markers) is computed by
// [Curve.UpdateStats] and travels with the curve when it is cloned, so that
// copies which have been moved or projected still annotate correctly.
type Curve struct {
	Mesh

	times []float64

	stats   Stats
	arrows  []arrow
	markers []int
}

var _ Transformer = (*Curve)(nil)

// NewCurve returns a curve through vertices at the given times. Times must
// not decrease.
func NewCurve(vertices []Point, times []float64) (*Curve, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyCurve
	}
	if len(vertices) != len(times) {
		return nil, fmt.Errorf("%w: %d vertices, %d timestamps", ErrLengthMismatch, len(vertices), len(times))
	}
	c := &Curve{
		Mesh: Mesh{
			Vertices: make([]Point, 0, len(vertices)),
			Edges:    make([]Edge, 0, len(vertices)-1),
		},
		times: make([]float64, 0, len(times)),
	}
	for i, v := range vertices {
		if err := c.AddPoint(v, times[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddPoint appends a vertex at time t. t must not be earlier than the time
// of the last vertex.
func (c *Curve) AddPoint(pt Point, t float64) error {
	if n := len(c.times); n > 0 && t < c.times[n-1] {
		return fmt.Errorf("%w: %g after %g", ErrTimeOrder, t, c.times[n-1])
	}
	c.Vertices = append(c.Vertices, pt)
	c.times = append(c.times, t)
	if n := len(c.Vertices); n > 1 {
		c.Edges = append(c.Edges, Edge{n - 2, n - 1, DefaultCurveColor})
	}
	return nil
}

// Len returns the number of vertices.
func (c *Curve) Len() int {
	return len(c.Vertices)
}

// Times returns the timestamps of the vertices. The slice must not be
// modified.
func (c *Curve) Times() []float64 {
	return c.times
}

// TMin returns the time of the first vertex.
func (c *Curve) TMin() float64 {
	if len(c.times) == 0 {
		return 0
	}
	return c.times[0]
}

// TMax returns the time of the last vertex.
func (c *Curve) TMax() float64 {
	if len(c.times) == 0 {
		return 0
	}
	return c.times[len(c.times)-1]
}

func (c *Curve) Duration() float64 {
	return c.TMax() - c.TMin()
}

// Clone returns an independent copy of the curve, including its statistics
// and annotations.
func (c *Curve) Clone() *Curve {
	return &Curve{
		Mesh:    c.Mesh.Clone(),
		times:   slices.Clone(c.times),
		stats:   c.stats.clone(),
		arrows:  slices.Clone(c.arrows),
		markers: slices.Clone(c.markers),
	}
}

// bracket returns the indices of the two samples enclosing t and the
// fraction of the way from the first to the second. t must lie strictly
// between the first and the last timestamp.
func (c *Curve) bracket(t float64) (lo, hi int, frac float64) {
	lo, hi = 0, len(c.times)-1
	for hi-lo > 1 {
		mid := int(uint(lo+hi) >> 1)
		if c.times[mid] > t {
			hi = mid
		} else {
			lo = mid
		}
	}
	if dt := c.times[hi] - c.times[lo]; dt > 0 {
		frac = (t - c.times[lo]) / dt
	}
	return lo, hi, frac
}

// Point returns the position of the curve at time t, linearly interpolated
// between the two samples that bracket t. Times before the first sample
// return the first vertex and times after the last sample return the last
// vertex. A NaN time is treated like an early one. An empty curve returns
// the zero Point.
func (c *Curve) Point(t float64) Point {
	n := len(c.Vertices)
	if n == 0 {
		return Point{}
	}
	if !(t > c.times[0]) {
		return c.Vertices[0]
	}
	if t >= c.times[n-1] {
		return c.Vertices[n-1]
	}
	lo, hi, frac := c.bracket(t)
	return c.Vertices[lo].Lerp(c.Vertices[hi], frac)
}

// Index returns the fractional vertex index at time t: the index of the
// sample preceding t plus the interpolation fraction towards the next one.
// It is clamped to [0, Len()-1]; a NaN time yields 0.
func (c *Curve) Index(t float64) float64 {
	n := len(c.Vertices)
	if n == 0 {
		return 0
	}
	if !(t > c.times[0]) {
		return 0
	}
	if t >= c.times[n-1] {
		return float64(n - 1)
	}
	lo, hi, frac := c.bracket(t)
	return float64(lo) + frac*float64(hi-lo)
}

// MoveAxis pulls every vertex towards target along axis k:
// v[k] = (1−coeff)·v[k] + coeff·target. At coeff = 1 the curve lies exactly
// in the hyperplane v[k] = target.
func (c *Curve) MoveAxis(k int, target, coeff float64) {
	for i := range c.Vertices {
		c.Vertices[i][k] = (1-coeff)*c.Vertices[i][k] + coeff*target
	}
}
