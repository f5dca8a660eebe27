package hypercurve

import "fmt"

// Simplify returns a copy of the curve with as few vertices as possible such
// that no removed vertex lies farther than maxDeviation from the simplified
// polyline, measured in 4D. It uses the Ramer–Douglas–Peucker algorithm over
// the whole curve as a single path.
//
// The result is a subsequence of the original vertices with their original
// timestamps; no points are moved or introduced, and the first and last
// vertices are always kept. A maxDeviation of 0 returns an unmodified copy.
// Statistics are not carried over; call [Curve.UpdateStats] on the result.
func (c *Curve) Simplify(maxDeviation float64) (*Curve, error) {
	if !(maxDeviation >= 0) {
		return nil, fmt.Errorf("%w: max deviation %g must not be negative", ErrInvalidThreshold, maxDeviation)
	}
	if maxDeviation == 0 || len(c.Vertices) <= 2 {
		out := c.Clone()
		out.resetDerived()
		return out, nil
	}

	keep := make([]bool, len(c.Vertices))
	keep[0] = true
	keep[len(keep)-1] = true
	c.rdp(0, len(c.Vertices)-1, maxDeviation*maxDeviation, keep)

	out := &Curve{}
	for i, k := range keep {
		if k {
			// Timestamps are already ordered, AddPoint can't fail.
			_ = out.AddPoint(c.Vertices[i], c.times[i])
		}
	}
	return out, nil
}

// rdp marks the vertices between first and last that must be kept. It
// recurses on an explicit stack so that long curves don't grow the goroutine
// stack.
func (c *Curve) rdp(first, last int, tolSq float64, keep []bool) {
	type span struct{ first, last int }
	stack := []span{{first, last}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.last-s.first < 2 {
			continue
		}

		seg := Line{c.Vertices[s.first], c.Vertices[s.last]}
		worst, worstDist := -1, tolSq
		for i := s.first + 1; i < s.last; i++ {
			if d, _ := seg.Nearest(c.Vertices[i]); d > worstDist {
				worst, worstDist = i, d
			}
		}
		if worst < 0 {
			continue
		}
		keep[worst] = true
		stack = append(stack, span{s.first, worst}, span{worst, s.last})
	}
}
