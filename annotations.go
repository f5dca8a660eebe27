package hypercurve

// ArrowLookahead is how far ahead in time an arrow samples the curve to find
// its direction.
const ArrowLookahead = 0.01

// arrow is stored as a time rather than a position, so that it follows the
// curve when the curve is moved or projected.
type arrow struct {
	t    float64
	dims int
}

// Annotation is a directional marker placed in the middle of a run of
// constant dimensionality.
type Annotation struct {
	// Point is the position of the curve at the arrow's time.
	Point Point
	// Ahead is the position of the curve ArrowLookahead later.
	Ahead Point
	// Dims is the number of active axes of the run.
	Dims int
}

// Direction returns the forward direction of the curve at the annotation.
func (a Annotation) Direction() Vec4 {
	return a.Ahead.Sub(a.Point)
}

// computeAnnotations places one arrow at the temporal midpoint of every run
// and one marker at every switch.
func (c *Curve) computeAnnotations() {
	for _, r := range c.stats.Runs {
		mid := 0.5 * (c.times[r.Start] + c.times[r.End])
		c.arrows = append(c.arrows, arrow{t: mid, dims: r.Dims.Count()})
	}
	c.markers = append(c.markers, c.stats.Switches...)
}

// Arrows returns the arrows whose times are selected by sel, with positions
// resolved against the curve's current vertices. A nil sel selects all
// arrows.
func (c *Curve) Arrows(sel Selection) []Annotation {
	var out []Annotation
	for _, a := range c.arrows {
		if sel != nil && !sel.InRange(a.t) {
			continue
		}
		out = append(out, Annotation{
			Point: c.Point(a.t),
			Ahead: c.Point(a.t + ArrowLookahead),
			Dims:  a.dims,
		})
	}
	return out
}

// Markers returns the vertices at which the dimensionality label changes,
// restricted to those whose times are selected by sel. A nil sel selects all
// markers.
func (c *Curve) Markers(sel Selection) []Point {
	var out []Point
	for _, m := range c.markers {
		if sel != nil && !sel.InRange(c.times[m]) {
			continue
		}
		out = append(out, c.Vertices[m])
	}
	return out
}
