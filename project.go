package hypercurve

const defaultNear = 1e-3

// Projector projects 4D points into 3D with a perspective camera.
type Projector struct {
	// Camera is the camera position. Its projective component should be 0,
	// so that subtracting it leaves the point's projective component intact.
	Camera Point
	// Projection is a fixed 4D→3D perspective matrix. Its output keeps the
	// depth in component Depth and the perspective divisor in component H.
	Projection Matrix
	// Near is the smallest admissible depth and divisor. Points closer to the
	// camera plane, or behind it, are clipped to Near. Zero selects a small
	// default.
	Near float64
}

// DefaultProjector returns a projector whose camera sits at distance on the
// negative w axis and looks towards +w. x, y and z are scaled by focal; the
// camera-relative w becomes both the depth and the perspective divisor.
func DefaultProjector(distance, focal float64) Projector {
	var p Matrix
	p[X][X] = focal
	p[Y][Y] = focal
	p[Z][Z] = focal
	p[W][Depth] = 1
	p[W][H] = 1
	return Projector{
		Camera:     Point{0, 0, 0, -distance, 0},
		Projection: p,
	}
}

// Project transforms pt by orient, moves it into camera space, applies the
// perspective projection and divides x, y and z by the divisor. The depth
// and divisor keep their pre-division values; renderers use them to scale
// line thickness.
//
// A point on or behind the camera plane can't be divided meaningfully. It
// is clipped to the near plane and Project reports false.
func (pr Projector) Project(pt Point, orient Matrix) (Point, bool) {
	v := pt.Transform(orient)
	for i := range v {
		v[i] -= pr.Camera[i]
	}
	v = v.Transform(pr.Projection)

	near := pr.Near
	if near <= 0 {
		near = defaultNear
	}
	ok := true
	if !(v[Depth] >= near) {
		v[Depth] = near
		ok = false
	}
	if !(v[H] >= near) {
		v[H] = near
		ok = false
	}

	v[X] /= v[H]
	v[Y] /= v[H]
	v[Z] /= v[H]
	return v, ok
}

// ProjectAll projects pts in place and returns the number of points that had
// to be clipped.
func (pr Projector) ProjectAll(pts []Point, orient Matrix) (clipped int) {
	for i, pt := range pts {
		var ok bool
		pts[i], ok = pr.Project(pt, orient)
		if !ok {
			clipped++
		}
	}
	return clipped
}
