package hypercurve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Component indices of a [Point].
const (
	X = 0
	Y = 1
	Z = 2
	W = 3
	// H is the projective component. It is 1 for points in world space and
	// holds the perspective divisor after projection.
	H = 4

	// Depth is the component that keeps the pre-division depth of a
	// projected point.
	Depth = W
)

// Point is a vertex in 4D homogeneous space: x, y, z, w and the projective
// component.
type Point [5]float64

// Pt returns the point (x, y, z, w) with a projective component of 1.
func Pt(x, y, z, w float64) Point {
	return Point{x, y, z, w, 1}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g; %g)", pt[X], pt[Y], pt[Z], pt[W], pt[H])
}

// Spatial returns the four spatial coordinates of the point as a vector.
func (pt Point) Spatial() Vec4 {
	return Vec4{pt[X], pt[Y], pt[Z], pt[W]}
}

func (pt Point) Translate(v Vec4) Point {
	return Point{
		pt[X] + v[X],
		pt[Y] + v[Y],
		pt[Z] + v[Z],
		pt[W] + v[W],
		pt[H],
	}
}

// Transform returns pt·m.
func (pt Point) Transform(m Matrix) Point {
	var out Point
	for j := range 5 {
		out[j] = pt[0]*m[0][j] + pt[1]*m[1][j] + pt[2]*m[2][j] + pt[3]*m[3][j] + pt[4]*m[4][j]
	}
	return out
}

// Sub computes p−o over the spatial components.
func (pt Point) Sub(o Point) Vec4 {
	return Vec4{
		pt[X] - o[X],
		pt[Y] - o[Y],
		pt[Z] - o[Z],
		pt[W] - o[W],
	}
}

// Lerp linearly interpolates between two points. All five components are
// interpolated, so projected points keep a consistent depth and divisor.
func (pt Point) Lerp(o Point, t float64) Point {
	var out Point
	for i := range pt {
		out[i] = pt[i] + t*(o[i]-pt[i])
	}
	return out
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

// Distance returns the euclidean distance between two points in 4D.
func (pt Point) Distance(o Point) float64 {
	return floats.Distance(pt[:W+1], o[:W+1], 2)
}

// DistanceSquared returns the squared euclidean distance between two points
// in 4D.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// Thickness scales base by the inverse depth of a projected point, so that
// lines and spheres shrink with distance from the camera.
func (pt Point) Thickness(base float64) float64 {
	return base / pt[Depth]
}

// IsInf reports whether at least one component is infinite.
func (pt Point) IsInf() bool {
	for _, v := range pt {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one component is NaN.
func (pt Point) IsNaN() bool {
	for _, v := range pt {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
