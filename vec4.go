package hypercurve

import (
	"fmt"
	"math"
)

// Vec4 is a displacement in 4D space.
type Vec4 [4]float64

// Vec returns the vector ⟨x, y, z, w⟩.
func Vec(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

func (v Vec4) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v[X], v[Y], v[Z], v[W])
}

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) float64 {
	return v[X]*o[X] + v[Y]*o[Y] + v[Z]*o[Z] + v[W]*o[W]
}

// Hypot returns the magnitude of the vector.
func (v Vec4) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec4.Hypot].
func (v Vec4) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec4) Normalize() Vec4 {
	return v.Mul(1.0 / v.Hypot())
}

// Point returns the vector as a point with a projective component of 1.
func (v Vec4) Point() Point {
	return Point{v[X], v[Y], v[Z], v[W], 1}
}

// IsInf reports whether at least one component is infinite.
func (v Vec4) IsInf() bool {
	return math.IsInf(v[X], 0) || math.IsInf(v[Y], 0) || math.IsInf(v[Z], 0) || math.IsInf(v[W], 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec4) IsNaN() bool {
	return math.IsNaN(v[X]) || math.IsNaN(v[Y]) || math.IsNaN(v[Z]) || math.IsNaN(v[W])
}

// Add adds two vectors and returns the resulting vector.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[X] + o[X], v[Y] + o[Y], v[Z] + o[Z], v[W] + o[W]}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[X] - o[X], v[Y] - o[Y], v[Z] - o[Z], v[W] - o[W]}
}

func (v Vec4) Mul(f float64) Vec4 {
	return Vec4{v[X] * f, v[Y] * f, v[Z] * f, v[W] * f}
}

func (v Vec4) Div(f float64) Vec4 {
	return Vec4{v[X] / f, v[Y] / f, v[Z] / f, v[W] / f}
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v[X], -v[Y], -v[Z], -v[W]}
}
