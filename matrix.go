package hypercurve

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a 5×5 transform of homogeneous 4D points.
//
// Points are row vectors and are transformed as p·M. Consequently, A.Mul(B)
// is the transform that applies A first and B second:
//
//	p.Transform(A.Mul(B)) == p.Transform(A).Transform(B)
type Matrix [5][5]float64

// Identity is the identity transform.
var Identity = Matrix{
	{1, 0, 0, 0, 0},
	{0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 0, 1, 0},
	{0, 0, 0, 0, 1},
}

// Plane is one of the six coordinate planes of 4D space. Rotations in 4D
// happen in planes rather than about axes.
type Plane int

// The planes are listed in the order in which [Orientation.Matrix] composes
// them.
const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneZX
	PlaneXW
	PlaneYW
	PlaneZW
)

var planeAxes = [...][2]int{
	PlaneXY: {X, Y},
	PlaneYZ: {Y, Z},
	PlaneZX: {Z, X},
	PlaneXW: {X, W},
	PlaneYW: {Y, W},
	PlaneZW: {Z, W},
}

// Axes returns the two axes spanning the plane. A positive rotation turns the
// first axis towards the second.
func (p Plane) Axes() (a, b int) {
	ab := planeAxes[p]
	return ab[0], ab[1]
}

func (p Plane) String() string {
	const names = "xyzw"
	a, b := p.Axes()
	return string([]byte{names[a], names[b]})
}

// PlaneRotation returns the rotation by th radians in plane p. Axis a of the
// plane maps to a cos θ − b sin θ and axis b to a sin θ + b cos θ. All other
// components, including the projective one, are left untouched.
func PlaneRotation(p Plane, th float64) Matrix {
	a, b := p.Axes()
	sin, cos := math.Sincos(th)
	m := Identity
	m[a][a] = cos
	m[a][b] = sin
	m[b][a] = -sin
	m[b][b] = cos
	return m
}

func RotateXY(th float64) Matrix { return PlaneRotation(PlaneXY, th) }
func RotateYZ(th float64) Matrix { return PlaneRotation(PlaneYZ, th) }
func RotateZX(th float64) Matrix { return PlaneRotation(PlaneZX, th) }
func RotateXW(th float64) Matrix { return PlaneRotation(PlaneXW, th) }
func RotateYW(th float64) Matrix { return PlaneRotation(PlaneYW, th) }
func RotateZW(th float64) Matrix { return PlaneRotation(PlaneZW, th) }

// Translate returns the translation by v. Points move in proportion to their
// projective component, which is 1 for points in world space.
func Translate(v Vec4) Matrix {
	m := Identity
	m[H][X] = v[X]
	m[H][Y] = v[Y]
	m[H][Z] = v[Z]
	m[H][W] = v[W]
	return m
}

// RotateAbout returns the rotation by th radians in plane p about center.
func RotateAbout(p Plane, th float64, center Point) Matrix {
	c := center.Spatial()
	return Translate(c.Negate()).Mul(PlaneRotation(p, th)).Mul(Translate(c))
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for i := range 5 {
		for j := range 5 {
			var s float64
			for k := range 5 {
				s += m[i][k] * o[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := range 5 {
		for j := range 5 {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Dense returns a copy of m as a gonum matrix.
func (m Matrix) Dense() *mat.Dense {
	data := make([]float64, 0, 25)
	for _, row := range m {
		data = append(data, row[:]...)
	}
	return mat.NewDense(5, 5, data)
}

// IsRotation reports whether m is a proper rotation within tol: its rows are
// orthonormal and its determinant is +1.
func (m Matrix) IsRotation(tol float64) bool {
	d := m.Dense()
	var mmt mat.Dense
	mmt.Mul(d, d.T())
	ident := mat.NewDiagDense(5, []float64{1, 1, 1, 1, 1})
	if !mat.EqualApprox(&mmt, ident, tol) {
		return false
	}
	return math.Abs(mat.Det(d)-1) <= tol
}

func (m Matrix) IsNaN() bool {
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}
