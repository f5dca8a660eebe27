package hypercurve

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// wPlanes maps an axis to the plane it spans with w.
var wPlanes = [3]Plane{X: PlaneXW, Y: PlaneYW, Z: PlaneZW}

// Hinge is a rotation in a coordinate plane about a pivot, used to fold a
// cell of the tesseract about the face it shares with its neighbor.
type Hinge struct {
	Plane Plane
	Pivot Point
	Angle float64
}

// Matrix returns the hinge as a transform of points in world space.
func (h Hinge) Matrix() Matrix {
	return RotateAbout(h.Plane, h.Angle, h.Pivot)
}

// AxisHinge is a rotation about an arbitrary axis in x, y, z space through
// Anchor. The w and projective components are left untouched.
type AxisHinge struct {
	Anchor Point
	// Axis is the rotation axis; only its x, y and z components are used.
	// A positive angle rotates counter-clockwise when looking down the
	// axis.
	Axis  Vec4
	Angle float64
}

// Apply rotates pt about the hinge. A zero axis leaves pt unchanged.
func (h AxisHinge) Apply(pt Point) Point {
	n := math.Sqrt(h.Axis[X]*h.Axis[X] + h.Axis[Y]*h.Axis[Y] + h.Axis[Z]*h.Axis[Z])
	if n == 0 {
		return pt
	}
	sin, cos := math.Sincos(h.Angle / 2)
	q := quat.Number{
		Real: cos,
		Imag: sin * h.Axis[X] / n,
		Jmag: sin * h.Axis[Y] / n,
		Kmag: sin * h.Axis[Z] / n,
	}
	v := quat.Number{
		Imag: pt[X] - h.Anchor[X],
		Jmag: pt[Y] - h.Anchor[Y],
		Kmag: pt[Z] - h.Anchor[Z],
	}
	r := quat.Mul(quat.Mul(q, v), quat.Conj(q))
	pt[X] = r.Imag + h.Anchor[X]
	pt[Y] = r.Jmag + h.Anchor[Y]
	pt[Z] = r.Kmag + h.Anchor[Z]
	return pt
}

// MoveCurvesTo3D pulls each curve copy towards the boundary of its cell:
// curve i moves along the axis of CellBoundaries[i] by coeff times its
// distance to the boundary. Nil curves are skipped.
func MoveCurvesTo3D(coeff float64, curves *[8]*Curve, size Vec4) {
	for i, c := range curves {
		if c == nil {
			continue
		}
		b := CellBoundaries[i]
		c.MoveAxis(b.Axis, b.Value(size), coeff)
	}
}

// cellTransforms returns the transform that unfolds each cell at progress
// coeff.
//
// The w− cell stays in place and every other cell folds into its
// hyperplane. Cells on the x, y and z boundaries rotate in the plane their
// axis spans with w, about the face they share with the w− cell, by
// −sign·coeff·π/2, which turns them outwards. The w+ cell is attached to the
// y− cell: it follows the y− cell's fold and then folds once more about the
// face the two share.
func cellTransforms(coeff float64, size Vec4) [8]Matrix {
	var out [8]Matrix
	hinges := make([]Hinge, 8)
	for i, b := range CellBoundaries {
		if b.Axis == W {
			continue
		}
		var pivot Vec4
		pivot[b.Axis] = b.Value(size)
		pivot[W] = -size[W] / 2
		hinges[i] = Hinge{
			Plane: wPlanes[b.Axis],
			Pivot: pivot.Point(),
			Angle: -float64(b.Sign) * coeff * math.Pi / 2,
		}
		out[i] = hinges[i].Matrix()
	}
	out[CellWNeg] = Identity

	carrier := hinges[CellYNeg]
	var shared Vec4
	shared[Y] = CellBoundaries[CellYNeg].Value(size)
	shared[W] = size[W] / 2
	second := Hinge{
		Plane: carrier.Plane,
		Pivot: shared.Point().Transform(out[CellYNeg]),
		Angle: carrier.Angle,
	}
	out[CellWPos] = out[CellYNeg].Mul(second.Matrix())
	return out
}

// UnfoldCells folds the cells of a tesseract of the given size out into the
// hyperplane of the w− cell, at progress coeff ∈ [0, 1]. At coeff = 1 the
// cells form a Dali cross. curves[i] receives the same transform as
// cubes[i], so curves stay attached to their cells; nil curves are skipped.
func UnfoldCells(coeff float64, cubes *Cubes, curves *[8]*Curve, size Vec4) {
	for i, m := range cellTransforms(coeff, size) {
		if m == Identity {
			continue
		}
		fn := func(pt Point) Point { return pt.Transform(m) }
		cubes[i].Transform(fn)
		if curves != nil && curves[i] != nil {
			curves[i].Transform(fn)
		}
	}
}

// MoveCurvesTo2D pulls each curve copy onto the plane of its square: curve i
// moves along squares[i].Normal by coeff times its distance to the square.
// Nil curves are skipped.
func MoveCurvesTo2D(coeff float64, squares *[6]Square, curves *[6]*Curve) {
	for i, c := range curves {
		if c == nil {
			continue
		}
		sq := squares[i]
		c.MoveAxis(sq.Normal, sq.Vertices[0][sq.Normal], coeff)
	}
}

// Tesseract vertex ids of the edges the squares fold about.
const (
	// Shared by squares 1 and 3: w−, z−, y−, running along +x.
	foldA0, foldA1 = 0, 1 << X
	// Shared by squares 4 and 5: x+, y−, w+, running along −z.
	foldB0, foldB1 = 1<<X | 1<<W, 1<<X | 1<<Z | 1<<W
)

// UnfoldSquares folds the squares produced by [Cubes.Split] into the plane of
// the z− squares, at progress coeff ∈ [0, 1]. Squares 3, 4 and 5 fold about
// the edge squares 1 and 3 share; square 5 then folds about the edge it
// shares with square 4. curves[i] receives the same transforms as
// squares[i]; nil curves are skipped.
//
// The squares are folded in world space, before projection, so the hinge
// axes are the true edges of the unfolded cubes. Callers project the result
// like any other mesh.
func UnfoldSquares(coeff float64, squares *[6]Square, curves *[6]*Curve) {
	apply := func(h AxisHinge, idx ...int) {
		for _, i := range idx {
			squares[i].Transform(h.Apply)
			if curves != nil && curves[i] != nil {
				curves[i].Transform(h.Apply)
			}
		}
	}

	a0, _ := squares[1].Vertex(foldA0)
	a1, _ := squares[1].Vertex(foldA1)
	apply(AxisHinge{
		Anchor: a0,
		Axis:   a1.Sub(a0),
		Angle:  coeff * math.Pi / 2,
	}, 3, 4, 5)

	b0, _ := squares[4].Vertex(foldB0)
	b1, _ := squares[4].Vertex(foldB1)
	apply(AxisHinge{
		Anchor: b0,
		Axis:   b0.Sub(b1),
		Angle:  coeff * math.Pi / 2,
	}, 5)
}
