package hypercurve

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("invalid tesseract size")

// Tesseract is a 4D hypercube centered on the origin.
//
// Vertex i has coordinate k equal to +Size[k]/2 if bit k of i is set and
// −Size[k]/2 otherwise. Edges join vertices that differ in exactly one bit
// and are colored by that bit's axis.
type Tesseract struct {
	Mesh
	Size Vec4
}

// NewTesseract returns a tesseract with the given extent along each axis.
func NewTesseract(size Vec4) (Tesseract, error) {
	for k, s := range size {
		if !(s > 0) {
			return Tesseract{}, fmt.Errorf("%w: extent %g along axis %d", ErrInvalidSize, s, k)
		}
	}

	t := Tesseract{
		Mesh: Mesh{
			Vertices: make([]Point, 16),
			Edges:    make([]Edge, 0, 32),
		},
		Size: size,
	}
	for i := range t.Vertices {
		var v Vec4
		for k := range 4 {
			v[k] = -size[k] / 2
			if i&(1<<k) != 0 {
				v[k] = size[k] / 2
			}
		}
		t.Vertices[i] = v.Point()
	}
	for i := range 16 {
		for k := range 4 {
			if j := i | 1<<k; j != i {
				t.Edges = append(t.Edges, Edge{i, j, AxisColors[k]})
			}
		}
	}
	return t, nil
}

// Clone returns an independent copy of the tesseract.
func (t Tesseract) Clone() Tesseract {
	return Tesseract{
		Mesh: t.Mesh.Clone(),
		Size: t.Size,
	}
}

// Boundary names one of the eight bounding hyperplanes of a tesseract: the
// hyperplane where coordinate Axis equals Sign·size/2.
type Boundary struct {
	Axis int
	Sign int
}

// Value returns the boundary's coordinate along its axis.
func (b Boundary) Value(size Vec4) float64 {
	return float64(b.Sign) * size[b.Axis] / 2
}

// Contains reports whether tesseract vertex id lies on the boundary.
func (b Boundary) Contains(id int) bool {
	return (id&(1<<b.Axis) != 0) == (b.Sign > 0)
}

func (b Boundary) String() string {
	sign := "+"
	if b.Sign < 0 {
		sign = "-"
	}
	return string("xyzw"[b.Axis]) + sign
}

// Indices of the cells produced by [Tesseract.Split].
const (
	CellWPos = iota
	CellWNeg
	CellZPos
	CellZNeg
	CellYNeg
	CellYPos
	CellXNeg
	CellXPos
)

// CellBoundaries lists the boundary of each cell, indexed by cell.
var CellBoundaries = [8]Boundary{
	CellWPos: {W, +1},
	CellWNeg: {W, -1},
	CellZPos: {Z, +1},
	CellZNeg: {Z, -1},
	CellYNeg: {Y, -1},
	CellYPos: {Y, +1},
	CellXNeg: {X, -1},
	CellXPos: {X, +1},
}
