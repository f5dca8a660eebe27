package hypercurve

import "slices"

// Cube is one of the eight cells bounding a tesseract.
type Cube struct {
	Mesh
	Boundary Boundary
	// IDs holds the tesseract vertex id of every vertex, in increasing
	// order.
	IDs [8]int
}

// Cubes are the eight cells of a tesseract, indexed as in [CellBoundaries].
type Cubes [8]Cube

// Vertex returns the vertex that originated from tesseract vertex id, and
// whether the cube has such a vertex.
func (c Cube) Vertex(id int) (Point, bool) {
	i, ok := slices.BinarySearch(c.IDs[:], id)
	if !ok {
		return Point{}, false
	}
	return c.Vertices[i], true
}

// findEdge returns the cube's edge between tesseract vertices
// a and b.
func (c Cube) findEdge(a, b int) (Edge, bool) {
	for _, e := range c.Edges {
		if ea, eb := c.IDs[e.V0], c.IDs[e.V1]; (ea == a && eb == b) || (ea == b && eb == a) {
			return e, true
		}
	}
	return Edge{}, false
}

// Split returns the eight cells of the tesseract. Every cube owns copies of
// its eight vertices and of the twelve tesseract edges between them, so
// transforming a cube never affects the tesseract or the other cubes.
//
// Each tesseract vertex ends up in exactly four cubes, one per axis.
func (t Tesseract) Split() Cubes {
	var cubes Cubes
	for ci, b := range CellBoundaries {
		cube := Cube{
			Mesh: Mesh{
				Vertices: make([]Point, 0, 8),
				Edges:    make([]Edge, 0, 12),
			},
			Boundary: b,
		}
		local := make(map[int]int, 8)
		for id, v := range t.Vertices {
			if b.Contains(id) {
				local[id] = len(cube.Vertices)
				cube.IDs[len(cube.Vertices)] = id
				cube.Vertices = append(cube.Vertices, v)
			}
		}
		for _, e := range t.Edges {
			i0, ok0 := local[e.V0]
			i1, ok1 := local[e.V1]
			if ok0 && ok1 {
				cube.Edges = append(cube.Edges, Edge{i0, i1, e.Color})
			}
		}
		cubes[ci] = cube
	}
	return cubes
}

// Square is a face of a cube, used in the last stage of the unfolding.
type Square struct {
	Mesh
	// Cell is the index of the cube the square was cut from.
	Cell int
	// Face is the tesseract boundary that, together with the cell's
	// boundary, selects the face.
	Face Boundary
	// Normal is the axis perpendicular to the square once the tesseract has
	// been unfolded into 3D.
	Normal int
	// Curve is the index of the cell whose curve copy is drawn on the
	// square.
	Curve int
	// IDs holds the tesseract vertex ids of the corners, in cyclic order.
	IDs [4]int
}

// Vertex returns the corner that originated from tesseract vertex id.
func (s Square) Vertex(id int) (Point, bool) {
	i := slices.Index(s.IDs[:], id)
	if i < 0 {
		return Point{}, false
	}
	return s.Vertices[i], true
}

type squareFace struct {
	cell   int
	face   Boundary
	normal int
}

// squareFaces selects the six squares of the 2D net. Squares 0–2 are the z−
// faces of the y+, w− and x+ cells, squares 3 and 4 the y− faces of the w−
// and x+ cells, and square 5 is the face of the x+ cell that lies farthest
// from the center once unfolded. Together they show the curve projected onto
// all six coordinate planes.
var squareFaces = [6]squareFace{
	{CellYPos, Boundary{Z, -1}, Z},
	{CellWNeg, Boundary{Z, -1}, Z},
	{CellXPos, Boundary{Z, -1}, Z},
	{CellWNeg, Boundary{Y, -1}, Y},
	{CellXPos, Boundary{Y, -1}, Y},
	{CellXPos, Boundary{W, +1}, X},
}

// Split cuts the six squares of the 2D net out of the cubes. The cubes are
// expected to have been fully unfolded by [UnfoldCells]; Normal is only
// meaningful in that configuration.
func (cs *Cubes) Split() [6]Square {
	var out [6]Square
	for si, f := range squareFaces {
		cube := cs[f.cell]

		// The two axes spanning the face.
		var free []int
		for k := range 4 {
			if k != cube.Boundary.Axis && k != f.face.Axis {
				free = append(free, k)
			}
		}
		a, b := free[0], free[1]

		base := 0
		for _, bd := range []Boundary{cube.Boundary, f.face} {
			if bd.Sign > 0 {
				base |= 1 << bd.Axis
			}
		}
		ids := [4]int{
			base,
			base | 1<<a,
			base | 1<<a | 1<<b,
			base | 1<<b,
		}

		sq := Square{
			Mesh: Mesh{
				Vertices: make([]Point, 4),
				Edges:    make([]Edge, 4),
			},
			Cell:   f.cell,
			Face:   f.face,
			Normal: f.normal,
			Curve:  f.cell,
			IDs:    ids,
		}
		for i, id := range ids {
			sq.Vertices[i], _ = cube.Vertex(id)
			next := (i + 1) % 4
			sq.Edges[i] = Edge{V0: i, V1: next}
			if e, ok := cube.findEdge(id, ids[next]); ok {
				sq.Edges[i].Color = e.Color
			}
		}
		out[si] = sq
	}
	return out
}
