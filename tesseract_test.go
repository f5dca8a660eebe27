package hypercurve

import (
	"errors"
	"math"
	"testing"
)

var unitSize = Vec(2, 2, 2, 2)

func mustTesseract(t *testing.T, size Vec4) Tesseract {
	t.Helper()
	tess, err := NewTesseract(size)
	if err != nil {
		t.Fatal(err)
	}
	return tess
}

func TestNewTesseract(t *testing.T) {
	tess := mustTesseract(t, Vec(2, 4, 6, 8))
	if len(tess.Vertices) != 16 || len(tess.Edges) != 32 {
		t.Fatalf("got %d vertices and %d edges", len(tess.Vertices), len(tess.Edges))
	}
	diff(t, Pt(-1, -2, -3, -4), tess.Vertices[0])
	diff(t, Pt(1, 2, 3, 4), tess.Vertices[15])
	diff(t, Pt(1, -2, 3, -4), tess.Vertices[1<<X|1<<Z])

	for _, e := range tess.Edges {
		d := tess.Vertices[e.V1].Sub(tess.Vertices[e.V0])
		var axis, n int
		for k := range 4 {
			if d[k] != 0 {
				axis, n = k, n+1
			}
		}
		if n != 1 {
			t.Errorf("edge %v spans %d axes", e, n)
			continue
		}
		if e.Color != AxisColors[axis] {
			t.Errorf("edge %v along axis %d has color %v", e, axis, e.Color)
		}
	}
}

func TestNewTesseractInvalid(t *testing.T) {
	for _, size := range []Vec4{
		Vec(0, 1, 1, 1),
		Vec(1, -1, 1, 1),
		Vec(1, 1, math.NaN(), 1),
	} {
		if _, err := NewTesseract(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewTesseract(%v) returned %v, want %v", size, err, ErrInvalidSize)
		}
	}
}

func TestBoundary(t *testing.T) {
	var names []string
	for _, b := range CellBoundaries {
		names = append(names, b.String())
	}
	diff(t, []string{"w+", "w-", "z+", "z-", "y-", "y+", "x-", "x+"}, names)

	b := Boundary{Y, -1}
	if got := b.Value(Vec(2, 4, 6, 8)); got != -2 {
		t.Errorf("got %v, want -2", got)
	}
	if !b.Contains(0) || b.Contains(1<<Y) {
		t.Error("y- boundary contains the wrong vertices")
	}
}

func TestTesseractSplit(t *testing.T) {
	tess := mustTesseract(t, unitSize)
	cubes := tess.Split()

	var seen [16]int
	for ci, c := range cubes {
		if len(c.Vertices) != 8 || len(c.Edges) != 12 {
			t.Errorf("cube %d has %d vertices and %d edges", ci, len(c.Vertices), len(c.Edges))
		}
		b := CellBoundaries[ci]
		if c.Boundary != b {
			t.Errorf("cube %d has boundary %v, want %v", ci, c.Boundary, b)
		}
		for i, id := range c.IDs {
			seen[id]++
			if c.Vertices[i] != tess.Vertices[id] {
				t.Errorf("cube %d vertex %d is %s, want %s", ci, i, c.Vertices[i], tess.Vertices[id])
			}
			if c.Vertices[i][b.Axis] != b.Value(unitSize) {
				t.Errorf("cube %d vertex %s isn't on its boundary", ci, c.Vertices[i])
			}
			if v, ok := c.Vertex(id); !ok || v != c.Vertices[i] {
				t.Errorf("cube %d can't find vertex %d", ci, id)
			}
		}
		for i := range c.Edges {
			if l := c.Segment(i).Length(); l != 2 {
				t.Errorf("cube %d has an edge of length %v", ci, l)
			}
		}
	}
	for id, n := range seen {
		if n != 4 {
			t.Errorf("vertex %d is in %d cubes, want 4", id, n)
		}
	}

	// The cubes own their vertices.
	cubes[0].Vertices[0] = Pt(9, 9, 9, 9)
	if tess.Vertices[cubes[0].IDs[0]] == Pt(9, 9, 9, 9) {
		t.Error("modifying a cube modified the tesseract")
	}
	if _, ok := cubes[CellXPos].Vertex(0); ok {
		t.Error("x+ cube contains vertex 0")
	}
}

func TestTesseractClone(t *testing.T) {
	tess := mustTesseract(t, unitSize)
	cl := tess.Clone()
	cl.Vertices[3] = Pt(0, 0, 0, 0)
	if tess.Vertices[3] == cl.Vertices[3] {
		t.Error("modifying the clone modified the original")
	}
}

func TestCubesSplit(t *testing.T) {
	tess := mustTesseract(t, unitSize)
	cubes := tess.Split()
	UnfoldCells(1, &cubes, nil, unitSize)
	squares := cubes.Split()

	for i, sq := range squares {
		if len(sq.Vertices) != 4 || len(sq.Edges) != 4 {
			t.Fatalf("square %d has %d vertices and %d edges", i, len(sq.Vertices), len(sq.Edges))
		}
		if sq.Curve != sq.Cell {
			t.Errorf("square %d shows curve %d but belongs to cell %d", i, sq.Curve, sq.Cell)
		}
		for j, v := range sq.Vertices {
			// Flat along its normal.
			if math.Abs(v[sq.Normal]-sq.Vertices[0][sq.Normal]) > 1e-9 {
				t.Errorf("square %d isn't perpendicular to axis %d: %s", i, sq.Normal, v)
			}
			// Closed loop of unit edges.
			if l := sq.Segment(j).Length(); math.Abs(l-2) > 1e-9 {
				t.Errorf("square %d edge %d has length %v", i, j, l)
			}
			if sq.Edges[j].Color == (Edge{}).Color {
				t.Errorf("square %d edge %d wasn't colored", i, j)
			}
		}
	}

	diff(t, []int{CellYPos, CellWNeg, CellXPos, CellWNeg, CellXPos, CellXPos},
		[]int{squares[0].Curve, squares[1].Curve, squares[2].Curve, squares[3].Curve, squares[4].Curve, squares[5].Curve})
}
