package hypercurve

import (
	"image/color"
	"slices"
)

// Edge connects two vertices of a [Mesh] by index.
type Edge struct {
	V0, V1 int
	Color  color.NRGBA
}

// Mesh is a wireframe: an owned vertex buffer and a fixed edge topology.
// Tesseracts, cubes, squares and curves are all meshes, and everything that
// moves or projects them does so through Mesh.
type Mesh struct {
	Vertices []Point
	Edges    []Edge
}

// Transformer is implemented by geometry whose vertices can be mapped. Cells
// of the unfolding and their curve copies are moved through this interface,
// so that both receive identical transforms.
type Transformer interface {
	Transform(fn func(Point) Point)
}

var _ Transformer = (*Mesh)(nil)

// Transform replaces every vertex v by fn(v).
func (m *Mesh) Transform(fn func(Point) Point) {
	for i, v := range m.Vertices {
		m.Vertices[i] = fn(v)
	}
}

// Project projects every vertex in place and returns the number of clipped
// vertices. See [Projector.Project].
func (m *Mesh) Project(pr Projector, orient Matrix) int {
	return pr.ProjectAll(m.Vertices, orient)
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: slices.Clone(m.Vertices),
		Edges:    slices.Clone(m.Edges),
	}
}

// Segment returns edge i as a line.
func (m Mesh) Segment(i int) Line {
	e := m.Edges[i]
	return Line{m.Vertices[e.V0], m.Vertices[e.V1]}
}

// Bounds returns the bounding box of the mesh's vertices.
func (m Mesh) Bounds() Box {
	return BoundingBox(m.Vertices)
}
