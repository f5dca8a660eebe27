package hypercurve

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dims is a set of spatial axes, one bit per axis.
type Dims uint8

const (
	DimX Dims = 1 << X
	DimY Dims = 1 << Y
	DimZ Dims = 1 << Z
	DimW Dims = 1 << W

	AllDims = DimX | DimY | DimZ | DimW
)

// Count returns the number of axes in the set.
func (d Dims) Count() int {
	return bits.OnesCount8(uint8(d & AllDims))
}

// Has reports whether axis k is in the set.
func (d Dims) Has(k int) bool {
	return d&(1<<k) != 0
}

// String returns the axes in the set in xyzw order, for example "xw". The
// empty set is "".
func (d Dims) String() string {
	var sb strings.Builder
	for k, name := range "xyzw" {
		if d.Has(k) {
			sb.WriteRune(name)
		}
	}
	return sb.String()
}

// Run is a maximal stretch of vertices sharing a dimensionality label.
type Run struct {
	// Start and End are the first and last vertex of the run, inclusive.
	Start, End int
	Dims       Dims
	// Range is the bounding box of the run's vertices.
	Range Box
}

// Stats holds statistics derived from a curve by [Curve.UpdateStats].
type Stats struct {
	// Speed holds one entry per edge: the 4D distance between the edge's
	// endpoints divided by the time between them. Edges spanning no time
	// have speed 0.
	Speed     []float64
	MinSpeed  float64
	MaxSpeed  float64
	MeanSpeed float64

	// Dimensionality labels every vertex with the axes along which the
	// curve moves significantly around it.
	Dimensionality []Dims
	// Switches lists, in increasing order, the vertices whose label
	// differs from that of the previous vertex.
	Switches []int
	Runs     []Run
}

func (st Stats) clone() Stats {
	st.Speed = slices.Clone(st.Speed)
	st.Dimensionality = slices.Clone(st.Dimensionality)
	st.Switches = slices.Clone(st.Switches)
	st.Runs = slices.Clone(st.Runs)
	return st
}

// Stats returns the statistics computed by the last call to
// [Curve.UpdateStats]. The returned slices must not be modified.
func (c *Curve) Stats() Stats {
	return c.stats
}

func (c *Curve) resetDerived() {
	c.stats = Stats{}
	c.arrows = nil
	c.markers = nil
}

// UpdateStats recomputes the curve's statistics and annotations.
//
// kernelSize is the minimum duration of the sliding window used to label
// vertices. maxMovement and maxValue are fractions of the curve's extent
// along each axis: an axis is active in a window if the curve travels more
// than maxMovement·extent along it, or reaches beyond origin +
// maxValue·extent.
func (c *Curve) UpdateStats(kernelSize, maxMovement, maxValue float64) error {
	if !(kernelSize > 0) {
		return fmt.Errorf("%w: kernel size %g must be positive", ErrInvalidThreshold, kernelSize)
	}
	if !(maxMovement >= 0) {
		return fmt.Errorf("%w: max movement %g must not be negative", ErrInvalidThreshold, maxMovement)
	}
	if !(maxValue >= 0) {
		return fmt.Errorf("%w: max value %g must not be negative", ErrInvalidThreshold, maxValue)
	}
	if len(c.Vertices) == 0 {
		return ErrEmptyCurve
	}

	c.resetDerived()
	c.computeSpeed()
	c.computeDimensionality(kernelSize, maxMovement, maxValue)
	c.computeRuns()
	c.computeAnnotations()
	return nil
}

func (c *Curve) computeSpeed() {
	st := &c.stats
	st.Speed = make([]float64, len(c.Edges))
	for i, e := range c.Edges {
		dist := c.Vertices[e.V0].Distance(c.Vertices[e.V1])
		dt := c.times[e.V1] - c.times[e.V0]
		if dt > 0 {
			st.Speed[i] = dist / dt
		}
	}
	if len(st.Speed) > 0 {
		st.MinSpeed = floats.Min(st.Speed)
		st.MaxSpeed = floats.Max(st.Speed)
		st.MeanSpeed = stat.Mean(st.Speed, nil)
	}
}

// computeDimensionality labels each vertex with the smallest set of active
// axes seen by any window covering it. For every start vertex i the window
// [i, j] grows until it spans more than kernelSize; windows that never do so
// (towards the end of the curve) don't label anything. A window's label only
// replaces a vertex's label if it has strictly fewer axes, so labels never
// grow and, among equally small labels, the first one wins.
func (c *Curve) computeDimensionality(kernelSize, maxMovement, maxValue float64) {
	st := &c.stats
	n := len(c.Vertices)
	st.Dimensionality = make([]Dims, n)
	for i := range st.Dimensionality {
		st.Dimensionality[i] = AllDims
	}

	bounds := c.Bounds()
	size := bounds.Size()
	origin := bounds.Origin()
	absMovement := size.Mul(maxMovement)
	absValue := origin.Add(size.Mul(maxValue))

	for i := range n {
		win := EmptyBox
		for j := i; j < n; j++ {
			win = win.Add(c.Vertices[j])
			if c.times[j]-c.times[i] <= kernelSize {
				continue
			}

			var label Dims
			for k := range 4 {
				if win.Max[k]-win.Min[k] > absMovement[k] || win.Max[k] > absValue[k] {
					label |= 1 << k
				}
			}
			for k := i; k <= j; k++ {
				if label.Count() < st.Dimensionality[k].Count() {
					st.Dimensionality[k] = label
				}
			}
			break
		}
	}
}

func (c *Curve) computeRuns() {
	st := &c.stats
	dims := st.Dimensionality
	for i := 1; i < len(dims); i++ {
		if dims[i] != dims[i-1] {
			st.Switches = append(st.Switches, i)
		}
	}

	start := 0
	for _, end := range append(slices.Clone(st.Switches), len(dims)) {
		st.Runs = append(st.Runs, Run{
			Start: start,
			End:   end - 1,
			Dims:  dims[start],
			Range: BoundingBox(c.Vertices[start:end]),
		})
		start = end
	}
}
