package hypercurve

import "math"

// Box is an axis-aligned box in 4D.
type Box struct {
	Min, Max Vec4
}

// EmptyBox is the identity element of [Box.Union]. It contains no points.
var EmptyBox = Box{
	Min: Vec4{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Vec4{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// BoundingBox returns the smallest box enclosing pts. It returns [EmptyBox]
// for an empty slice.
func BoundingBox(pts []Point) Box {
	b := EmptyBox
	for _, pt := range pts {
		b = b.Add(pt)
	}
	return b
}

// Add returns the smallest box enclosing b and pt.
func (b Box) Add(pt Point) Box {
	for k := range 4 {
		b.Min[k] = min(b.Min[k], pt[k])
		b.Max[k] = max(b.Max[k], pt[k])
	}
	return b
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	for k := range 4 {
		b.Min[k] = min(b.Min[k], o.Min[k])
		b.Max[k] = max(b.Max[k], o.Max[k])
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	for k := range 4 {
		if b.Min[k] > b.Max[k] {
			return true
		}
	}
	return false
}

// Origin returns the minimum corner of the box.
func (b Box) Origin() Vec4 {
	return b.Min
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec4 {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Vec4 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Axis returns the range of the box along axis k.
func (b Box) Axis(k int) (lo, hi float64) {
	return b.Min[k], b.Max[k]
}

// Contains reports whether pt lies within the box, boundary included.
func (b Box) Contains(pt Point) bool {
	for k := range 4 {
		if pt[k] < b.Min[k] || pt[k] > b.Max[k] {
			return false
		}
	}
	return true
}
