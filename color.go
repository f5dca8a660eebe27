package hypercurve

import (
	"image/color"
	"math"
)

// DefaultCurveColor is the color of newly added curve edges.
var DefaultCurveColor = color.NRGBA{0, 0, 0, 255}

// AxisColors colors tesseract edges by the axis they run along.
var AxisColors = [4]color.NRGBA{
	X: {214, 39, 40, 255},
	Y: {44, 160, 44, 255},
	Z: {31, 119, 180, 255},
	W: {148, 103, 189, 255},
}

// Default colors for slow and fast curve segments.
var (
	DefaultLowSpeed  = color.NRGBA{30, 60, 200, 255}
	DefaultHighSpeed = color.NRGBA{230, 40, 30, 255}
)

// speedRamp compresses a normalized speed so that differences between slow
// segments remain visible. It maps [0, 1] onto [0, 1].
func speedRamp(s float64) float64 {
	return math.Log2(3*s+1) / 2
}

func lerpColor(a, b color.NRGBA, t float64, alpha uint8) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round((1-t)*float64(x) + t*float64(y)))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: alpha,
	}
}

// ColorBySpeed colors every edge between low and high according to its speed
// relative to the curve's speed range. Opacity is in [0, 1]. Stats must be
// current; curves without statistics are left unchanged.
func (c *Curve) ColorBySpeed(low, high color.NRGBA, opacity float64) {
	st := c.stats
	if len(st.Speed) != len(c.Edges) {
		return
	}
	alpha := uint8(math.Round(255 * min(max(opacity, 0), 1)))
	span := st.MaxSpeed - st.MinSpeed
	for i := range c.Edges {
		var s float64
		if span > 0 {
			s = (st.Speed[i] - st.MinSpeed) / span
		}
		c.Edges[i].Color = lerpColor(low, high, speedRamp(s), alpha)
	}
}
