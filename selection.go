package hypercurve

import "math"

// Selection decides which parts of a curve, by time, are of interest.
type Selection interface {
	InRange(t float64) bool
}

// TimeRange selects the closed interval [Start, End].
type TimeRange struct {
	Start, End float64
}

func (r TimeRange) InRange(t float64) bool {
	return t >= r.Start && t <= r.End
}

// All selects every time.
var All Selection = TimeRange{math.Inf(-1), math.Inf(1)}
