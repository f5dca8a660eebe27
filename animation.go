package hypercurve

// SplitAnimation divides the animation parameter u ∈ [0, 1] into n equal,
// consecutive sections and returns the progress of each:
//
//	phase[k] = clamp(u·n − k, 0, 1)
//
// Sections before the current one are 1, sections after it are 0, and at
// most one section is strictly between 0 and 1. Each entry is monotonic in
// u, so running u backwards plays the animation in reverse. It returns nil
// if n isn't positive.
func SplitAnimation(u float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for k := range out {
		out[k] = min(max(u*float64(n)-float64(k), 0), 1)
	}
	return out
}

// NumPhases is the number of phases of the unfolding animation.
const NumPhases = 6

// Phases is the progress of each phase of the unfolding animation, in the
// order in which they play.
type Phases struct {
	// Hide4D fades the tesseract into its eight cells.
	Hide4D float64
	// ProjectCurve4D flattens the curve copies onto their cells.
	ProjectCurve4D float64
	// Unfold4D folds the cells out into 3D space.
	Unfold4D float64
	// Hide3D fades the cells into the squares of the 2D net.
	Hide3D float64
	// ProjectCurve3D flattens the curve copies onto their squares.
	ProjectCurve3D float64
	// Unfold3D folds the squares out into a plane.
	Unfold3D float64
}

// PhasesAt returns the progress of every phase at animation parameter u.
func PhasesAt(u float64) Phases {
	p := SplitAnimation(u, NumPhases)
	return Phases{
		Hide4D:         p[0],
		ProjectCurve4D: p[1],
		Unfold4D:       p[2],
		Hide3D:         p[3],
		ProjectCurve3D: p[4],
		Unfold3D:       p[5],
	}
}

// Slice returns the phases in playing order.
func (p Phases) Slice() []float64 {
	return []float64{p.Hide4D, p.ProjectCurve4D, p.Unfold4D, p.Hide3D, p.ProjectCurve3D, p.Unfold3D}
}
