package hypercurve

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var ErrInvalidScene = errors.New("invalid scene")

// Scene is the state a frame is computed from. Callers build a new Scene
// whenever the camera, the orientation or the animation changes; a frame
// never observes a scene that is modified while it is being computed.
type Scene struct {
	Orientation Orientation
	Projector   Projector
	// Size is the extent of the tesseract along each axis.
	Size Vec4
	// Unfolding is the animation parameter in [0, 1]. 0 shows the
	// tesseract, 1 the fully unfolded net.
	Unfolding float64
	// SimpleDaliCross fades out the cells that aren't part of the simple
	// Dali cross (w−, z+, y+ and x+) and hides their curves.
	SimpleDaliCross bool
	// VisibilityMask highlights cells: if it is non-zero, cells whose bit
	// isn't set are drawn at a tenth of their opacity.
	VisibilityMask uint8
	// Simplified selects the simplified source curve, if there is one.
	Simplified bool

	HideTesseract bool
	HideCurve     bool

	// Colors of slow and fast curve segments. If both are zero,
	// DefaultLowSpeed and DefaultHighSpeed are used.
	LowSpeed, HighSpeed color.NRGBA
}

// Validate reports whether the scene can be rendered.
func (s Scene) Validate() error {
	if !(s.Unfolding >= 0 && s.Unfolding <= 1) {
		return fmt.Errorf("%w: unfolding %g outside [0, 1]", ErrInvalidScene, s.Unfolding)
	}
	for k, v := range s.Size {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %w: extent %g along axis %d", ErrInvalidScene, ErrInvalidSize, v, k)
		}
	}
	if s.Projector.Projection.IsNaN() || s.Projector.Camera.IsNaN() || s.Projector.Camera.IsInf() {
		return fmt.Errorf("%w: projector isn't finite", ErrInvalidScene)
	}
	return nil
}

func (s Scene) speedColors() (low, high color.NRGBA) {
	if s.LowSpeed == (color.NRGBA{}) && s.HighSpeed == (color.NRGBA{}) {
		return DefaultLowSpeed, DefaultHighSpeed
	}
	return s.LowSpeed, s.HighSpeed
}

// visibility returns the opacity factor of cell i.
func (s Scene) visibility(i int) float64 {
	if s.VisibilityMask == 0 || s.VisibilityMask&(1<<i) != 0 {
		return 1
	}
	return 0.1
}

// inSimpleCross reports whether cell i is part of the simple Dali cross.
func inSimpleCross(i int) bool {
	switch i {
	case CellWNeg, CellZPos, CellYPos, CellXPos:
		return true
	default:
		return false
	}
}

// Cell is a cube of the unfolding together with its copy of the curve, in
// projected space.
type Cell struct {
	Index int
	Cube  Cube
	// Curve is nil if the cell's curve isn't drawn.
	Curve        *Curve
	CubeOpacity  float64
	CurveOpacity float64
	// Annotate reports whether the curve's arrows and markers should be
	// drawn.
	Annotate bool
}

// Plot is a square of the 2D net together with the curve drawn on it, in
// projected space.
type Plot struct {
	Square Square
	// Curve is nil if curves are hidden.
	Curve   *Curve
	Opacity float64
}

// Frame is everything a renderer needs to draw one frame. All geometry is
// owned by the frame.
type Frame struct {
	Phases Phases

	// Tesseract and Curve are only set while the animation is at rest at 0.
	Tesseract *Tesseract
	Curve     *Curve

	Cells []Cell
	Plots []Plot

	// Clipped is the number of vertices that were behind the camera and
	// had to be clipped.
	Clipped int
}

// Unfolder computes frames of the unfolding animation for a source curve.
// The source curves are never modified; every frame works on fresh copies.
type Unfolder struct {
	Curve *Curve
	// Simple is an optional simplified version of Curve.
	Simple *Curve
}

// NewUnfolder returns an unfolder for the given curves. simple may be nil.
func NewUnfolder(full, simple *Curve) *Unfolder {
	return &Unfolder{Curve: full, Simple: simple}
}

func (u *Unfolder) source(s Scene) *Curve {
	if s.Simplified && u.Simple != nil {
		return u.Simple
	}
	return u.Curve
}

// Frame computes the frame for the scene.
func (u *Unfolder) Frame(s Scene) (*Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	src := u.source(s)
	if src == nil || src.Len() == 0 {
		return nil, ErrEmptyCurve
	}
	tess, err := NewTesseract(s.Size)
	if err != nil {
		return nil, err
	}

	low, high := s.speedColors()
	f := &Frame{Phases: PhasesAt(s.Unfolding)}
	ph := f.Phases

	if s.Unfolding == 0 {
		rot := s.Orientation.Matrix()
		if !s.HideTesseract {
			f.Clipped += tess.Project(s.Projector, rot)
			f.Tesseract = &tess
		}
		if !s.HideCurve {
			c := src.Clone()
			f.Clipped += c.Project(s.Projector, rot)
			c.ColorBySpeed(low, high, 1)
			f.Curve = c
		}
		f.warnClipped()
		return f, nil
	}

	cubes := tess.Split()
	var curves [8]*Curve
	for i := range curves {
		curves[i] = src.Clone()
	}
	MoveCurvesTo3D(ph.ProjectCurve4D, &curves, s.Size)
	if ph.Unfold4D > 0 {
		UnfoldCells(ph.Unfold4D, &cubes, &curves, s.Size)
	}
	rot := s.Orientation.Straightened(ph.Unfold4D)

	// The squares are cut from the cubes before anything is projected.
	if ph.Hide3D > 0 {
		squares := cubes.Split()
		var flat [6]*Curve
		for i, sq := range squares {
			flat[i] = curves[sq.Curve].Clone()
		}
		MoveCurvesTo2D(ph.ProjectCurve3D, &squares, &flat)
		UnfoldSquares(ph.Unfold3D, &squares, &flat)

		for i := range squares {
			p := Plot{Square: squares[i], Opacity: ph.Hide3D}
			if s.HideTesseract {
				p.Opacity = 0
			}
			f.Clipped += p.Square.Project(s.Projector, rot)
			if !s.HideCurve {
				c := flat[i]
				f.Clipped += c.Project(s.Projector, rot)
				c.ColorBySpeed(low, high, ph.Hide3D)
				p.Curve = c
			}
			f.Plots = append(f.Plots, p)
		}
	}

	if ph.Hide4D > 0 && ph.ProjectCurve3D == 0 {
		for i := range cubes {
			vis := s.visibility(i)
			cell := Cell{
				Index:        i,
				Cube:         cubes[i],
				CubeOpacity:  vis * (1 - ph.Hide3D),
				CurveOpacity: vis * (1 - ph.Hide3D),
				Annotate:     vis == 1 && ph.Hide3D < 0.5,
			}
			hideCurve := s.HideCurve
			if s.SimpleDaliCross && !inSimpleCross(i) {
				cell.CubeOpacity = 0
				if ph.Hide4D < 1 {
					cell.CubeOpacity = vis * (1 - ph.Hide4D)
				}
				cell.CurveOpacity = 0
				cell.Annotate = false
				hideCurve = true
			}
			if s.HideTesseract {
				cell.CubeOpacity = 0
			}
			f.Clipped += cell.Cube.Project(s.Projector, rot)
			if !hideCurve {
				c := curves[i]
				f.Clipped += c.Project(s.Projector, rot)
				c.ColorBySpeed(low, high, cell.CurveOpacity)
				cell.Curve = c
			} else {
				cell.Annotate = false
			}
			f.Cells = append(f.Cells, cell)
		}
	}

	f.warnClipped()
	return f, nil
}

func (f *Frame) warnClipped() {
	if f.Clipped > 0 {
		Logf("hypercurve: %d vertices behind the camera were clipped", f.Clipped)
	}
}
