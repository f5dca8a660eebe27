package hypercurve

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
)

// segment is a projected edge in screen space.
type segment struct {
	x0, y0, x1, y1 float64
	color          color.NRGBA
	width          vg.Length
}

// wireframe draws projected edges onto a plot. It implements plot.Plotter
// and plot.DataRanger.
type wireframe struct {
	segs []segment
}

func (w *wireframe) add(m Mesh, opacity float64, width vg.Length) {
	if opacity <= 0 {
		return
	}
	for _, e := range m.Edges {
		p0, p1 := m.Vertices[e.V0], m.Vertices[e.V1]
		c := e.Color
		c.A = uint8(math.Round(float64(c.A) * min(opacity, 1)))
		w.segs = append(w.segs, segment{p0[X], p0[Y], p1[X], p1[Y], c, width})
	}
}

func (w *wireframe) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, s := range w.segs {
		sty := draw.LineStyle{Color: s.color, Width: s.width}
		c.StrokeLine2(sty, trX(s.x0), trY(s.y0), trX(s.x1), trY(s.y1))
	}
}

func (w *wireframe) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range w.segs {
		xmin = min(xmin, s.x0, s.x1)
		xmax = max(xmax, s.x0, s.x1)
		ymin = min(ymin, s.y0, s.y1)
		ymax = max(ymax, s.y0, s.y1)
	}
	if len(w.segs) == 0 {
		return 0, 0, 0, 0
	}
	return xmin, xmax, ymin, ymax
}

var (
	meshLineWidth  = vg.Points(0.75)
	curveLineWidth = vg.Points(1.5)
)

// Plot draws the frame's x and y screen coordinates into a new plot, as a
// quick static view of the frame. Arrows of annotated curves are drawn as
// dots.
func (f *Frame) Plot(title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	var wf wireframe
	var arrows plotter.XYs
	annotate := func(c *Curve) {
		for _, a := range c.Arrows(All) {
			arrows = append(arrows, plotter.XY{X: a.Point[X], Y: a.Point[Y]})
		}
	}

	if f.Tesseract != nil {
		wf.add(f.Tesseract.Mesh, 1, meshLineWidth)
	}
	if f.Curve != nil {
		wf.add(f.Curve.Mesh, 1, curveLineWidth)
		annotate(f.Curve)
	}
	for _, c := range f.Cells {
		wf.add(c.Cube.Mesh, c.CubeOpacity, meshLineWidth)
		if c.Curve != nil {
			wf.add(c.Curve.Mesh, 1, curveLineWidth)
			if c.Annotate {
				annotate(c.Curve)
			}
		}
	}
	for _, pl := range f.Plots {
		wf.add(pl.Square.Mesh, pl.Opacity, meshLineWidth)
		if pl.Curve != nil {
			wf.add(pl.Curve.Mesh, 1, curveLineWidth)
			annotate(pl.Curve)
		}
	}
	p.Add(&wf)

	if len(arrows) > 0 {
		sc, err := plotter.NewScatter(arrows)
		if err != nil {
			return nil, fmt.Errorf("failed to plot annotations: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Color = color.Black
		p.Add(sc)
	}
	return p, nil
}

// WriteImage renders the frame's plot in the given format ("png", "svg",
// "pdf", ...) to w.
func (f *Frame) WriteImage(w io.Writer, format string, width, height vg.Length) error {
	p, err := f.Plot("")
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}
