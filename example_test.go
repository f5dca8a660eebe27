package hypercurve_test

import (
	"fmt"
	"math"

	"honnef.co/go/hypercurve"
)

func ExampleCurve_Point() {
	c, err := hypercurve.NewCurve(
		[]hypercurve.Point{
			hypercurve.Pt(0, 0, 0, 0),
			hypercurve.Pt(2, 0, 0, 4),
		},
		[]float64{0, 1},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Point(0.25))
	fmt.Println(c.Point(5))
	// Output:
	// (0.5, 0, 0, 1; 1)
	// (2, 0, 0, 4; 1)
}

func ExampleSplitAnimation() {
	fmt.Println(hypercurve.SplitAnimation(0.5, 4))
	// Output:
	// [1 1 0 0]
}

func ExampleUnfolder_Frame() {
	var pts []hypercurve.Point
	var times []float64
	for i := range 100 {
		t := float64(i) / 10
		pts = append(pts, hypercurve.Pt(0.5*math.Cos(t), 0.5*math.Sin(t), 0.1*t-0.5, 0.5*math.Sin(t/2)))
		times = append(times, t)
	}
	raw, err := hypercurve.NewCurve(pts, times)
	if err != nil {
		panic(err)
	}

	hypercurve.SetLogger(nil)
	full, simple, err := hypercurve.Prepare(raw, nil)
	if err != nil {
		panic(err)
	}

	u := hypercurve.NewUnfolder(full, simple)
	scene := hypercurve.Scene{
		Orientation: hypercurve.Orientation{XY: 0.3, XW: 0.4},
		Projector:   hypercurve.DefaultProjector(5, 1),
		Size:        hypercurve.Vec(2, 2, 2, 2),
	}
	for _, at := range []float64{0, 0.3, 0.6, 1} {
		scene.Unfolding = at
		f, err := u.Frame(scene)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%.1f: %d cells, %d plots\n", at, len(f.Cells), len(f.Plots))
	}
	// Output:
	// 0.0: 0 cells, 0 plots
	// 0.3: 8 cells, 0 plots
	// 0.6: 8 cells, 6 plots
	// 1.0: 0 cells, 6 plots
}
