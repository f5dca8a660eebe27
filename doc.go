// Package hypercurve provides the geometry behind visualizing trajectories in
// four dimensions. Curves are projected, together with a tesseract, into 3D,
// and the tesseract can be unfolded step by step into a Dali cross and then
// into a flat net of squares, with copies of the curve projected onto every
// cell and square along the way.
//
// The package deals only in geometry. Drawing, input and loading are left to
// the caller, who receives fully transformed and projected vertices.
//
// # Points and transforms
//
// A [Point] has four spatial components and a projective one, indexed by
// [X], [Y], [Z], [W] and [H]. Points are row vectors: [Point.Transform]
// computes p·M for a 5×5 [Matrix], and A.Mul(B) applies A first.
//
// Rotations in 4D happen in planes rather than about axes. [PlaneRotation]
// rotates in one of the six coordinate planes, and an [Orientation] composes
// all six in the fixed order xy, yz, zx, xw, yw, zw. [Orientation.Straightened]
// fades out the three rotations involving w, which the unfolding uses to turn
// the view back to plain 3D.
//
// A [Projector] moves points into camera space and divides by the distance
// along w. The projected point keeps its depth and its divisor so that
// renderers can scale line widths with [Point.Thickness]. Points on or behind
// the camera plane are clipped to a near plane instead of producing
// infinities.
//
// # Curves
//
// A [Curve] is a polyline with a timestamp per vertex. [Curve.Point]
// interpolates it at arbitrary times and [Curve.Simplify] thins it with the
// Ramer–Douglas–Peucker algorithm. [Curve.UpdateStats] computes per-edge
// speeds and labels every vertex with the axes the curve actually moves
// along around it. Runs of equal labels produce arrows and switches between
// them produce markers; see [Curve.Arrows] and [Curve.Markers].
//
// Derived data travels with [Curve.Clone], and arrows are stored by time, so
// copies that have been moved or projected still annotate correctly.
//
// # Unfolding
//
// [NewTesseract] builds a tesseract, [Tesseract.Split] cuts it into its eight
// cubes and [Cubes.Split] cuts six squares out of the unfolded cubes. The
// animation runs in six consecutive phases, see [PhasesAt]: the tesseract
// fades into its cells, curve copies are flattened onto the cells, the cells
// fold out into 3D ([UnfoldCells]), the cells fade into squares, curve copies
// are flattened onto the squares and finally the squares fold flat
// ([UnfoldSquares]).
//
// [Unfolder.Frame] ties everything together. Given a [Scene], an immutable
// snapshot of camera, orientation, tesseract size and animation progress, it
// returns a [Frame] that owns all of its geometry.
//
// # Configuration
//
// The thresholds used to prepare a loaded curve, and the speed colors, can be
// read from a JSON or YAML file with [LoadTuning] and applied with [Prepare]
// and [Tuning.SpeedColors]. Diagnostics go through [Logf], which can be
// redirected or muted with [SetLogger].
//
// [Frame.WriteImage] renders a frame's screen coordinates to an image, which
// is handy for checking a scene without a renderer.
package hypercurve
