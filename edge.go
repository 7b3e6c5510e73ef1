package planar

// MaxExtrema is the maximum number of interior extrema that can be reported
// by [Edge.Extrema].
//
// This is 4 to support cubic Béziers, which have up to two interior extrema
// per coordinate.
const MaxExtrema = 4

// DefaultDepth is the default subdivision depth for [Intersections] and
// [SelfIntersections].
const DefaultDepth = 20

// DefaultMaxIterations is the default iteration budget for [Intersections]
// and [SelfIntersections]. A negative budget means unlimited.
const DefaultMaxIterations = -1

// Edge describes a bounded parametric curve of degree 1, 2, or 3,
// parametrized over t ∈ [0, 1]. [Line], [QuadBez], and [CubicBez]
// implement it.
type Edge interface {
	// Degree returns the polynomial degree of the edge: 1, 2, or 3.
	Degree() int

	// Eval evaluates the edge at parameter t, in Bernstein form.
	// Generally, t is in the range [0, 1].
	Eval(t float64) Point

	// Start returns the edge's start point; it equals Eval(0) exactly.
	Start() Point

	// End returns the edge's end point; it equals Eval(1) exactly.
	End() Point

	// SplitEdge splits the edge at parameter t using de Casteljau's
	// algorithm. The two returned edges share the split point by value
	// but no mutable state.
	SplitEdge(t float64) (Edge, Edge)

	// SubsegmentEdge returns the part of the edge between the parameters
	// start and end.
	SubsegmentEdge(start, end float64) Edge

	// Extrema computes the interior extrema of the edge: the parameter
	// values in (0, 1) at which the derivative of one of the coordinates
	// vanishes.
	//
	// The extrema are reported in increasing parameter order and
	// duplicates are collapsed. At most four extrema can be reported,
	// which is sufficient for cubic Béziers.
	Extrema() ([MaxExtrema]float64, int)

	// ExtremePoints returns the edge's extreme points: the endpoints at
	// t = 0 and t = 1, plus every interior extremum, each paired with
	// its point on the edge. The result is ordered by parameter and
	// free of duplicate parameters.
	ExtremePoints() []ExtremePoint

	// BoundingBox returns the smallest axis-aligned rectangle enclosing
	// the edge over [0, 1].
	BoundingBox() Rect

	// DeviationFromLine returns the maximum perpendicular distance from
	// the edge to its chord, divided by the chord length; equivalently, the
	// largest cross product of the chord with an offset of the edge from
	// its start, divided by the squared chord length. It
	// returns +Inf if the projection of a control point onto the chord
	// falls outside the chord's span, i.e. the edge overshoots its
	// endpoints along the chord axis, or if the chord is degenerate.
	DeviationFromLine() float64

	// ParamsForPoint returns the parameters at which the edge passes
	// through pt, within the tolerance eps. Parameters imperceptibly off
	// an integer are snapped to it, and only parameters in [0, 1]
	// survive. The boolean return value reports whether the edge is
	// point-degenerate at pt, so that every parameter maps to it.
	ParamsForPoint(pt Point, eps float64) ([3]float64, int, bool)
}

// ExtremePoint is a point on an edge at which one coordinate's derivative
// vanishes, or an endpoint, together with its parameter.
type ExtremePoint struct {
	T     float64
	Point Point
}

// ExtremePoints computes the extreme points of an edge from its interior
// extrema and endpoints. It implements [Edge.ExtremePoints] for the edge
// types in this package.
func ExtremePoints(e Edge) []ExtremePoint {
	ex, n := e.Extrema()
	out := make([]ExtremePoint, 0, n+2)
	out = append(out, ExtremePoint{T: 0, Point: e.Start()})
	for _, t := range ex[:n] {
		if t <= 0 || t >= 1 {
			continue
		}
		if t == out[len(out)-1].T {
			continue
		}
		out = append(out, ExtremePoint{T: t, Point: e.Eval(t)})
	}
	if out[len(out)-1].T != 1 {
		out = append(out, ExtremePoint{T: 1, Point: e.End()})
	}
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// edge in the range [0, 1]. It considers the interior extrema in addition
// to the endpoints, which is what makes the box tight for curves.
func BoundingBox(e Edge) Rect {
	bbox := NewRectFromPoints(e.Start(), e.End())
	ex, n := e.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(e.Eval(t))
	}
	return bbox
}

// paramsForPoint merges the per-axis root sets of a point-on-edge solve.
//
// Roots from the two coordinate polynomials are intersected approximately:
// a pair of roots within eps of each other yields their mean. If exactly
// one axis is identically zero it carries no parameter information, and
// the other axis's roots are taken as-is; if both are, the edge is
// point-degenerate at the query point and the result is indeterminate.
// Surviving roots are snapped to integers and clipped to [0, 1].
func paramsForPoint(tx []float64, indetX bool, ty []float64, indetY bool, eps float64) ([3]float64, int, bool) {
	var cands []float64
	switch {
	case indetX && indetY:
		return [3]float64{}, 0, true
	case indetX:
		cands = ty
	case indetY:
		cands = tx
	default:
		for _, x := range tx {
			for _, y := range ty {
				if Approx(x, y, eps) {
					cands = append(cands, 0.5*(x+y))
				}
			}
		}
	}
	var out [3]float64
	var outN int
	for _, t := range cands {
		t = SnapToInteger(t, eps)
		if t < 0 || t > 1 {
			continue
		}
		dup := false
		for _, prev := range out[:outN] {
			if Approx(t, prev, eps) {
				dup = true
				break
			}
		}
		if !dup && outN < len(out) {
			out[outN] = t
			outN++
		}
	}
	return out, outN, false
}
