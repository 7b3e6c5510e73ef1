package planar

import "math"

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ Edge = QuadBez{}

// Quad returns the quadratic Bézier segment with the given control points.
func Quad(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Degree returns 2.
func (q QuadBez) Degree() int { return 2 }

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Split splits the segment at parameter t using de Casteljau's algorithm.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	pm := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, pm}, QuadBez{pm, p12, q.P2}
}

func (q QuadBez) SplitEdge(t float64) (Edge, Edge) {
	a, b := q.Split(t)
	return a, b
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) SubsegmentEdge(start, end float64) Edge {
	return q.Subsegment(start, end)
}

// Differentiate returns the derivative of the segment, which is a line.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 && (outN == 0 || out[0] != t) {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

func (q QuadBez) ExtremePoints() []ExtremePoint {
	return ExtremePoints(q)
}

func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}

// DeviationFromLine returns the distance from the chord of the curve point
// at t = 0.5, where a quadratic is farthest from its chord, divided by the
// chord length.
func (q QuadBez) DeviationFromLine() float64 {
	chord := q.P2.Sub(q.P0)
	chord2 := chord.Hypot2()
	if chord2 == 0 {
		return math.Inf(1)
	}
	proj := q.P1.Sub(q.P0).Dot(chord)
	if proj < 0 || proj > chord2 {
		return math.Inf(1)
	}
	return math.Abs(chord.Cross(q.Eval(0.5).Sub(q.P0))) / chord2
}

func (q QuadBez) ParamsForPoint(pt Point, eps float64) ([3]float64, int, bool) {
	cx0, cx1, cx2 := quadBezCoefficients(q.P0.X, q.P1.X, q.P2.X)
	cy0, cy1, cy2 := quadBezCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	tx, nx, indetX := SolveQuadratic(cx0-pt.X, cx1, cx2)
	ty, ny, indetY := SolveQuadratic(cy0-pt.Y, cy1, cy2)
	return paramsForPoint(tx[:nx], indetX, ty[:ny], indetY, eps)
}

// Return polynomial coefficients given quadratic bezier coordinates.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}
