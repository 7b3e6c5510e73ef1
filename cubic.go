package planar

import (
	"math"
	"sort"
)

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Edge = CubicBez{}

// Cubic returns the cubic Bézier segment with the given control points.
func Cubic(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Degree returns 3.
func (c CubicBez) Degree() int { return 3 }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Split splits the segment at parameter t using de Casteljau's algorithm.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

func (c CubicBez) SplitEdge(t float64) (Edge, Edge) {
	a, b := c.Split(t)
	return a, b
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) SubsegmentEdge(start, end float64) Edge {
	return c.Subsegment(start, end)
}

// Differentiate returns the derivative of the segment, which is a quadratic
// Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n, _ := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	n := 0
	for i := 0; i < outN; i++ {
		if i > 0 && out[i] == out[n-1] {
			continue
		}
		out[n] = out[i]
		n++
	}
	return out, n
}

func (c CubicBez) ExtremePoints() []ExtremePoint {
	return ExtremePoints(c)
}

func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// DeviationFromLine returns the maximum distance of the segment from its
// chord, divided by the chord length.
//
// The signed distance of a point on the curve from the chord line is a cubic
// polynomial in t with roots at both endpoints, so it factors as
// 3t(1−t)((1−t)·u1 + t·u2), with u1 and u2 the cross products of the chord
// with the control point offsets.
func (c CubicBez) DeviationFromLine() float64 {
	chord := c.P3.Sub(c.P0)
	chord2 := chord.Hypot2()
	if chord2 == 0 {
		return math.Inf(1)
	}
	proj1 := c.P1.Sub(c.P0).Dot(chord)
	proj2 := c.P2.Sub(c.P0).Dot(chord)
	if proj1 < 0 || proj1 > chord2 || proj2 < 0 || proj2 > chord2 {
		return math.Inf(1)
	}
	u1 := chord.Cross(c.P1.Sub(c.P0))
	u2 := chord.Cross(c.P2.Sub(c.P0))
	f := func(t float64) float64 {
		return 3 * t * (1 - t) * ((1-t)*u1 + t*u2)
	}
	if u1 == u2 {
		return math.Abs(f(0.5)) / chord2
	}
	roots, n, _ := SolveQuadratic(u1, 2*u2-4*u1, 3*(u1-u2))
	dev := 0.0
	found := false
	for _, t := range roots[:n] {
		if t > 0 && t < 1 {
			dev = max(dev, math.Abs(f(t)))
			found = true
		}
	}
	if !found {
		dev = math.Abs(f(0.5))
	}
	return dev / chord2
}

func (c CubicBez) ParamsForPoint(pt Point, eps float64) ([3]float64, int, bool) {
	cx0, cx1, cx2, cx3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	cy0, cy1, cy2, cy3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	tx, nx, indetX := SolveCubic(cx0-pt.X, cx1, cx2, cx3)
	ty, ny, indetY := SolveCubic(cy0-pt.Y, cy1, cy2, cy3)
	return paramsForPoint(tx[:nx], indetX, ty[:ny], indetY, eps)
}

// Return polynomial coefficients given cubic bezier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0 * (x1 - x0)
	p2 := 3.0 * (x2 - 2.0*x1 + x0)
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}
