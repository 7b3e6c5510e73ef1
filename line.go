package planar

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Edge = Line{}

// Ln returns the line segment from p0 to p1.
func Ln(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Degree returns 1.
func (l Line) Degree() int { return 1 }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Midpoint returns the line's midpoint.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) SubsegmentEdge(start, end float64) Edge {
	return l.Subsegment(start, end)
}

// Split splits the line at parameter t. Both halves share the split point.
func (l Line) Split(t float64) (Line, Line) {
	pt := l.Eval(t)
	return Line{l.P0, pt}, Line{pt, l.P1}
}

func (l Line) SplitEdge(t float64) (Edge, Edge) {
	a, b := l.Split(t)
	return a, b
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) ExtremePoints() []ExtremePoint {
	return ExtremePoints(l)
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// DeviationFromLine returns 0: a line is its own chord.
func (l Line) DeviationFromLine() float64 {
	return 0
}

func (l Line) ParamsForPoint(pt Point, eps float64) ([3]float64, int, bool) {
	tx, nx, indetX := SolveLinear(l.P0.X-pt.X, l.P1.X-l.P0.X)
	ty, ny, indetY := SolveLinear(l.P0.Y-pt.Y, l.P1.Y-l.P0.Y)
	return paramsForPoint(tx[:nx], indetX, ty[:ny], indetY, eps)
}
