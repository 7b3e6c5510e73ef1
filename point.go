package planar

import (
	"fmt"
	"math"
)

// Point is a position in 2D space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
//
// It panics if either coordinate is NaN; points with undefined coordinates
// poison every predicate downstream.
func Pt(x, y float64) Point {
	if math.IsNaN(x) || math.IsNaN(y) {
		panic(fmt.Sprintf("point coordinates must not be NaN: (%g, %g)", x, y))
	}
	return Point{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns the point translated by the vector o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform returns the point transformed by the affine transform aff.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Rotate returns the point rotated by the angle th around the center
// point. The angle is expressed in radians.
func (pt Point) Rotate(center Point, th float64) Point {
	return center.Translate(pt.Sub(center).Rotate(th))
}

// ScaleAbout returns the point scaled component-wise by (sx, sy) about the
// center point.
func (pt Point) ScaleAbout(center Point, sx, sy float64) Point {
	d := pt.Sub(center)
	return center.Translate(Vec2{X: d.X * sx, Y: d.Y * sy})
}

// Approx reports whether both coordinates of pt and o are approximately
// equal within eps, in the sense of [Approx].
func (pt Point) Approx(o Point, eps float64) bool {
	return Approx(pt.X, o.X, eps) && Approx(pt.Y, o.Y, eps)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
