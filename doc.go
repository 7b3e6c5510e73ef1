// Package planar provides primitives and routines for robust intersection
// of 2D parametric edges: line segments, quadratic Bézier curves, and cubic
// Bézier curves.
//
// The package computes every intersection of two edges inside the unit
// parameter square with bounded parametric error, distinguishes finitely
// many intersections from infinitely many (overlapping edges), and finds
// the self-intersections of a single cubic. It stays numerically stable for
// near-linear curves, point-degenerate curves, and curves with cusps.
//
// # Entry points
//
// The three intersection entry points are [IntersectionsLL] for the exact
// segment/segment fast path, [Intersections] for any pair of edges, and
// [SelfIntersections] for a single edge. All three distinguish the
// "infinitely many intersections" case with a boolean return value; see
// [Intersections] for details.
//
// [Intersections] is backed by an adaptive subdivision engine: a FIFO queue
// of point/point, point/edge, edge/point, and edge/edge tasks is refined
// until each task either proves itself empty via bounding-box predicates,
// recovers exact parameters through the closed-form polynomial solvers
// ([SolveLinear], [SolveQuadratic], [SolveCubic]), or bottoms out at the
// depth or iteration budget and reports its interval center with the
// interval width as the parametric error.
//
// # Edges
//
// [Line], [QuadBez], and [CubicBez] are plain value types implementing
// [Edge]. Curve evaluation is in Bernstein form and splitting uses
// de Casteljau's algorithm. Every edge reports its extreme points (the
// endpoints plus the interior parameters where one coordinate's derivative
// vanishes), which drive both bounding boxes and the seeding of the
// subdivision engine.
//
// # Coordinate conventions
//
// The coordinate system is Cartesian with no preferred y direction; angles
// follow [math.Atan2]. Rectangles are axis-aligned with non-negative width
// and height.
package planar
