package planar

import "math"

// Intersection is a single crossing of two edges.
type Intersection struct {
	// T1 is the parameter of the intersection on the first edge.
	T1 float64
	// T2 is the parameter of the intersection on the second edge.
	T2 float64
	// Point is where the edges cross. It is the arithmetic mean of the two
	// edges' evaluations at T1 and T2, which halves the coordinate error
	// when the parameters are only approximately converged.
	Point Point
	// Err is the parameter error radius. It is zero for exact results and
	// 2^-i, but at least [Epsilon], for results emitted when subdivision ran
	// out of depth or iterations, where i is the subdivision depth of the
	// task that emitted the result.
	Err float64
}

// IntersectionsLL computes the intersections of two line segments.
//
// The boolean return value reports whether the segments are collinear and
// overlapping, in which case they intersect in infinitely many points and
// the returned slice is meaningless. Segments on a common horizontal or
// vertical line have flat bounding boxes that never overlap openly; for
// them only shared endpoints are reported and the boolean is false.
func IntersectionsLL(l1, l2 Line) ([]Intersection, bool) {
	b1 := l1.BoundingBox()
	b2 := l2.BoundingBox()
	if !b1.Overlaps(b2) {
		if !b1.Contacts(b2) {
			return nil, false
		}
		// The boxes touch without overlapping, so the only possible
		// intersections are shared endpoints.
		var out []Intersection
		for _, c1 := range [2]struct {
			t  float64
			pt Point
		}{{0, l1.P0}, {1, l1.P1}} {
			for _, c2 := range [2]struct {
				t  float64
				pt Point
			}{{0, l2.P0}, {1, l2.P1}} {
				if c1.pt == c2.pt {
					out = append(out, Intersection{T1: c1.t, T2: c2.t, Point: c1.pt})
				}
			}
		}
		return out, false
	}

	d1 := l1.P1.Sub(l1.P0)
	d2 := l2.P1.Sub(l2.P0)
	a := d1.X*d2.Y - d2.X*d1.Y
	pq := l1.P0.Sub(l2.P0)
	b1d := d2.X*pq.Y - d2.Y*pq.X
	b2d := d1.X*pq.Y - d1.Y*pq.X
	if a == 0 {
		if b1d == 0 || b2d == 0 {
			return nil, true
		}
		return nil, false
	}
	t1 := b1d / a
	t2 := b2d / a
	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return nil, false
	}
	return []Intersection{{
		T1:    t1,
		T2:    t2,
		Point: l1.Eval(t1).Midpoint(l2.Eval(t2)),
	}}, false
}

// intersectLLInterior reports whether two lines cross strictly inside both
// segments. The second return value reports whether the lines are
// collinear.
func intersectLLInterior(l1, l2 Line) (found, indeterminate bool) {
	d1 := l1.P1.Sub(l1.P0)
	d2 := l2.P1.Sub(l2.P0)
	a := d1.X*d2.Y - d2.X*d1.Y
	pq := l1.P0.Sub(l2.P0)
	b1 := d2.X*pq.Y - d2.Y*pq.X
	b2 := d1.X*pq.Y - d1.Y*pq.X
	if a == 0 {
		return false, b1 == 0 || b2 == 0
	}
	t1 := b1 / a
	t2 := b2 / a
	return t1 > 0 && t1 < 1 && t2 > 0 && t2 < 1, false
}

// Intersections computes the intersections of two edges.
//
// depth bounds the subdivision depth; values ≤ 0 select [DefaultDepth].
// epsilon is the parameter tolerance; values ≤ 0 select [DefaultEpsilon].
// maxIter bounds the number of subdivision steps; negative values mean
// unlimited. When either budget runs out, the remaining candidate regions
// are reported as intersections with a non-zero Err.
//
// The boolean return value reports whether the edges coincide over some
// span and thus intersect in infinitely many points.
//
// The returned intersections are deduplicated but not sorted.
func Intersections(e1, e2 Edge, depth int, epsilon float64, maxIter int) ([]Intersection, bool) {
	if depth <= 0 {
		depth = DefaultDepth
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	if e1.Degree() == 1 && e2.Degree() == 1 {
		return IntersectionsLL(Ln(e1.Start(), e1.End()), Ln(e2.Start(), e2.End()))
	}
	return intersectEdges(e1, e2, e1.ExtremePoints(), e2.ExtremePoints(), depth, epsilon, maxIter)
}

type taskKind uint8

const (
	taskPP taskKind = iota
	taskPE
	taskEP
	taskEE
)

// task is one unit of work for the subdivision queue. The kind discriminates
// the payload: PP carries p1 and p2, PE carries p1 and e2, EP carries e1 and
// p2, EE carries e1 and e2. t1 and t2 are the global parameters of the task's
// center; at depth i, an edge payload covers a parameter interval of width
// 2^-i around its center.
type task struct {
	kind   taskKind
	p1, p2 Point
	e1, e2 Edge
	t1, t2 float64
	depth  int
}

// intersectEdges runs the subdivision intersector over e1 and e2, seeded
// with the given special points of either edge. t's in the special points
// and in the results are global parameters of e1 and e2.
func intersectEdges(e1, e2 Edge, sp1, sp2 []ExtremePoint, depth int, epsilon float64, maxIter int) ([]Intersection, bool) {
	bezout := e1.Degree() * e2.Degree()

	var queue []task
	for _, a := range sp1 {
		for _, b := range sp2 {
			queue = append(queue, task{kind: taskPP, p1: a.Point, p2: b.Point, t1: a.T, t2: b.T})
		}
	}
	for _, a := range sp1 {
		queue = append(queue, task{kind: taskPE, p1: a.Point, e2: e2, t1: a.T, t2: 0.5})
	}
	for _, b := range sp2 {
		queue = append(queue, task{kind: taskEP, e1: e1, p2: b.Point, t1: 0.5, t2: b.T})
	}
	queue = append(queue, task{kind: taskEE, e1: e1, e2: e2, t1: 0.5, t2: 0.5})

	var exact, inexact []Intersection

	output := func(t1, t2 float64) Point {
		return e1.Eval(t1).Midpoint(e2.Eval(t2))
	}
	// emitExact records an exact intersection unless one is already known at
	// these parameters. It reports whether the Bézout bound was exceeded,
	// which means the edges coincide over a span.
	emitExact := func(t1, t2 float64) bool {
		for _, r := range exact {
			if math.Abs(r.T1-t1) < epsilon && math.Abs(r.T2-t2) < epsilon {
				return false
			}
		}
		exact = append(exact, Intersection{T1: t1, T2: t2, Point: output(t1, t2)})
		return len(exact) > bezout
	}
	emitInexact := func(t1, t2 float64, i int) {
		err := max(math.Ldexp(1, -i), Epsilon)
		inexact = append(inexact, Intersection{T1: t1, T2: t2, Point: output(t1, t2), Err: err})
	}

	iters := 0
	for len(queue) > 0 {
		if maxIter >= 0 && iters >= maxIter {
			// Out of iterations. Whatever is still queued is an unresolved
			// candidate region; report the centers with their current error
			// radius.
			for _, t := range queue {
				if t.kind != taskPP {
					emitInexact(t.t1, t.t2, t.depth)
				}
			}
			break
		}
		iters++
		t := queue[0]
		queue = queue[1:]

		switch t.kind {
		case taskPP:
			if t.p1.Approx(t.p2, epsilon) {
				if emitExact(t.t1, t.t2) {
					return nil, true
				}
			}

		case taskPE:
			box := t.e2.BoundingBox()
			if box.IsPoint() {
				queue = append(queue, task{kind: taskPP, p1: t.p1, p2: t.e2.Eval(0.5), t1: t.t1, t2: t.t2, depth: t.depth})
				continue
			}
			width := math.Ldexp(1, -t.depth)
			onEdge := box.HasOnEdge(t.p1)
			if onEdge {
				for _, ep := range t.e2.ExtremePoints() {
					queue = append(queue, task{
						kind: taskPP,
						p1:   t.p1,
						p2:   ep.Point,
						t1:   t.t1,
						t2:   t.t2 + (ep.T-0.5)*width,
					})
				}
			}
			if !onEdge && !box.Contains(t.p1) {
				continue
			}
			if t.depth >= depth {
				emitInexact(t.t1, t.t2, t.depth)
				continue
			}
			roots, n, indet := t.e2.ParamsForPoint(t.p1, epsilon)
			if indet {
				return nil, true
			}
			for _, u := range roots[:n] {
				if u > 0 && u < 1 {
					if emitExact(t.t1, t.t2+(u-0.5)*width) {
						return nil, true
					}
				}
			}
			half := math.Ldexp(1, -t.depth-2)
			a, b := t.e2.SplitEdge(0.5)
			queue = append(queue,
				task{kind: taskPP, p1: t.p1, p2: t.e2.Eval(0.5), t1: t.t1, t2: t.t2},
				task{kind: taskPE, p1: t.p1, e2: a, t1: t.t1, t2: t.t2 - half, depth: t.depth + 1},
				task{kind: taskPE, p1: t.p1, e2: b, t1: t.t1, t2: t.t2 + half, depth: t.depth + 1},
			)

		case taskEP:
			box := t.e1.BoundingBox()
			if box.IsPoint() {
				queue = append(queue, task{kind: taskPP, p1: t.e1.Eval(0.5), p2: t.p2, t1: t.t1, t2: t.t2, depth: t.depth})
				continue
			}
			width := math.Ldexp(1, -t.depth)
			onEdge := box.HasOnEdge(t.p2)
			if onEdge {
				for _, ep := range t.e1.ExtremePoints() {
					queue = append(queue, task{
						kind: taskPP,
						p1:   ep.Point,
						p2:   t.p2,
						t1:   t.t1 + (ep.T-0.5)*width,
						t2:   t.t2,
					})
				}
			}
			if !onEdge && !box.Contains(t.p2) {
				continue
			}
			if t.depth >= depth {
				emitInexact(t.t1, t.t2, t.depth)
				continue
			}
			roots, n, indet := t.e1.ParamsForPoint(t.p2, epsilon)
			if indet {
				return nil, true
			}
			for _, u := range roots[:n] {
				if u > 0 && u < 1 {
					if emitExact(t.t1+(u-0.5)*width, t.t2) {
						return nil, true
					}
				}
			}
			half := math.Ldexp(1, -t.depth-2)
			a, b := t.e1.SplitEdge(0.5)
			queue = append(queue,
				task{kind: taskPP, p1: t.e1.Eval(0.5), p2: t.p2, t1: t.t1, t2: t.t2},
				task{kind: taskEP, e1: a, p2: t.p2, t1: t.t1 - half, t2: t.t2, depth: t.depth + 1},
				task{kind: taskEP, e1: b, p2: t.p2, t1: t.t1 + half, t2: t.t2, depth: t.depth + 1},
			)

		case taskEE:
			box1 := t.e1.BoundingBox()
			box2 := t.e2.BoundingBox()
			switch {
			case box1.IsPoint() && box2.IsPoint():
				queue = append(queue, task{kind: taskPP, p1: t.e1.Eval(0.5), p2: t.e2.Eval(0.5), t1: t.t1, t2: t.t2, depth: t.depth})
				continue
			case box1.IsPoint():
				queue = append(queue, task{kind: taskPE, p1: t.e1.Eval(0.5), e2: t.e2, t1: t.t1, t2: t.t2, depth: t.depth})
				continue
			case box2.IsPoint():
				queue = append(queue, task{kind: taskEP, e1: t.e1, p2: t.e2.Eval(0.5), t1: t.t1, t2: t.t2, depth: t.depth})
				continue
			}
			if !box1.Overlaps(box2) {
				continue
			}
			if t.depth >= depth {
				emitInexact(t.t1, t.t2, t.depth)
				continue
			}
			// Once subdivision has isolated the pair near-linearly, the
			// chords decide. At depth 0 the tolerance is zero: the whole
			// curve may be near-linear while a real intersection hides in
			// its tails.
			if t.depth >= 1 {
				maxDev := min(5e-5*math.Ldexp(1, t.depth), 0.1)
				dev1 := t.e1.DeviationFromLine()
				dev2 := t.e2.DeviationFromLine()
				if dev1 < maxDev && dev2 < maxDev {
					found, indet := intersectLLInterior(
						Ln(t.e1.Start(), t.e1.End()),
						Ln(t.e2.Start(), t.e2.End()),
					)
					if indet && dev1 == 0 && dev2 == 0 {
						return nil, true
					}
					if !found && !indet {
						continue
					}
				}
			}
			half := math.Ldexp(1, -t.depth-2)
			m1 := t.e1.Eval(0.5)
			m2 := t.e2.Eval(0.5)
			a1, b1 := t.e1.SplitEdge(0.5)
			a2, b2 := t.e2.SplitEdge(0.5)
			queue = append(queue,
				task{kind: taskPP, p1: m1, p2: m2, t1: t.t1, t2: t.t2},
				task{kind: taskPE, p1: m1, e2: a2, t1: t.t1, t2: t.t2 - half, depth: t.depth + 1},
				task{kind: taskPE, p1: m1, e2: b2, t1: t.t1, t2: t.t2 + half, depth: t.depth + 1},
				task{kind: taskEP, e1: a1, p2: m2, t1: t.t1 - half, t2: t.t2, depth: t.depth + 1},
				task{kind: taskEP, e1: b1, p2: m2, t1: t.t1 + half, t2: t.t2, depth: t.depth + 1},
				task{kind: taskEE, e1: a1, e2: a2, t1: t.t1 - half, t2: t.t2 - half, depth: t.depth + 1},
				task{kind: taskEE, e1: a1, e2: b2, t1: t.t1 - half, t2: t.t2 + half, depth: t.depth + 1},
				task{kind: taskEE, e1: b1, e2: a2, t1: t.t1 + half, t2: t.t2 - half, depth: t.depth + 1},
				task{kind: taskEE, e1: b1, e2: b2, t1: t.t1 + half, t2: t.t2 + half, depth: t.depth + 1},
			)

		default:
			panic("planar: unknown task kind")
		}
	}

	return dedupIntersections(append(exact, inexact...), epsilon), false
}

// dedupIntersections merges near-coincident results, retaining the
// lower-err member of each close pair. Ties keep the earlier result.
func dedupIntersections(results []Intersection, epsilon float64) []Intersection {
	removed := make([]bool, len(results))
	for i := range results {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(results); j++ {
			if removed[j] {
				continue
			}
			tol := max(math.Sqrt2*(results[i].Err+results[j].Err), epsilon)
			if math.Abs(results[i].T1-results[j].T1) < tol &&
				math.Abs(results[i].T2-results[j].T2) < tol {
				if results[j].Err < results[i].Err {
					removed[i] = true
					break
				}
				removed[j] = true
			}
		}
	}
	out := results[:0]
	for i, r := range results {
		if !removed[i] {
			out = append(out, r)
		}
	}
	return out
}
