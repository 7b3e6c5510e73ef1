package planar

// SelfIntersections computes the parameter pairs at which an edge crosses
// itself. Only cubic Béziers can self-intersect, and they do so at most
// once.
//
// The edge is partitioned at its interior extrema, which yields segments
// that are monotone in both coordinates and therefore free of
// self-intersections, and every pair of segments is handed to the general
// intersector. The special point sets are trimmed so that the unavoidable
// contact of adjacent segments at their shared boundary is not reported.
//
// The parameters depth, epsilon, and maxIter are as for [Intersections], as
// is the boolean return value.
func SelfIntersections(e Edge, depth int, epsilon float64, maxIter int) ([]Intersection, bool) {
	if depth <= 0 {
		depth = DefaultDepth
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}

	eps := e.ExtremePoints()
	type segment struct {
		edge  Edge
		start float64
		ratio float64
	}
	segs := make([]segment, 0, len(eps)-1)
	for k := 0; k+1 < len(eps); k++ {
		t0, t1 := eps[k].T, eps[k+1].T
		segs = append(segs, segment{
			edge:  e.SubsegmentEdge(t0, t1),
			start: t0,
			ratio: t1 - t0,
		})
	}

	var out []Intersection
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			si, sj := segs[i], segs[j]
			var sp1 []ExtremePoint
			if i == 0 {
				sp1 = append(sp1, ExtremePoint{T: 0, Point: si.edge.Start()})
			}
			if j != i+1 {
				sp1 = append(sp1, ExtremePoint{T: 1, Point: si.edge.End()})
			}
			sp2 := []ExtremePoint{{T: 1, Point: sj.edge.End()}}
			res, indet := intersectEdges(si.edge, sj.edge, sp1, sp2, depth, epsilon, maxIter)
			if indet {
				return nil, true
			}
			for _, r := range res {
				out = append(out, Intersection{
					T1:    si.start + si.ratio*r.T1,
					T2:    sj.start + sj.ratio*r.T2,
					Point: r.Point,
					Err:   r.Err,
				})
			}
		}
	}
	return dedupIntersections(out, epsilon), false
}
