package planar

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSolveLinear(t *testing.T) {
	roots, n, indet := SolveLinear(-6, 2)
	if indet {
		t.Fatal("unexpected indeterminate result")
	}
	diff(t, []float64{3}, roots[:n])

	if _, n, indet := SolveLinear(5, 0); n != 0 || indet {
		t.Errorf("got %d roots, indet=%v, want none", n, indet)
	}
	if _, n, indet := SolveLinear(0, 0); n != 0 || !indet {
		t.Errorf("got %d roots, indet=%v, want indeterminate", n, indet)
	}
}

func TestSolveQuadratic(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	roots, n, indet := SolveQuadratic(2, -3, 1)
	if indet {
		t.Fatal("unexpected indeterminate result")
	}
	diff(t, []float64{1, 2}, roots[:n], approx)

	// Double root.
	roots, n, _ = SolveQuadratic(1, -2, 1)
	diff(t, []float64{1}, roots[:n], approx)

	// No real roots.
	if _, n, _ := SolveQuadratic(1, 0, 1); n != 0 {
		t.Errorf("got %d roots, want none", n)
	}

	// Degenerate to linear.
	roots, n, _ = SolveQuadratic(-6, 2, 0)
	diff(t, []float64{3}, roots[:n], approx)

	if _, n, indet := SolveQuadratic(0, 0, 0); n != 0 || !indet {
		t.Errorf("got %d roots, indet=%v, want indeterminate", n, indet)
	}

	// A case where the textbook formula cancels catastrophically.
	roots, n, _ = SolveQuadratic(1e-14, -1, 1)
	if n != 2 {
		t.Fatalf("got %d roots, want 2", n)
	}
	if got, want := roots[0], 1e-14; math.Abs(got-want) > 1e-20 {
		t.Errorf("got small root %g, want %g", got, want)
	}
}

func TestSolveCubic(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	roots, n, indet := SolveCubic(-6, -5, 2, 1)
	if indet {
		t.Fatal("unexpected indeterminate result")
	}
	sort.Float64s(roots[:n])
	diff(t, []float64{-3, -1, 2}, roots[:n], approx)

	// Triple root: (x-1)^3 = x^3 - 3x^2 + 3x - 1.
	roots, n, _ = SolveCubic(-1, 3, -3, 1)
	diff(t, []float64{1}, roots[:n], approx)

	// Repeated root: (x-1)^2 (x-3) = x^3 - 5x^2 + 7x - 3.
	roots, n, _ = SolveCubic(-3, 7, -5, 1)
	sort.Float64s(roots[:n])
	diff(t, []float64{1, 3}, roots[:n], approx)

	// Single real root.
	roots, n, _ = SolveCubic(1, 1, 0, 1)
	if n != 1 {
		t.Fatalf("got %d roots, want 1", n)
	}

	// Degenerate to quadratic.
	roots, n, _ = SolveCubic(2, -3, 1, 0)
	sort.Float64s(roots[:n])
	diff(t, []float64{1, 2}, roots[:n], approx)

	if _, n, indet := SolveCubic(0, 0, 0, 0); n != 0 || !indet {
		t.Errorf("got %d roots, indet=%v, want indeterminate", n, indet)
	}
}

func TestSolveResiduals(t *testing.T) {
	cases := [][4]float64{
		{-6, -5, 2, 1},
		{1, 1, 0, 1},
		{-1, 3, -3, 1},
		{0.5, -1.5, 0.25, 2},
		{-0.001, 0, 10, 1},
		{3, -7, 0, 0.2},
	}
	for _, c := range cases {
		norm := math.Abs(c[0]) + math.Abs(c[1]) + math.Abs(c[2]) + math.Abs(c[3])
		roots, n, _ := SolveCubic(c[0], c[1], c[2], c[3])
		for _, r := range roots[:n] {
			res := c[0] + r*(c[1]+r*(c[2]+r*c[3]))
			if math.Abs(res) > 1e-8*norm {
				t.Errorf("solveCubic(%v): root %g has residual %g", c, r, res)
			}
		}
	}
}
