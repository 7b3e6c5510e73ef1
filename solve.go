package planar

import "math"

// The solvers in this file share a tri-state return: a fixed-size array of
// roots together with their count, plus an indeterminate flag. The flag is
// set when the polynomial is identically zero, so that every x is a root.
// Callers propagate it as the "infinitely many intersections" case; it is
// distinct from a count of zero, which means the polynomial has no real
// roots.

// SolveLinear finds the real root of a linear equation.
//
// Returns the value of x for which c0 + c1 x = 0.0, along with the number
// of roots found. The third return value reports whether the equation is
// identically zero.
func SolveLinear(c0, c1 float64) ([1]float64, int, bool) {
	if c1 == 0.0 {
		if c0 == 0.0 {
			return [1]float64{}, 0, true
		}
		return [1]float64{}, 0, false
	}
	return [1]float64{-c0 / c1}, 1, false
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0, along with the
// number of roots found. The third return value reports whether the
// equation is identically zero.
//
// When the discriminant is positive, one root is computed with the
// same-sign variant of the quadratic formula and the other via the
// product-of-roots identity c0/c2, avoiding the catastrophic cancellation
// of the textbook subtraction form.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int, bool) {
	if c2 == 0.0 {
		roots, n, indet := SolveLinear(c0, c1)
		return [2]float64{roots[0]}, n, indet
	}
	d := c1*c1 - 4.0*c2*c0
	switch {
	case d < 0.0:
		return [2]float64{}, 0, false
	case d == 0.0:
		return [2]float64{-c1 / (2.0 * c2)}, 1, false
	default:
		// See https://math.stackexchange.com/questions/866331
		root1 := -0.5 * (c1 + math.Copysign(math.Sqrt(d), c1)) / c2
		root2 := c0 / c2 / root1
		if root2 < root1 {
			root1, root2 = root2, root1
		}
		return [2]float64{root1, root2}, 2, false
	}
}

// SolveCubic finds real roots of a cubic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0, along
// with the number of roots found. The third return value reports whether
// the equation is identically zero. Repeated roots are collapsed.
//
// The equation is normalized to monic form and solved in closed form: the
// trigonometric variant of Cardano's method when all three roots are real,
// and a cube-root branch chosen by the sign of the depressed constant term
// q otherwise, which avoids subtractive cancellation.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int, bool) {
	if c3 == 0.0 {
		roots, n, indet := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n, indet
	}
	a0 := c0 / c3
	a1 := c1 / c3
	a2 := c2 / c3
	p := 3.0*a1 - a2*a2
	q := 27.0*a0 - 9.0*a1*a2 + 2.0*a2*a2*a2
	d := q*q + 4.0*p*p*p
	switch {
	case d < 0.0:
		// Three distinct real roots, via the trigonometric form. The
		// modulus rc is the cube root of the magnitude of the complex
		// cube-root argument.
		sd := math.Sqrt(-d)
		rc := math.Pow((q/2.0)*(q/2.0)+(sd/2.0)*(sd/2.0), 1.0/6.0)
		phi := math.Atan2(sd, -q)
		root := func(k float64) float64 {
			return (2.0*rc*math.Cos((phi+2.0*k*math.Pi)/3.0) - a2) / 3.0
		}
		return [3]float64{root(0.0), root(1.0), root(-1.0)}, 3, false
	case d == 0.0:
		if q == 0.0 {
			// Triple root.
			return [3]float64{-a2 / 3.0}, 1, false
		}
		rc := math.Cbrt(-q / 2.0)
		return [3]float64{(2.0*rc - a2) / 3.0, (-rc - a2) / 3.0}, 2, false
	default:
		// One real root. Pick the cube-root branch by the sign of q so
		// that the two summands don't cancel.
		sd := math.Sqrt(d)
		var rc1, rc2 float64
		if q >= 0.0 {
			rc2 = math.Cbrt((-q - sd) / 2.0)
			rc1 = -p / rc2
		} else {
			rc1 = math.Cbrt((-q + sd) / 2.0)
			rc2 = -p / rc1
		}
		return [3]float64{(rc1 + rc2 - a2) / 3.0}, 1, false
	}
}
