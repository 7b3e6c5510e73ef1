package planar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Ln(Pt(0, 0), Pt(1, 1))
	if got, want := l.Length(), math.Sqrt(2); math.Abs(got-want) > 1e-12 {
		t.Errorf("got length %g, want %g", got, want)
	}
}

func TestLineIsInf(t *testing.T) {
	if Ln(Pt(0, 0), Pt(1, 1)).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}
	if !Ln(Pt(0, 0), Pt(math.Inf(1), 1)).IsInf() {
		t.Error("line is finite but shouldn't be")
	}
	if !Ln(Pt(0, 0), Pt(0, math.Inf(1))).IsInf() {
		t.Error("line is finite but shouldn't be")
	}
}

func TestLineEval(t *testing.T) {
	l := Ln(Pt(1, 2), Pt(3, 6))
	diff(t, Pt(1, 2), l.Eval(0))
	diff(t, Pt(3, 6), l.Eval(1))
	diff(t, Pt(2, 4), l.Eval(0.5))
	diff(t, l.Eval(0.5), l.Midpoint())
}

func TestLineDeviationFromLine(t *testing.T) {
	if dev := Ln(Pt(0, 0), Pt(5, 3)).DeviationFromLine(); dev != 0 {
		t.Errorf("got deviation %g, want 0", dev)
	}
}

func TestLineParamsForPoint(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	l := Ln(Pt(0, 0), Pt(2, 2))

	roots, n, indet := l.ParamsForPoint(Pt(1, 1), 1e-9)
	if indet {
		t.Fatal("unexpected indeterminate result")
	}
	diff(t, []float64{0.5}, roots[:n], approx)

	// On the carrier line but outside the segment.
	if _, n, _ := l.ParamsForPoint(Pt(3, 3), 1e-9); n != 0 {
		t.Errorf("got %d parameters, want none", n)
	}

	// Not on the line.
	if _, n, _ := l.ParamsForPoint(Pt(1, 0), 1e-9); n != 0 {
		t.Errorf("got %d parameters, want none", n)
	}

	// A vertical line pins only the y parameter.
	v := Ln(Pt(1, 0), Pt(1, 2))
	roots, n, indet = v.ParamsForPoint(Pt(1, 1), 1e-9)
	if indet {
		t.Fatal("unexpected indeterminate result")
	}
	diff(t, []float64{0.5}, roots[:n], approx)

	// A degenerate line is point-degenerate at its own location.
	d := Ln(Pt(1, 1), Pt(1, 1))
	if _, _, indet := d.ParamsForPoint(Pt(1, 1), 1e-9); !indet {
		t.Error("expected indeterminate result")
	}
}
