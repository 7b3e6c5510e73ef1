package planar

import "testing"

func TestApprox(t *testing.T) {
	if !Approx(1.0, 1.0, 0) {
		t.Error("equal values should compare equal for any tolerance")
	}
	if !Approx(1.0, 1.0+1e-10, 1e-9) {
		t.Error("expected values to be approximately equal")
	}
	if Approx(1.0, 1.0+1e-8, 1e-9) {
		t.Error("expected values to differ")
	}
	// Relative away from zero, absolute near it.
	if !Approx(1e9, 1e9+1, 1e-8) {
		t.Error("expected large values to compare relatively")
	}
	if Approx(0, 1e-8, 1e-9) {
		t.Error("expected small values to compare absolutely")
	}
}

func TestSnapToInteger(t *testing.T) {
	if got := SnapToInteger(1+1e-12, 1e-9); got != 1 {
		t.Errorf("got %g, want 1", got)
	}
	if got := SnapToInteger(-1e-12, 1e-9); got != 0 {
		t.Errorf("got %g, want 0", got)
	}
	if got := SnapToInteger(0.5, 1e-9); got != 0.5 {
		t.Errorf("got %g, want 0.5", got)
	}
}
