package transform

import (
	"math"
	"testing"

	"github.com/msupernaw/autodiff-go/ad"
)

func roundTrip(t *testing.T, name string, tr interface {
	External2Internal(external, min, max float64) float64
	Internal2External(internal, min, max float64) float64
}, min, max, external float64) {
	internal := tr.External2Internal(external, min, max)
	got := tr.Internal2External(internal, min, max)
	if math.Abs(got-external) > 1e-6 {
		t.Errorf("%s: round trip %v -> %v -> %v, want %v", name, external, internal, got, external)
	}
}

func TestIdentity(t *testing.T) {
	roundTrip(t, "Identity", Identity{}, -10, 10, 3.5)
	if d := (Identity{}).DerivativeInternal2External(0, -10, 10); d != 1 {
		t.Errorf("Identity derivative = %v, want 1", d)
	}
}

func TestSinRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 2.5, 5, 7.5, 9.9} {
		roundTrip(t, "Sin", Sin{}, 0, 10, x)
	}
}

func TestTanhRoundTrip(t *testing.T) {
	for _, x := range []float64{0.1, 2.5, 5, 7.5, 9.9} {
		roundTrip(t, "Tanh", Tanh{}, 0, 10, x)
	}
}

// TestTanhDerivativeMatchesNumeric checks the re-derived
// DerivativeInternal2External against a central finite difference of
// Internal2External, at a handful of internal coordinates.
func TestTanhDerivativeMatchesNumeric(t *testing.T) {
	tr := Tanh{}
	const min, max = -3.0, 4.0
	for _, internal := range []float64{-1.5, -0.3, 0, 0.7, 2.0} {
		h := 1e-6
		numeric := (tr.Internal2External(internal+h, min, max) - tr.Internal2External(internal-h, min, max)) / (2 * h)
		analytic := tr.DerivativeInternal2External(internal, min, max)
		if math.Abs(numeric-analytic) > 1e-5 {
			t.Errorf("internal=%v: analytic=%v, numeric=%v", internal, analytic, numeric)
		}
	}
}

func TestSinDerivativeMatchesNumeric(t *testing.T) {
	tr := Sin{}
	const min, max = -3.0, 4.0
	for _, internal := range []float64{-1.5, -0.3, 0, 0.7, 1.4} {
		h := 1e-6
		numeric := (tr.Internal2External(internal+h, min, max) - tr.Internal2External(internal-h, min, max)) / (2 * h)
		analytic := tr.DerivativeInternal2External(internal, min, max)
		if math.Abs(numeric-analytic) > 1e-5 {
			t.Errorf("internal=%v: analytic=%v, numeric=%v", internal, analytic, numeric)
		}
	}
}

// TestBoundedVariableRoundTrip drives the full ad.Variable
// integration: a variable bounded to [0, 10] and set to 7 must
// recover its value after mapping to internal coordinates and
// back through the sine transform.
func TestBoundedVariableRoundTrip(t *testing.T) {
	v := ad.NewBoundedVariable(7, 0, 10, Sin{})
	internal := v.InternalValue()
	v.SetFromInternal(internal)
	if got := v.Value(); math.Abs(got-7) > 1e-12 {
		t.Errorf("round trip through internal coordinates: got %v, want 7", got)
	}
}

// TestBoundedVariableClamps checks the bounded SetValue contract:
// out-of-range values clamp to the nearest bound, and NaN is
// replaced by the midpoint.
func TestBoundedVariableClamps(t *testing.T) {
	v := ad.NewBoundedVariable(5, 0, 10, Sin{})
	v.SetValue(42)
	if v.Value() != 10 {
		t.Errorf("SetValue(42) = %v, want clamp to 10", v.Value())
	}
	v.SetValue(-3)
	if v.Value() != 0 {
		t.Errorf("SetValue(-3) = %v, want clamp to 0", v.Value())
	}
	v.SetValue(math.NaN())
	if v.Value() != 5 {
		t.Errorf("SetValue(NaN) = %v, want the midpoint 5", v.Value())
	}
}

func TestTanhClampsNearBoundary(t *testing.T) {
	tr := Tanh{}
	internal := tr.External2Internal(10, 0, 10)
	if math.IsInf(internal, 0) || math.IsNaN(internal) {
		t.Errorf("External2Internal at the upper boundary = %v, want a finite clamp", internal)
	}
}
