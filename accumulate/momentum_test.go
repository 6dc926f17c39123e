package accumulate

import (
	"math"
	"testing"

	"github.com/msupernaw/autodiff-go/ad"
)

// TestMomentumMinimizesQuadratic drives Momentum against a simple
// bowl, (x-3)^2, and checks it converges toward the minimum.
func TestMomentumMinimizesQuadratic(t *testing.T) {
	x := ad.NewVariable(0)
	vars := []*ad.Variable{x}
	tape := ad.Tape()
	defer ad.DropTape()

	observe := func() *ad.Variable {
		y := ad.NewVariable(0)
		diff := ad.NewSubtract(x, ad.Scalar(3))
		y.Set(ad.NewMultiply(diff, diff))
		return y
	}

	opt := &Momentum{Eta: 0.1, Alpha: 0.8}
	for i := 0; i < 200; i++ {
		tape.Reset()
		if _, err := opt.Step(tape, vars, observe); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	if math.Abs(x.Value()-3) > 0.05 {
		t.Errorf("x = %v, want close to 3", x.Value())
	}
}

// TestMomentumDefaults checks setDefaults fills in Eta/Alpha only
// when left at their zero value.
func TestMomentumDefaults(t *testing.T) {
	m := &Momentum{}
	m.setDefaults()
	if m.Eta != 0.01 || m.Alpha != 0.9 {
		t.Errorf("defaults = {Eta:%v Alpha:%v}, want {0.01 0.9}", m.Eta, m.Alpha)
	}

	m2 := &Momentum{Eta: 0.5, Alpha: 0.5}
	m2.setDefaults()
	if m2.Eta != 0.5 || m2.Alpha != 0.5 {
		t.Errorf("setDefaults overrode explicit values: got {Eta:%v Alpha:%v}", m2.Eta, m2.Alpha)
	}
}

// TestMomentumRecoversFromPanic checks that a panicking observe
// surfaces as an error rather than crashing the caller.
func TestMomentumRecoversFromPanic(t *testing.T) {
	x := ad.NewVariable(1)
	vars := []*ad.Variable{x}
	tape := ad.Tape()
	defer ad.DropTape()

	opt := &Momentum{}
	_, err := opt.Step(tape, vars, func() *ad.Variable {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected an error from a panicking observe")
	}
}
