package ad

// End-to-end tests of whole recorded computations, checking
// values, gradients, Hessians and third-order tensors against
// closed forms.

import (
	"math"
	"testing"
)

const tol = 1e-12

func approx(a, b float64) bool { return math.Abs(a-b) <= tol*(1+math.Abs(b)) }

// TestMulPlusSin records z = x*y + sin(x) at x=3, y=2 under the
// full mixed-partial second-order trace and checks the value, the
// gradient and every Hessian cell against the closed forms
// dz/dx = y + cos(x), dz/dy = x, d2z/dx2 = -sin(x), d2z/dxdy = 1.
func TestMulPlusSin(t *testing.T) {
	tape := NewGradientStructure()
	tape.SetTraceLevel(SecondOrderMixedPartials)
	x := NewVariable(3)
	y := NewVariable(2)
	z := NewVariable(0)
	withTape(tape, func() *Variable {
		z.Set(NewAdd(NewMultiply(x, y), NewSin(x)))
		return z
	})

	if got, want := z.Value(), 6+math.Sin(3); !approx(got, want) {
		t.Errorf("z = %v, want %v", got, want)
	}

	vars := []*Variable{x, y}
	g := make([]float64, 2)
	h := make([]float64, 4)
	tape.ComputeGradientAndHessian(vars, g, h)

	if want := 2 + math.Cos(3); !approx(g[0], want) {
		t.Errorf("dz/dx = %v, want %v", g[0], want)
	}
	if !approx(g[1], 3) {
		t.Errorf("dz/dy = %v, want 3", g[1])
	}
	wantH := []float64{-math.Sin(3), 1, 1, 0}
	for i, want := range wantH {
		if !approx(h[i], want) {
			t.Errorf("H[%d] = %v, want %v", i, h[i], want)
		}
	}
}

// TestExpTimesX records y = exp(x)*x at x=1 under the third-order
// mixed trace: the n'th derivative of x*exp(x) is (x+n)*exp(x), so
// the expected value, gradient, Hessian diagonal and tensor
// diagonal are e, 2e, 3e and 4e.
func TestExpTimesX(t *testing.T) {
	tape := NewGradientStructure()
	tape.SetTraceLevel(ThirdOrderMixedPartials)
	x := NewVariable(1)
	y := NewVariable(0)
	withTape(tape, func() *Variable {
		y.Set(NewMultiply(NewExp(x), x))
		return y
	})

	if !approx(y.Value(), math.E) {
		t.Errorf("y = %v, want e", y.Value())
	}

	vars := []*Variable{x}
	g := make([]float64, 1)
	h := make([]float64, 1)
	third := make([]float64, 1)
	tape.ComputeUpToThirdOrderMixed(vars, g, h, third)

	if !approx(g[0], 2*math.E) {
		t.Errorf("dy/dx = %v, want 2e = %v", g[0], 2*math.E)
	}
	if !approx(h[0], 3*math.E) {
		t.Errorf("d2y/dx2 = %v, want 3e = %v", h[0], 3*math.E)
	}
	if !approx(third[0], 4*math.E) {
		t.Errorf("d3y/dx3 = %v, want 4e = %v", third[0], 4*math.E)
	}
}

// TestPowCube records y = x^3 at x=0.5 under the third-order mixed
// trace: dy/dx = 3x^2 = 0.75, d2y/dx2 = 6x = 3, d3y/dx3 = 6.
func TestPowCube(t *testing.T) {
	tape := NewGradientStructure()
	tape.SetTraceLevel(ThirdOrderMixedPartials)
	x := NewVariable(0.5)
	y := NewVariable(0)
	withTape(tape, func() *Variable {
		y.Set(NewPow(x, 3))
		return y
	})

	vars := []*Variable{x}
	g := make([]float64, 1)
	h := make([]float64, 1)
	third := make([]float64, 1)
	tape.ComputeUpToThirdOrderMixed(vars, g, h, third)

	if !approx(g[0], 0.75) {
		t.Errorf("dy/dx = %v, want 0.75", g[0])
	}
	if !approx(h[0], 3) {
		t.Errorf("d2y/dx2 = %v, want 3", h[0])
	}
	if !approx(third[0], 6) {
		t.Errorf("d3y/dx3 = %v, want 6", third[0])
	}
}

// TestDynamicRecord checks that DynamicRecord entries carry no
// eagerly-evaluated derivative arrays: the frozen clone is
// re-evaluated during the sweep, at the primal values observed
// when the assignment was recorded, even if the leaf's value is
// overwritten afterwards.
func TestDynamicRecord(t *testing.T) {
	tape := NewGradientStructure()
	tape.SetTraceLevel(DynamicRecord)
	x := NewVariable(3)
	y := NewVariable(0)
	withTape(tape, func() *Variable {
		y.Set(NewMultiply(x, x))
		return y
	})

	entry := tape.at(0)
	if entry.first != nil {
		t.Errorf("DynamicRecord entry eagerly populated first = %v", entry.first)
	}
	if entry.exp == nil {
		t.Fatal("DynamicRecord entry carries no expression clone")
	}

	x.SetValue(100)
	tape.Accumulate()
	if got := x.Adjoint(); got != 6 {
		t.Errorf("dy/dx = %v, want 6 (at the recorded value 3)", got)
	}
}

// TestMathDomainBoundaries checks that domain violations propagate
// as NaN/Inf through values and derivatives without tearing down
// the tape.
func TestMathDomainBoundaries(t *testing.T) {
	t.Run("log(0)", func(t *testing.T) {
		tape := NewGradientStructure()
		x := NewVariable(0)
		y := NewVariable(0)
		withTape(tape, func() *Variable {
			y.Set(NewLog(x))
			return y
		})
		if !math.IsInf(y.Value(), -1) {
			t.Errorf("log(0) = %v, want -Inf", y.Value())
		}
		tape.Accumulate()
		if !math.IsInf(x.Adjoint(), +1) {
			t.Errorf("d log(0)/dx = %v, want +Inf", x.Adjoint())
		}
	})

	t.Run("sqrt(0)", func(t *testing.T) {
		tape := NewGradientStructure()
		x := NewVariable(0)
		y := NewVariable(0)
		withTape(tape, func() *Variable {
			y.Set(NewSqrt(x))
			return y
		})
		if y.Value() != 0 {
			t.Errorf("sqrt(0) = %v, want 0", y.Value())
		}
		tape.Accumulate()
		if !math.IsInf(x.Adjoint(), +1) {
			t.Errorf("d sqrt(0)/dx = %v, want +Inf", x.Adjoint())
		}
	})
}

// TestScalarAssignmentGrowsNoEntry checks the tape-growth
// invariant: a scalar assignment writes no record, an expression
// assignment writes exactly one.
func TestScalarAssignmentGrowsNoEntry(t *testing.T) {
	tape := NewGradientStructure()
	x := NewVariable(1)
	v := NewVariable(0)
	withTape(tape, func() *Variable {
		v.SetValue(5)
		if tape.Len() != 0 {
			t.Errorf("scalar assignment grew the tape to %d entries", tape.Len())
		}
		v.Set(NewAdd(x, Scalar(2)))
		return v
	})
	if tape.Len() != 1 {
		t.Errorf("expression assignment grew the tape to %d entries, want 1", tape.Len())
	}
}

// TestIdentityAndConstantRoundTrips: v = u yields du = 1; v = k
// yields a zero gradient everywhere.
func TestIdentityAndConstantRoundTrips(t *testing.T) {
	tape := NewGradientStructure()
	u := NewVariable(4)
	other := NewVariable(9)
	v := NewVariable(0)
	withTape(tape, func() *Variable {
		v.Set(u)
		return v
	})
	tape.Accumulate()
	if u.Adjoint() != 1 {
		t.Errorf("du = %v, want 1", u.Adjoint())
	}
	if other.Adjoint() != 0 {
		t.Errorf("adjoint of an unrelated leaf = %v, want 0", other.Adjoint())
	}

	ctape := NewGradientStructure()
	k := NewVariable(0)
	withTape(ctape, func() *Variable {
		k.Set(Scalar(7))
		return k
	})
	ctape.Accumulate()
	if k.Value() != 7 {
		t.Errorf("k = %v, want 7", k.Value())
	}
	if got := ctape.Value(u.ID()); got != 0 {
		t.Errorf("gradient of a constant assignment w.r.t. u = %v, want 0", got)
	}
}
