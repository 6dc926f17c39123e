// Package accumulate holds optimizer loops that drive a tape's
// reverse sweeps from outside the core differentiation engine.
package accumulate

import (
	"fmt"
	"log"

	"github.com/msupernaw/autodiff-go/ad"
)

// Momentum is a gradient-descent-with-momentum optimizer step:
// a per-parameter velocity accumulating a friction term against
// the gradient.
type Momentum struct {
	Eta   float64 // learning rate
	Alpha float64 // momentum coefficient

	velocity []float64
}

// setDefaults fills in unset hyperparameters.
func (m *Momentum) setDefaults() {
	if m.Eta == 0 {
		m.Eta = 0.01
	}
	if m.Alpha == 0 {
		m.Alpha = 0.9
	}
}

// Step runs observe once under tape's active recording to produce
// a scalar objective, accumulates its gradient with respect to
// vars, and applies one momentum update to each of vars in place.
// It returns the objective's value. A panic escaping observe is
// intercepted and reported through the returned error instead of
// crashing the caller.
func (m *Momentum) Step(
	tape *ad.GradientStructure,
	vars []*ad.Variable,
	observe func() *ad.Variable,
) (value float64, err error) {
	m.setDefaults()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: accumulate.Momentum: %v", r)
			err = fmt.Errorf("accumulate: %v", r)
		}
	}()

	if m.velocity == nil {
		m.velocity = make([]float64, len(vars))
	}

	y := observe()
	grad := make([]float64, len(vars))
	tape.ComputeGradient(vars, grad)

	for i, v := range vars {
		m.velocity[i] = m.Alpha*m.velocity[i] - m.Eta*grad[i]
		v.SetValue(v.Value() + m.velocity[i])
	}

	return y.Value(), nil
}
