package ad

// ComputeGradient runs the first-order reverse sweep and writes
// each of vars' adjoints into out, in the same order.
func (g *GradientStructure) ComputeGradient(vars []*Variable, out []float64) {
	g.Accumulate()
	for i, v := range vars {
		out[i] = v.Adjoint()
	}
}

// ComputeSecondOrder runs the diagonal-only second-order reverse
// sweep and writes the gradient into gOut and each var's diagonal
// second derivative into d2Out, in the same order.
func (g *GradientStructure) ComputeSecondOrder(vars []*Variable, gOut, d2Out []float64) {
	g.AccumulateSecondOrder()
	for i, v := range vars {
		gOut[i] = v.Adjoint()
		d2Out[i] = v.Adjoint2()
	}
}

// ComputeThirdOrder runs the diagonal-only third-order reverse
// sweep and writes the gradient, diagonal second derivative, and
// diagonal third derivative into gOut, d2Out, d3Out.
func (g *GradientStructure) ComputeThirdOrder(vars []*Variable, gOut, d2Out, d3Out []float64) {
	g.AccumulateThirdOrder()
	for i, v := range vars {
		gOut[i] = v.Adjoint()
		d2Out[i] = v.Adjoint2()
		d3Out[i] = v.Adjoint3()
	}
}

// ComputeGradientAndHessian runs the combined gradient/Hessian
// sweep and writes the gradient into gOut and the dense Hessian
// (row-major, len(vars) x len(vars)) into hOut.
func (g *GradientStructure) ComputeGradientAndHessian(vars []*Variable, gOut []float64, hOut []float64) {
	g.AccumulateGradientAndHessian()
	n := len(vars)
	for i, v := range vars {
		gOut[i] = v.Adjoint()
		for j, w := range vars {
			hOut[i*n+j] = g.Value2(v.ID(), w.ID())
		}
	}
}

// ComputeUpToThirdOrderMixed runs the full third-order sweep and
// writes the gradient, dense Hessian, and dense symmetric
// third-order tensor (len(vars)^3, row-major) into gOut, hOut, and
// tOut respectively.
func (g *GradientStructure) ComputeUpToThirdOrderMixed(vars []*Variable, gOut, hOut, tOut []float64) {
	g.AccumulateThirdOrderMixed()
	n := len(vars)
	for i, v := range vars {
		gOut[i] = v.Adjoint()
		for j, w := range vars {
			hOut[i*n+j] = g.Value2(v.ID(), w.ID())
			for k, u := range vars {
				tOut[(i*n+j)*n+k] = g.Value3(v.ID(), w.ID(), u.ID())
			}
		}
	}
}
