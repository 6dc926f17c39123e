package ad

// AccumulateSecondOrder performs the reverse sweep for the
// diagonal-only SecondOrder trace level: it composes
// d^2F/dx_i^2 through the tape via the ordinary single-variable
// chain rule, reading each entry's own diagonal second derivative
// (StackEntry.Second) instead of the full mixed-partial matrix the
// GradientAndHessian sweep builds. That's the tradeoff of this
// trace level: cross-predecessor interactions within one entry
// (the mij terms AccumulateGradientAndHessian tracks) are not
// captured, only each predecessor's own curvature.
func (g *GradientStructure) AccumulateSecondOrder() {
	if len(g.stack) == 0 {
		return
	}
	for _, info := range g.leaves {
		info.dvalue = 0
		info.d2value = 0
	}
	g.stack[len(g.stack)-1].w.dvalue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.w
		ga, g2a := a.dvalue, a.d2value
		ids := e.ids.List()
		for i, info := range ids {
			li := e.firstAt(i, ids)
			mii := e.Second(info.id)
			info.dvalue += ga * li
			info.d2value += ga*mii + li*li*g2a
		}
	}
}

// AccumulateThirdOrder performs the reverse sweep for the
// diagonal-only ThirdOrder trace level, extending
// AccumulateSecondOrder with the single-variable third-derivative
// chain rule (Faa di Bruno for one composed variable at a time) and
// reading StackEntry.Third for each entry's local diagonal third
// derivative.
func (g *GradientStructure) AccumulateThirdOrder() {
	if len(g.stack) == 0 {
		return
	}
	for _, info := range g.leaves {
		info.dvalue = 0
		info.d2value = 0
		info.d3value = 0
	}
	g.stack[len(g.stack)-1].w.dvalue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.w
		ga, g2a, g3a := a.dvalue, a.d2value, a.d3value
		ids := e.ids.List()
		for i, info := range ids {
			li := e.firstAt(i, ids)
			mii := e.Second(info.id)
			niii := e.Third(info.id)
			info.dvalue += ga * li
			info.d2value += ga*mii + li*li*g2a
			info.d3value += ga*niii + 3*li*mii*g2a + li*li*li*g3a
		}
	}
}
