package ad

// Accumulate performs the first-order reverse sweep.
// It seeds the last tape entry's dependent with adjoint 1 and
// walks the tape from newest to oldest, propagating adjoints into
// every leaf's VariableInfo. Every leaf's prior adjoint is zeroed
// first so repeated calls do not compound across iterations.
func (g *GradientStructure) Accumulate() {
	if len(g.stack) == 0 {
		return
	}
	for _, info := range g.leaves {
		info.dvalue = 0
	}
	g.stack[len(g.stack)-1].w.dvalue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.w.dvalue
		if a == 0 {
			continue
		}
		ids := e.ids.List()
		for i, info := range ids {
			info.dvalue += a * e.firstAt(i, ids)
		}
	}
}
