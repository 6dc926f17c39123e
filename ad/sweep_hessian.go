package ad

// AccumulateGradientAndHessian performs the combined gradient and
// Hessian reverse sweep, by edge pushing. Alongside the
// first-order adjoint propagation it maintains a sparse Hessian
// keyed by canonical (leaf-id, leaf-id) pairs, reading each
// entry's own cross-Hessian against its dependent before zeroing
// that dependent's row and column once the entry retires.
//
// A dependent a may carry Hessian edges to leaves that are not
// among its own entry's independents: a later entry may have
// combined a with some other leaf q after a was recorded (a
// dependent info may be reused as an independent in later
// assignments). Those edges are pushed onto a's predecessors
// before zeroRowCol discards them, same as the edges within ids.
func (g *GradientStructure) AccumulateGradientAndHessian() {
	if len(g.stack) == 0 {
		return
	}
	for _, info := range g.leaves {
		info.dvalue = 0
	}
	g.hessian = make(map[pairKey]float64)

	last := g.stack[len(g.stack)-1]
	last.w.dvalue = 1
	g.hessian[canonicalPair(last.w.id, last.w.id)] = 0

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.w
		n := e.N()
		ids := e.ids.List()

		ga := a.dvalue
		haa := g.hessian[canonicalPair(a.id, a.id)]
		ha := make([]float64, n)
		for i := 0; i < n; i++ {
			ha[i] = g.hessian[canonicalPair(a.id, ids[i].id)]
		}
		outside := g.outsideHessianEdges(a.id, ids)

		for i := 0; i < n; i++ {
			ids[i].dvalue += ga * e.firstAt(i, ids)
		}

		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				li, lj := e.firstAt(i, ids), e.firstAt(j, ids)
				mij := e.secondMixedAt(i, j, ids)
				key := canonicalPair(ids[i].id, ids[j].id)
				g.hessian[key] += ga*mij + li*lj*haa + li*ha[j] + lj*ha[i]
			}
		}

		for _, edge := range outside {
			for i := 0; i < n; i++ {
				li := e.firstAt(i, ids)
				g.hessian[canonicalPair(ids[i].id, edge.q)] += li * edge.v
			}
		}

		g.zeroRowCol(a.id)
	}
}

// hessianEdge is a snapshotted cross-Hessian cell H(id, q).
type hessianEdge struct {
	q uint32
	v float64
}

// outsideHessianEdges snapshots every existing Hessian cell that
// touches id but whose other endpoint is neither id itself nor a
// member of ids. Those are the edges the within-ids loop never
// reads and zeroRowCol is about to destroy; it must be taken before
// any mutation of g.hessian in this entry's processing, both
// because it has to see the state left by later (already-processed)
// entries and because Go map iteration order is undefined once keys
// are added mid-range.
func (g *GradientStructure) outsideHessianEdges(id uint32, ids []*VariableInfo) []hessianEdge {
	if len(g.hessian) == 0 {
		return nil
	}
	skip := make(map[uint32]bool, len(ids))
	for _, info := range ids {
		skip[info.id] = true
	}
	var out []hessianEdge
	for k, v := range g.hessian {
		var q uint32
		switch {
		case k.i == id && k.j == id:
			continue
		case k.i == id:
			q = k.j
		case k.j == id:
			q = k.i
		default:
			continue
		}
		if skip[q] {
			continue
		}
		out = append(out, hessianEdge{q: q, v: v})
	}
	return out
}

// zeroRowCol clears every Hessian cell referencing leaf id, so
// that an earlier entry whose dependent reuses this id starts
// from a clean row/column.
func (g *GradientStructure) zeroRowCol(id uint32) {
	for k := range g.hessian {
		if k.i == id || k.j == id {
			delete(g.hessian, k)
		}
	}
}
