package ad

// AccumulateThirdOrderMixed performs the reverse sweep that
// produces the gradient, the full Hessian, and the symmetric
// third-order tensor in one pass. It extends sweep_hessian.go's
// edge-pushing recursion one order further: every outer adjoint
// quantity sweep_hessian.go reads off the dependent (its first
// derivative, its Hessian row) grows one more index here (its
// Hessian, its tensor slice), and the entry's own local third
// derivative (e.thirdMixed) takes the role e.secondMixed played
// before.
//
// As in the Hessian sweep, a dependent a can carry Hessian and
// tensor edges to leaves outside its own entry's ids (a
// dependent reused as an independent downstream). outsideTensorEdges
// and outsideHessianEdges snapshot those before zeroRowCol and
// zeroTensorFor discard a's row/column, and the three shapes they
// can take (T(a,a,q), T(a,S[i],q), T(a,q1,q2), all with q, q1, q2
// outside ids) are pushed onto new entries built from a's
// predecessors the same way the within-ids terms are.
func (g *GradientStructure) AccumulateThirdOrderMixed() {
	if len(g.stack) == 0 {
		return
	}
	for _, info := range g.leaves {
		info.dvalue = 0
	}
	g.hessian = make(map[pairKey]float64)
	g.tensor = make(map[tripleKey]float64)

	last := g.stack[len(g.stack)-1]
	last.w.dvalue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.w
		n := e.N()
		ids := e.ids.List()

		ga := a.dvalue
		haa := g.hessian[canonicalPair(a.id, a.id)]
		taaa := g.tensor[canonicalTriple(a.id, a.id, a.id)]

		ha := make([]float64, n)
		taa := make([]float64, n)
		for i := 0; i < n; i++ {
			ha[i] = g.hessian[canonicalPair(a.id, ids[i].id)]
			taa[i] = g.tensor[canonicalTriple(a.id, a.id, ids[i].id)]
		}
		tcross := make([][]float64, n)
		for i := 0; i < n; i++ {
			tcross[i] = make([]float64, n)
			for j := 0; j < n; j++ {
				tcross[i][j] = g.tensor[canonicalTriple(a.id, ids[i].id, ids[j].id)]
			}
		}
		outsideH := g.outsideHessianEdges(a.id, ids)
		aaOut, mixedOut, outOutEdges := g.outsideTensorEdges(a.id, ids)

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

		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				for k := j; k < n; k++ {
					li, lj, lk := e.firstAt(i, ids), e.firstAt(j, ids), e.firstAt(k, ids)
					mij := e.secondMixedAt(i, j, ids)
					mik := e.secondMixedAt(i, k, ids)
					mjk := e.secondMixedAt(j, k, ids)
					nijk := e.thirdMixedAt(i, j, k, ids)

					val := ga*nijk +
						li*lj*lk*taaa +
						(mij*lk+mik*lj+mjk*li)*haa +
						li*lj*taa[k] + li*lk*taa[j] + lj*lk*taa[i] +
						mij*ha[k] + mik*ha[j] + mjk*ha[i] +
						li*tcross[j][k] + lj*tcross[i][k] + lk*tcross[i][j]

					key := canonicalTriple(ids[i].id, ids[j].id, ids[k].id)
					g.tensor[key] += val
				}
			}
		}

		for _, he := range outsideH {
			for i := 0; i < n; i++ {
				g.hessian[canonicalPair(ids[i].id, he.q)] += e.firstAt(i, ids) * he.v
			}
		}

		if len(aaOut) > 0 || len(mixedOut) > 0 {
			haOutMap := make(map[uint32]float64, len(outsideH))
			for _, he := range outsideH {
				haOutMap[he.q] = he.v
			}
			taaOutMap := make(map[uint32]float64, len(aaOut))
			for _, ae := range aaOut {
				taaOutMap[ae.q] = ae.v
			}
			mixedMap := make(map[uint32][]float64, len(mixedOut))
			for _, me := range mixedOut {
				row := mixedMap[me.q]
				if row == nil {
					row = make([]float64, n)
					mixedMap[me.q] = row
				}
				row[me.i] = me.v
			}
			qset := make(map[uint32]bool, len(taaOutMap)+len(mixedMap))
			for q := range taaOutMap {
				qset[q] = true
			}
			for q := range mixedMap {
				qset[q] = true
			}
			for q := range qset {
				taaOutV := taaOutMap[q]
				haOutV := haOutMap[q]
				row := mixedMap[q]
				for i := 0; i < n; i++ {
					li := e.firstAt(i, ids)
					var mi float64
					if row != nil {
						mi = row[i]
					}
					for j := i; j < n; j++ {
						lj := e.firstAt(j, ids)
						mij := e.secondMixedAt(i, j, ids)
						var mj float64
						if row != nil {
							mj = row[j]
						}
						val := li*lj*taaOutV + mij*haOutV + li*mj + lj*mi
						if val == 0 {
							continue
						}
						g.tensor[canonicalTriple(ids[i].id, ids[j].id, q)] += val
					}
				}
			}
		}

		for _, oe := range outOutEdges {
			for i := 0; i < n; i++ {
				g.tensor[canonicalTriple(ids[i].id, oe.q1, oe.q2)] += e.firstAt(i, ids) * oe.v
			}
		}

		g.zeroRowCol(a.id)
		g.zeroTensorFor(a.id)
	}
}

// tensorAAEdge is a snapshotted T(id, id, q) tensor cell.
type tensorAAEdge struct {
	q uint32
	v float64
}

// tensorMixedEdge is a snapshotted T(id, S[i], q) tensor cell,
// where S[i] is one of id's own predecessors and q is outside id's
// predecessor set.
type tensorMixedEdge struct {
	i int
	q uint32
	v float64
}

// tensorOutOutEdge is a snapshotted T(id, q1, q2) tensor cell where
// both q1 and q2 are outside id's predecessor set.
type tensorOutOutEdge struct {
	q1, q2 uint32
	v      float64
}

// outsideTensorEdges mirrors outsideHessianEdges one order up: it
// snapshots every existing tensor cell that touches id but whose
// other index or indices are not already covered by the within-ids
// loops above (T(id,id,q), T(id,S[i],q), and T(id,q1,q2), each with
// q, q1, q2 outside ids), so the caller can push them onto id's
// predecessors before zeroTensorFor discards them. Must run before
// any mutation of g.tensor in this entry's processing, for the same
// reasons as outsideHessianEdges.
func (g *GradientStructure) outsideTensorEdges(id uint32, ids []*VariableInfo) (aa []tensorAAEdge, mixed []tensorMixedEdge, outOut []tensorOutOutEdge) {
	if len(g.tensor) == 0 {
		return nil, nil, nil
	}
	pos := make(map[uint32]int, len(ids))
	for i, info := range ids {
		pos[info.id] = i
	}
	for k, v := range g.tensor {
		idxs := [3]uint32{k.i, k.j, k.k}
		matches := 0
		var others []uint32
		for _, x := range idxs {
			if x == id {
				matches++
			} else {
				others = append(others, x)
			}
		}
		switch matches {
		case 2:
			q := others[0]
			if _, ok := pos[q]; ok {
				continue
			}
			aa = append(aa, tensorAAEdge{q: q, v: v})
		case 1:
			p1, p2 := others[0], others[1]
			i1, ok1 := pos[p1]
			i2, ok2 := pos[p2]
			switch {
			case ok1 && ok2:
				continue
			case ok1:
				mixed = append(mixed, tensorMixedEdge{i: i1, q: p2, v: v})
			case ok2:
				mixed = append(mixed, tensorMixedEdge{i: i2, q: p1, v: v})
			default:
				outOut = append(outOut, tensorOutOutEdge{q1: p1, q2: p2, v: v})
			}
		}
	}
	return aa, mixed, outOut
}

// zeroTensorFor clears every third-order tensor cell referencing
// leaf id, mirroring zeroRowCol for the extra index.
func (g *GradientStructure) zeroTensorFor(id uint32) {
	for k := range g.tensor {
		if k.i == id || k.j == id || k.k == id {
			delete(g.tensor, k)
		}
	}
}
