package ad

// StackEntry is one tape record: the dependent leaf, the ordered
// set of independent leaves it was computed from, and the
// derivative slots the active trace level populated.
type StackEntry struct {
	w   *VariableInfo // dependent (left-hand side)
	ids *IdSet        // independent leaves, insertion order

	first  []float64 // d w / d x_i
	second []float64 // d^2 w / d x_i^2 (diagonal-only modes)
	third  []float64 // d^3 w / d x_i^3 (diagonal-only modes)

	secondMixed []float64 // n*n, row-major d^2 w / d x_i d x_j
	thirdMixed  []float64 // n*n*n, row-major d^3 w / d x_i d x_j d x_k

	exp DynamicExpression // frozen clone, DynamicRecord mode only
}

// N returns the number of independent leaves this entry covers.
func (e *StackEntry) N() int { return e.ids.Len() }

// indexOf returns the position of leaf id within e.ids, or -1.
func (e *StackEntry) indexOf(id uint32) int {
	if i, ok := e.ids.Contains(id); ok {
		return i
	}
	return -1
}

// First returns d w / d x_id, or 0 if id is not among the entry's
// independents.
func (e *StackEntry) First(id uint32) float64 {
	if i := e.indexOf(id); i >= 0 {
		return e.first[i]
	}
	return 0
}

// Second returns the diagonal second derivative for id.
func (e *StackEntry) Second(id uint32) float64 {
	if i := e.indexOf(id); i >= 0 && i < len(e.second) {
		return e.second[i]
	}
	return 0
}

// Third returns the diagonal third derivative for id.
func (e *StackEntry) Third(id uint32) float64 {
	if i := e.indexOf(id); i >= 0 && i < len(e.third) {
		return e.third[i]
	}
	return 0
}

// SecondMixed returns d^2 w / d x_id1 d x_id2.
func (e *StackEntry) SecondMixed(id1, id2 uint32) float64 {
	i, j := e.indexOf(id1), e.indexOf(id2)
	if i < 0 || j < 0 || len(e.secondMixed) == 0 {
		return 0
	}
	return e.rawSecondMixedAt(i, j)
}

// ThirdMixed returns d^3 w / d x_id1 d x_id2 d x_id3.
func (e *StackEntry) ThirdMixed(id1, id2, id3 uint32) float64 {
	i, j, k := e.indexOf(id1), e.indexOf(id2), e.indexOf(id3)
	if i < 0 || j < 0 || k < 0 || len(e.thirdMixed) == 0 {
		return 0
	}
	return e.rawThirdMixedAt(i, j, k)
}

// rawSecondMixedAt reads the second-mixed cell at local indices
// (i,j), symmetrizing when the active trace level only filled the
// lower triangle (GradientAndHessian).
func (e *StackEntry) rawSecondMixedAt(i, j int) float64 {
	if len(e.secondMixed) == 0 {
		return 0
	}
	n := e.N()
	if j <= i {
		return e.secondMixed[i*n+j]
	}
	return e.secondMixed[j*n+i]
}

// rawThirdMixedAt reads the third-mixed cell at local indices
// (i,j,k), canonicalizing the order since every stored cell is
// symmetric under permutation.
func (e *StackEntry) rawThirdMixedAt(i, j, k int) float64 {
	if len(e.thirdMixed) == 0 {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	if j > k {
		j, k = k, j
	}
	if i > j {
		i, j = j, i
	}
	n := e.N()
	return e.thirdMixed[(i*n+j)*n+k]
}

// The three *At helpers below are what the reverse sweeps
// actually call. In DynamicRecord mode an entry carries no
// derivative arrays at all — just the frozen expression clone in
// exp — so derivatives are evaluated on demand against it instead
// of read from first/secondMixed/thirdMixed.

func (e *StackEntry) firstAt(i int, ids []*VariableInfo) float64 {
	if e.exp != nil {
		return e.exp.EvalD1(ids[i].id)
	}
	return e.first[i]
}

func (e *StackEntry) secondMixedAt(i, j int, ids []*VariableInfo) float64 {
	if e.exp != nil {
		return e.exp.EvalD2(ids[i].id, ids[j].id)
	}
	return e.rawSecondMixedAt(i, j)
}

func (e *StackEntry) thirdMixedAt(i, j, k int, ids []*VariableInfo) float64 {
	if e.exp != nil {
		return e.exp.EvalD3(ids[i].id, ids[j].id, ids[k].id)
	}
	return e.rawThirdMixedAt(i, j, k)
}
