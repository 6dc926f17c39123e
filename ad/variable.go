package ad

import "math"

// Variable is a differentiable handle: it binds a leaf
// identifier, a current value, and a lifecycle to tape entries,
// and its assignment operator is the sole producer of tape
// records. Variable is itself a leaf ExpressionNode whose first
// derivative with respect to its own id is 1.
type Variable struct {
	info *VariableInfo

	bounded     bool
	minBoundary float64
	maxBoundary float64
	transform   ParameterTransformation

	name string
}

// NewVariable allocates a fresh, unbounded Variable with the given
// initial value.
func NewVariable(value float64) *Variable {
	return &Variable{info: newVariableInfo(value)}
}

// NewBoundedVariable allocates a Variable constrained to
// [min, max], mapped to and from its internal representation by
// the given transform.
func NewBoundedVariable(value, min, max float64, t ParameterTransformation) *Variable {
	v := &Variable{
		info:        newVariableInfo(value),
		bounded:     true,
		minBoundary: min,
		maxBoundary: max,
		transform:   t,
	}
	v.SetValue(value)
	return v
}

// Copy returns a new handle sharing the same underlying
// VariableInfo, incrementing its reference count.
func (v *Variable) Copy() *Variable {
	return &Variable{
		info:        v.info.retain(),
		bounded:     v.bounded,
		minBoundary: v.minBoundary,
		maxBoundary: v.maxBoundary,
		transform:   v.transform,
		name:        v.name,
	}
}

// Release drops this handle's reference to its VariableInfo. Go's
// garbage collector reclaims the info regardless; Release exists so
// the ref-count lifecycle is observable and testable.
func (v *Variable) Release() { v.info.release() }

// ID returns the leaf identifier backing this handle.
func (v *Variable) ID() uint32 { return v.info.ID() }

// Value returns the current primal (external) value.
func (v *Variable) Value() float64 { return v.info.Value() }

// Name returns the handle's optional human label.
func (v *Variable) Name() string { return v.name }

// SetName attaches a human label, propagated onto the underlying
// VariableInfo for diagnostics.
func (v *Variable) SetName(name string) {
	v.name = name
	v.info.name = name
}

// IsBounded reports whether this handle is constrained to
// [MinBoundary, MaxBoundary].
func (v *Variable) IsBounded() bool { return v.bounded }

// MinBoundary returns the lower bound, meaningful only when
// IsBounded is true.
func (v *Variable) MinBoundary() float64 { return v.minBoundary }

// MaxBoundary returns the upper bound, meaningful only when
// IsBounded is true.
func (v *Variable) MaxBoundary() float64 { return v.maxBoundary }

// InternalValue returns the value used internally by an optimizer:
// the external value unchanged when unbounded, or its image under
// the attached ParameterTransformation's External2Internal map when
// bounded.
func (v *Variable) InternalValue() float64 {
	if !v.bounded {
		return v.info.Value()
	}
	return v.transform.External2Internal(v.info.Value(), v.minBoundary, v.maxBoundary)
}

// RefCount returns the number of live handles sharing this
// Variable's info. Tape entries that reference the info are not
// counted.
func (v *Variable) RefCount() int32 { return v.info.RefCount() }

// IsDependent reports whether this Variable has ever appeared as
// the left-hand side of a tape record.
func (v *Variable) IsDependent() bool { return v.info.IsDependent() }

// Adjoint returns the first-order adjoint last written to this
// leaf by a reverse sweep.
func (v *Variable) Adjoint() float64 { return v.info.Adjoint() }

// Adjoint2 returns the diagonal second-order adjoint last written
// to this leaf by AccumulateSecondOrder or AccumulateThirdOrder.
func (v *Variable) Adjoint2() float64 { return v.info.Adjoint2() }

// Adjoint3 returns the diagonal third-order adjoint last written to
// this leaf by AccumulateThirdOrder.
func (v *Variable) Adjoint3() float64 { return v.info.Adjoint3() }

// SetValue assigns a scalar directly: it updates the primal value
// and produces no tape record. When bounded, the value is clamped
// into [min, max]; a NaN input is replaced by the midpoint of the
// bounds.
func (v *Variable) SetValue(value float64) {
	if v.bounded {
		if math.IsNaN(value) {
			value = (v.minBoundary + v.maxBoundary) / 2
		} else if value < v.minBoundary {
			value = v.minBoundary
		} else if value > v.maxBoundary {
			value = v.maxBoundary
		}
	}
	v.info.vvalue = value
}

// SetFromInternal sets the external value from an internal
// (unconstrained) coordinate via the attached transform's
// Internal2External map. It is a no-op transform when unbounded.
func (v *Variable) SetFromInternal(internal float64) {
	if !v.bounded {
		v.SetValue(internal)
		return
	}
	v.SetValue(v.transform.Internal2External(internal, v.minBoundary, v.maxBoundary))
}

// Set is the assignment-from-expression operator: it runs the
// record-and-assign procedure against the calling goroutine's
// active tape.
func (v *Variable) Set(e ExpressionNode) { recordAndAssign(Tape(), v, e) }

// Compound arithmetic, each producing exactly one additional tape
// record via the equivalent rebuild-and-reassign.

func (v *Variable) AddAssign(e ExpressionNode) { v.Set(NewAdd(v, e)) }
func (v *Variable) SubAssign(e ExpressionNode) { v.Set(NewSubtract(v, e)) }
func (v *Variable) MulAssign(e ExpressionNode) { v.Set(NewMultiply(v, e)) }
func (v *Variable) DivAssign(e ExpressionNode) { v.Set(NewDivide(v, e)) }
func (v *Variable) Increment()                 { v.Set(NewAdd(v, Scalar(1))) }
func (v *Variable) Decrement()                 { v.Set(NewSubtract(v, Scalar(1))) }

// ExpressionNode implementation: Variable is its own leaf node.

func (v *Variable) PushIds(set *IdSet, includeDependent bool) {
	set.Add(v.info)
	if includeDependent {
		v.info.isNL = true
	}
}

func (v *Variable) PushIdsU32(set *Uint32Set) { set.Add(v.info.id) }
func (v *Variable) IsNonlinear() bool         { return false }
func (v *Variable) IsNonFunction() bool       { return false }

func (v *Variable) MakeNLInteractions(flag bool) {
	if flag {
		v.info.hasNLInteraction = true
	}
}

func (v *Variable) PushNLInteractions(set *IdSet) {
	if v.info.hasNLInteraction {
		set.Add(v.info)
	}
}

func (v *Variable) EvalD1(a uint32) float64 {
	if a == v.info.id {
		return 1
	}
	return 0
}
func (v *Variable) EvalD2(uint32, uint32) float64        { return 0 }
func (v *Variable) EvalD3(uint32, uint32, uint32) float64 { return 0 }

func (v *Variable) DynamicClone() ExpressionNode {
	return &dynLeaf{info: v.info, value: v.info.vvalue}
}

// recordAndAssign walks e once, under the tape's active trace
// level, to populate exactly one new StackEntry, then commits the
// forward value to v. The entire walk of e completes against v's
// pre-assignment info before assignDependent may swap in a fresh
// one, so a self-referencing expression (v += e) differentiates
// against the value v held going in.
func recordAndAssign(t *GradientStructure, v *Variable, e ExpressionNode) {
	if !t.recording {
		v.SetValue(e.Value())
		return
	}

	level := t.traceLevel

	if level == DynamicRecord {
		set := NewIdSet()
		e.PushIds(set, false)
		for _, info := range set.List() {
			info.dependenceLevel++
			t.registerLeaf(info)
		}
		entry := &StackEntry{ids: set, exp: e.DynamicClone()}
		value := e.Value()
		entry.w = assignDependent(t, v, set)
		t.push(entry)
		v.SetValue(value)
		return
	}

	mixed := level == SecondOrderMixedPartials ||
		level == ThirdOrderMixedPartials ||
		level == GradientAndHessian

	if mixed {
		e.MakeNLInteractions(false)
	}

	set := NewIdSet()
	e.PushIds(set, mixed)
	entry := &StackEntry{ids: set}
	ids := set.List()
	n := len(ids)

	entry.first = make([]float64, n)
	for i, info := range ids {
		entry.first[i] = e.EvalD1(info.id)
		t.registerLeaf(info)
	}

	switch level {
	case FirstOrder, Gradient:
		// baseline only

	case SecondOrder:
		entry.second = make([]float64, n)
		for i, info := range ids {
			entry.second[i] = e.EvalD2(info.id, info.id)
		}

	case ThirdOrder:
		entry.second = make([]float64, n)
		entry.third = make([]float64, n)
		for i, info := range ids {
			entry.second[i] = e.EvalD2(info.id, info.id)
			entry.third[i] = e.EvalD3(info.id, info.id, info.id)
			info.dependenceLevel++
		}

	case SecondOrderMixedPartials:
		entry.secondMixed = make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				val := e.EvalD2(ids[i].id, ids[j].id)
				entry.secondMixed[i*n+j] = val
				entry.secondMixed[j*n+i] = val
			}
		}

	case GradientAndHessian:
		entry.secondMixed = make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				entry.secondMixed[i*n+j] = e.EvalD2(ids[i].id, ids[j].id)
			}
		}

	case ThirdOrderMixedPartials:
		entry.secondMixed = make([]float64, n*n)
		entry.thirdMixed = make([]float64, n*n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				val := e.EvalD2(ids[i].id, ids[j].id)
				entry.secondMixed[i*n+j] = val
				for k := 0; k < n; k++ {
					entry.thirdMixed[(i*n+j)*n+k] = e.EvalD3(ids[i].id, ids[j].id, ids[k].id)
				}
			}
		}

	default:
		fatalUnknownTraceLevel(level)
	}

	value := e.Value()
	entry.w = assignDependent(t, v, set)
	if mixed {
		markNLDependencies(t, entry.w, ids)
	}
	t.push(entry)
	v.SetValue(value)
}

// assignDependent binds the dependent slot of an entry under
// construction. A handle that is already the dependent of an
// earlier entry, or that appears among its own entry's
// independents (v += e), gets a fresh VariableInfo, one fresh
// place per assignment. The entry's independents keep pointing at
// the pre-assignment slot, and a reverse sweep never aliases a
// dependent's adjoint with one of its predecessors'.
func assignDependent(t *GradientStructure, v *Variable, ids *IdSet) *VariableInfo {
	w := v.info
	if _, self := ids.Contains(w.id); w.isDependent || self {
		nw := newVariableInfo(w.vvalue)
		nw.name = w.name
		w.release()
		v.info = nw
		w = nw
	}
	w.isDependent = true
	t.registerLeaf(w)
	return w
}

// markNLDependencies is the shared tail of the mixed-partial
// branches of recordAndAssign: it stores this entry's index in
// pushStart of each leaf marked nonlinear, overwriting any earlier
// index, and grows the dependent's dependency set.
func markNLDependencies(t *GradientStructure, w *VariableInfo, ids []*VariableInfo) {
	idx := t.nextIndex()
	if w.dependencies == nil {
		w.dependencies = NewIdSet()
	}
	for _, info := range ids {
		if info.isNL {
			info.pushStart = idx
		}
		w.dependencies.Add(info)
	}
}
