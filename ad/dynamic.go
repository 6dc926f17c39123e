package ad

// dynLeaf is the frozen counterpart of a Variable leaf produced by
// DynamicClone in DynamicRecord mode: it keeps
// sharing the leaf's VariableInfo (a later sweep matches derivative
// requests against the real leaf id) but answers Value with the
// primal value observed at clone time, not the leaf's possibly
// since-mutated current value.
type dynLeaf struct {
	info  *VariableInfo
	value float64
}

func (d *dynLeaf) Value() float64 { return d.value }

func (d *dynLeaf) PushIds(set *IdSet, includeDependent bool) {
	set.Add(d.info)
	if includeDependent {
		d.info.isNL = true
	}
}

func (d *dynLeaf) PushIdsU32(set *Uint32Set) { set.Add(d.info.id) }
func (d *dynLeaf) IsNonlinear() bool         { return false }
func (d *dynLeaf) IsNonFunction() bool       { return false }
func (d *dynLeaf) MakeNLInteractions(flag bool) {
	if flag {
		d.info.hasNLInteraction = true
	}
}
func (d *dynLeaf) PushNLInteractions(set *IdSet) {
	if d.info.hasNLInteraction {
		set.Add(d.info)
	}
}
func (d *dynLeaf) EvalD1(a uint32) float64 {
	if a == d.info.id {
		return 1
	}
	return 0
}
func (d *dynLeaf) EvalD2(uint32, uint32) float64        { return 0 }
func (d *dynLeaf) EvalD3(uint32, uint32, uint32) float64 { return 0 }
func (d *dynLeaf) DynamicClone() ExpressionNode          { return d }
