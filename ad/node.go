package ad

// ExpressionNode is the uniform contract every leaf, constant,
// and operator answers. Nodes borrow their children:
// a node tree is only valid for the duration of the assignment
// statement that builds it, and the record-and-assign procedure
// (variable.go) always finishes its forward-and-derivatives walk
// before returning, so there is nothing left borrowing a node
// after the statement ends.
type ExpressionNode interface {
	// Value returns the node's current forward value.
	Value() float64

	// PushIds inserts every leaf this subexpression depends on
	// into set. When includeDependent is true, each inserted
	// leaf is marked as participating in a nonlinear chain.
	PushIds(set *IdSet, includeDependent bool)

	// PushIdsU32 is PushIds for callers that only need leaf ids,
	// not the VariableInfo objects themselves.
	PushIdsU32(set *Uint32Set)

	// IsNonlinear conservatively reports whether this node or
	// any descendant is not purely affine in its leaves.
	IsNonlinear() bool

	// IsNonFunction is an operator-local flag: true for floor,
	// ceil, fabs; false otherwise.
	IsNonFunction() bool

	// MakeNLInteractions recursively marks leaves that
	// participate in a nonlinear interaction below this node.
	MakeNLInteractions(flag bool)

	// PushNLInteractions collects leaves marked by a prior
	// MakeNLInteractions call.
	PushNLInteractions(set *IdSet)

	// EvalD1 returns d/dx_a of this subexpression at the
	// current values.
	EvalD1(a uint32) float64

	// EvalD2 returns d^2/dx_a dx_b.
	EvalD2(a, b uint32) float64

	// EvalD3 returns d^3/dx_a dx_b dx_c.
	EvalD3(a, b, c uint32) float64

	// DynamicClone deep-clones this subexpression into an owning
	// tree whose primal values are frozen at the current values
	// (DynamicRecord mode). The clone keeps sharing
	// the (heap-resident, ref-counted) VariableInfo of any leaf
	// it reaches, since a later sweep must still match against
	// the real leaf ids; only the *values* seen by Value() are
	// frozen.
	DynamicClone() ExpressionNode
}

// DynamicExpression is the type-erased, owning tree produced by
// DynamicClone. It is the same interface as ExpressionNode: every
// node type in this package can serve as its own frozen clone
// once its leaves are replaced by frozen snapshots (see dynLeaf in
// dynamic.go), so no separate representation is needed.
type DynamicExpression = ExpressionNode

// Scalar is a constant node: all derivatives are zero at every
// order, and it has no leaves.
type Scalar float64

func (c Scalar) Value() float64                         { return float64(c) }
func (c Scalar) PushIds(*IdSet, bool)                    {}
func (c Scalar) PushIdsU32(*Uint32Set)                   {}
func (c Scalar) IsNonlinear() bool                        { return false }
func (c Scalar) IsNonFunction() bool                      { return false }
func (c Scalar) MakeNLInteractions(bool)                  {}
func (c Scalar) PushNLInteractions(*IdSet)                {}
func (c Scalar) EvalD1(uint32) float64                    { return 0 }
func (c Scalar) EvalD2(uint32, uint32) float64             { return 0 }
func (c Scalar) EvalD3(uint32, uint32, uint32) float64      { return 0 }
func (c Scalar) DynamicClone() ExpressionNode             { return c }

// Chain-rule helpers shared by the unary and binary operator
// families below. A unary node f(g) computes:
//
//	eval_d(a)     = f'(g)  * g.eval_d(a)
//	eval_d(a,b)   = f''(g) * g.eval_d(a) * g.eval_d(b) + f'(g) * g.eval_d(a,b)
//	eval_d(a,b,c) = f'''(g)*ga*gb*gc + f''(g)*(gab*gc + gac*gb + gbc*ga) + f'(g)*gabc

func unaryD1(fp, ga float64) float64 {
	return fp * ga
}

func unaryD2(fp, fpp, ga, gb, gab float64) float64 {
	return fpp*ga*gb + fp*gab
}

func unaryD3(fp, fpp, fppp, ga, gb, gc, gab, gac, gbc, gabc float64) float64 {
	return fppp*ga*gb*gc + fpp*(gab*gc+gac*gb+gbc*ga) + fp*gabc
}

// Binary product-rule helpers for f*g (used directly by Multiply,
// and by Divide via the reciprocal unary chain).

func mulD1(f, fa, g, ga float64) float64 {
	return fa*g + f*ga
}

func mulD2(f, fa, fb, fab, g, ga, gb, gab float64) float64 {
	return fab*g + fa*gb + fb*ga + f*gab
}

func mulD3(
	f, fa, fb, fc, fab, fac, fbc, fabc,
	g, ga, gb, gc, gab, gac, gbc, gabc float64,
) float64 {
	return fabc*g + fab*gc + fac*gb + fbc*ga +
		fa*gbc + fb*gac + fc*gab + f*gabc
}

// dsign is the one-sided derivative of Fabs at zero: the value
// at the kink is the right-hand limit, which for |t| is +1.
func dsign(t float64) float64 {
	if t < 0 {
		return -1
	}
	return 1
}
