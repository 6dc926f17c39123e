package ad

// Add, Subtract, Multiply, Divide and Negate: the binary and
// unary arithmetic nodes, one Go type per operator.

// binary holds the two borrowed children shared by every binary
// arithmetic node.
type binary struct {
	X, Y ExpressionNode
}

func (b binary) pushIds(set *IdSet, includeDependent bool) {
	b.X.PushIds(set, includeDependent)
	b.Y.PushIds(set, includeDependent)
}

func (b binary) pushIdsU32(set *Uint32Set) {
	b.X.PushIdsU32(set)
	b.Y.PushIdsU32(set)
}

func (b binary) pushNLInteractions(set *IdSet) {
	b.X.PushNLInteractions(set)
	b.Y.PushNLInteractions(set)
}

// Add computes x + y.
type Add struct{ binary }

func NewAdd(x, y ExpressionNode) *Add { return &Add{binary{x, y}} }

func (n *Add) Value() float64 { return n.X.Value() + n.Y.Value() }
func (n *Add) PushIds(set *IdSet, includeDependent bool) {
	n.pushIds(set, includeDependent)
}
func (n *Add) PushIdsU32(set *Uint32Set) { n.pushIdsU32(set) }
func (n *Add) IsNonlinear() bool         { return n.X.IsNonlinear() || n.Y.IsNonlinear() }
func (n *Add) IsNonFunction() bool       { return false }
func (n *Add) MakeNLInteractions(flag bool) {
	n.X.MakeNLInteractions(flag)
	n.Y.MakeNLInteractions(flag)
}
func (n *Add) PushNLInteractions(set *IdSet) { n.pushNLInteractions(set) }
func (n *Add) EvalD1(a uint32) float64       { return n.X.EvalD1(a) + n.Y.EvalD1(a) }
func (n *Add) EvalD2(a, b uint32) float64    { return n.X.EvalD2(a, b) + n.Y.EvalD2(a, b) }
func (n *Add) EvalD3(a, b, c uint32) float64 {
	return n.X.EvalD3(a, b, c) + n.Y.EvalD3(a, b, c)
}
func (n *Add) DynamicClone() ExpressionNode {
	return &Add{binary{n.X.DynamicClone(), n.Y.DynamicClone()}}
}

// Subtract computes x - y.
type Subtract struct{ binary }

func NewSubtract(x, y ExpressionNode) *Subtract { return &Subtract{binary{x, y}} }

func (n *Subtract) Value() float64 { return n.X.Value() - n.Y.Value() }
func (n *Subtract) PushIds(set *IdSet, includeDependent bool) {
	n.pushIds(set, includeDependent)
}
func (n *Subtract) PushIdsU32(set *Uint32Set) { n.pushIdsU32(set) }
func (n *Subtract) IsNonlinear() bool         { return n.X.IsNonlinear() || n.Y.IsNonlinear() }
func (n *Subtract) IsNonFunction() bool       { return false }
func (n *Subtract) MakeNLInteractions(flag bool) {
	n.X.MakeNLInteractions(flag)
	n.Y.MakeNLInteractions(flag)
}
func (n *Subtract) PushNLInteractions(set *IdSet) { n.pushNLInteractions(set) }
func (n *Subtract) EvalD1(a uint32) float64       { return n.X.EvalD1(a) - n.Y.EvalD1(a) }
func (n *Subtract) EvalD2(a, b uint32) float64    { return n.X.EvalD2(a, b) - n.Y.EvalD2(a, b) }
func (n *Subtract) EvalD3(a, b, c uint32) float64 {
	return n.X.EvalD3(a, b, c) - n.Y.EvalD3(a, b, c)
}
func (n *Subtract) DynamicClone() ExpressionNode {
	return &Subtract{binary{n.X.DynamicClone(), n.Y.DynamicClone()}}
}

// Multiply computes x * y. The chain rule expands via the
// general (multivariate) product rule, mulD1/mulD2/mulD3 in
// node.go; Divide reuses the same helpers against a reciprocal
// node.
type Multiply struct{ binary }

func NewMultiply(x, y ExpressionNode) *Multiply { return &Multiply{binary{x, y}} }

func (n *Multiply) Value() float64 { return n.X.Value() * n.Y.Value() }
func (n *Multiply) PushIds(set *IdSet, includeDependent bool) {
	n.pushIds(set, includeDependent)
}
func (n *Multiply) PushIdsU32(set *Uint32Set) { n.pushIdsU32(set) }
func (n *Multiply) IsNonlinear() bool         { return true }
func (n *Multiply) IsNonFunction() bool       { return false }
func (n *Multiply) MakeNLInteractions(flag bool) {
	n.X.MakeNLInteractions(true)
	n.Y.MakeNLInteractions(true)
}
func (n *Multiply) PushNLInteractions(set *IdSet) { n.pushNLInteractions(set) }
func (n *Multiply) EvalD1(a uint32) float64 {
	return mulD1(n.X.Value(), n.X.EvalD1(a), n.Y.Value(), n.Y.EvalD1(a))
}
func (n *Multiply) EvalD2(a, b uint32) float64 {
	return mulD2(
		n.X.Value(), n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b),
		n.Y.Value(), n.Y.EvalD1(a), n.Y.EvalD1(b), n.Y.EvalD2(a, b))
}
func (n *Multiply) EvalD3(a, b, c uint32) float64 {
	return mulD3(
		n.X.Value(), n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c), n.X.EvalD3(a, b, c),
		n.Y.Value(), n.Y.EvalD1(a), n.Y.EvalD1(b), n.Y.EvalD1(c),
		n.Y.EvalD2(a, b), n.Y.EvalD2(a, c), n.Y.EvalD2(b, c), n.Y.EvalD3(a, b, c))
}
func (n *Multiply) DynamicClone() ExpressionNode {
	return &Multiply{binary{n.X.DynamicClone(), n.Y.DynamicClone()}}
}

// Divide computes x / y, by applying the product rule to
// x * (1/y) and expanding 1/y's own derivatives through the
// standard unary chain rule for the reciprocal function
// r(t) = 1/t, r'= -1/t^2, r''= 2/t^3, r'''= -6/t^4.
type Divide struct{ binary }

func NewDivide(x, y ExpressionNode) *Divide { return &Divide{binary{x, y}} }

func (n *Divide) Value() float64 { return n.X.Value() / n.Y.Value() }
func (n *Divide) PushIds(set *IdSet, includeDependent bool) {
	n.pushIds(set, includeDependent)
}
func (n *Divide) PushIdsU32(set *Uint32Set) { n.pushIdsU32(set) }
func (n *Divide) IsNonlinear() bool         { return true }
func (n *Divide) IsNonFunction() bool       { return false }
func (n *Divide) MakeNLInteractions(flag bool) {
	n.X.MakeNLInteractions(true)
	n.Y.MakeNLInteractions(true)
}
func (n *Divide) PushNLInteractions(set *IdSet) { n.pushNLInteractions(set) }

// reciprocal returns the value and derivatives of 1/y(a,b,c) at
// the given leaves, via the unary chain rule on r(t) = 1/t.
func (n *Divide) reciprocal(a, b, c uint32) (g, ga, gb, gc, gab, gac, gbc, gabc float64) {
	yv := n.Y.Value()
	rp := -1 / (yv * yv)
	rpp := 2 / (yv * yv * yv)
	rppp := -6 / (yv * yv * yv * yv)

	ya, yb, yc := n.Y.EvalD1(a), n.Y.EvalD1(b), n.Y.EvalD1(c)
	yab, yac, ybc := n.Y.EvalD2(a, b), n.Y.EvalD2(a, c), n.Y.EvalD2(b, c)
	yabc := n.Y.EvalD3(a, b, c)

	g = 1 / yv
	ga = unaryD1(rp, ya)
	gb = unaryD1(rp, yb)
	gc = unaryD1(rp, yc)
	gab = unaryD2(rp, rpp, ya, yb, yab)
	gac = unaryD2(rp, rpp, ya, yc, yac)
	gbc = unaryD2(rp, rpp, yb, yc, ybc)
	gabc = unaryD3(rp, rpp, rppp, ya, yb, yc, yab, yac, ybc, yabc)
	return
}

func (n *Divide) EvalD1(a uint32) float64 {
	g, ga, _, _, _, _, _, _ := n.reciprocal(a, a, a)
	return mulD1(n.X.Value(), n.X.EvalD1(a), g, ga)
}
func (n *Divide) EvalD2(a, b uint32) float64 {
	g, ga, gb, _, gab, _, _, _ := n.reciprocal(a, b, b)
	return mulD2(
		n.X.Value(), n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b),
		g, ga, gb, gab)
}
func (n *Divide) EvalD3(a, b, c uint32) float64 {
	g, ga, gb, gc, gab, gac, gbc, gabc := n.reciprocal(a, b, c)
	return mulD3(
		n.X.Value(), n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c), n.X.EvalD3(a, b, c),
		g, ga, gb, gc, gab, gac, gbc, gabc)
}
func (n *Divide) DynamicClone() ExpressionNode {
	return &Divide{binary{n.X.DynamicClone(), n.Y.DynamicClone()}}
}

// unary holds the one borrowed child shared by every unary node.
type unary struct {
	X ExpressionNode
}

// Negate computes -x.
type Negate struct{ unary }

func NewNegate(x ExpressionNode) *Negate { return &Negate{unary{x}} }

func (n *Negate) Value() float64 { return -n.X.Value() }
func (n *Negate) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Negate) PushIdsU32(set *Uint32Set)      { n.X.PushIdsU32(set) }
func (n *Negate) IsNonlinear() bool              { return n.X.IsNonlinear() }
func (n *Negate) IsNonFunction() bool            { return false }
func (n *Negate) MakeNLInteractions(flag bool)   { n.X.MakeNLInteractions(flag) }
func (n *Negate) PushNLInteractions(set *IdSet)  { n.X.PushNLInteractions(set) }
func (n *Negate) EvalD1(a uint32) float64        { return -n.X.EvalD1(a) }
func (n *Negate) EvalD2(a, b uint32) float64     { return -n.X.EvalD2(a, b) }
func (n *Negate) EvalD3(a, b, c uint32) float64  { return -n.X.EvalD3(a, b, c) }
func (n *Negate) DynamicClone() ExpressionNode   { return &Negate{unary{n.X.DynamicClone()}} }
