package ad

import "math"

// Fabs, Floor, Ceil: the non-smooth nodes. All three report
// IsNonFunction true, and a derivative at a kink is taken as the
// right-hand limit.

// Fabs computes |x|. Its first derivative is the sign of x, taken
// as +1 at x == 0 per dsign's one-sided convention; its second and
// third derivatives are zero everywhere the first is defined.
type Fabs struct{ unary }

func NewFabs(x ExpressionNode) *Fabs { return &Fabs{unary{x}} }

func (n *Fabs) Value() float64 { return math.Abs(n.X.Value()) }
func (n *Fabs) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Fabs) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Fabs) IsNonlinear() bool             { return true }
func (n *Fabs) IsNonFunction() bool           { return true }
func (n *Fabs) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Fabs) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Fabs) EvalD1(a uint32) float64 {
	return unaryD1(dsign(n.X.Value()), n.X.EvalD1(a))
}
func (n *Fabs) EvalD2(a, b uint32) float64 {
	return unaryD2(dsign(n.X.Value()), 0, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Fabs) EvalD3(a, b, c uint32) float64 {
	s := dsign(n.X.Value())
	return unaryD3(s, 0, 0,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Fabs) DynamicClone() ExpressionNode { return &Fabs{unary{n.X.DynamicClone()}} }

// Floor computes floor(x). Piecewise-constant almost everywhere:
// every derivative is zero off the (measure-zero) integer kinks,
// which is the only value this engine ever reports for it.
type Floor struct{ unary }

func NewFloor(x ExpressionNode) *Floor { return &Floor{unary{x}} }

func (n *Floor) Value() float64 { return math.Floor(n.X.Value()) }
func (n *Floor) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Floor) PushIdsU32(set *Uint32Set)       { n.X.PushIdsU32(set) }
func (n *Floor) IsNonlinear() bool               { return true }
func (n *Floor) IsNonFunction() bool             { return true }
func (n *Floor) MakeNLInteractions(bool)         { n.X.MakeNLInteractions(true) }
func (n *Floor) PushNLInteractions(set *IdSet)   { n.X.PushNLInteractions(set) }
func (n *Floor) EvalD1(uint32) float64           { return 0 }
func (n *Floor) EvalD2(uint32, uint32) float64   { return 0 }
func (n *Floor) EvalD3(a, b, c uint32) float64   { return 0 }
func (n *Floor) DynamicClone() ExpressionNode    { return &Floor{unary{n.X.DynamicClone()}} }

// Ceil computes ceil(x), with the same piecewise-constant
// derivative convention as Floor.
type Ceil struct{ unary }

func NewCeil(x ExpressionNode) *Ceil { return &Ceil{unary{x}} }

func (n *Ceil) Value() float64 { return math.Ceil(n.X.Value()) }
func (n *Ceil) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Ceil) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Ceil) IsNonlinear() bool             { return true }
func (n *Ceil) IsNonFunction() bool           { return true }
func (n *Ceil) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Ceil) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Ceil) EvalD1(uint32) float64         { return 0 }
func (n *Ceil) EvalD2(uint32, uint32) float64 { return 0 }
func (n *Ceil) EvalD3(a, b, c uint32) float64 { return 0 }
func (n *Ceil) DynamicClone() ExpressionNode  { return &Ceil{unary{n.X.DynamicClone()}} }
