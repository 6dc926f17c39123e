package ad

import "math"

// Pow and Sqrt: the power-family nodes, built on the unary
// chain-rule helpers in node.go.

// Pow computes X^N for a constant real exponent N; the base is
// the only differentiable operand.
type Pow struct {
	unary
	N float64
}

func NewPow(x ExpressionNode, n float64) *Pow { return &Pow{unary{x}, n} }

func (n *Pow) Value() float64 { return math.Pow(n.X.Value(), n.N) }
func (n *Pow) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Pow) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Pow) IsNonlinear() bool             { return true }
func (n *Pow) IsNonFunction() bool           { return false }
func (n *Pow) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Pow) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }

func (n *Pow) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = n.N * math.Pow(t, n.N-1)
	fpp = n.N * (n.N - 1) * math.Pow(t, n.N-2)
	fppp = n.N * (n.N - 1) * (n.N - 2) * math.Pow(t, n.N-3)
	return
}

func (n *Pow) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Pow) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Pow) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Pow) DynamicClone() ExpressionNode { return &Pow{unary{n.X.DynamicClone()}, n.N} }

// Sqrt computes sqrt(x).
type Sqrt struct{ unary }

func NewSqrt(x ExpressionNode) *Sqrt { return &Sqrt{unary{x}} }

func (n *Sqrt) Value() float64 { return math.Sqrt(n.X.Value()) }
func (n *Sqrt) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Sqrt) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Sqrt) IsNonlinear() bool             { return true }
func (n *Sqrt) IsNonFunction() bool           { return false }
func (n *Sqrt) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Sqrt) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }

func (n *Sqrt) derivs() (fp, fpp, fppp float64) {
	v := n.Value() // sqrt(t)
	fp = 0.5 / v
	fpp = -0.25 / (v * v * v)
	fppp = 0.375 / (v * v * v * v * v)
	return
}

func (n *Sqrt) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Sqrt) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Sqrt) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Sqrt) DynamicClone() ExpressionNode { return &Sqrt{unary{n.X.DynamicClone()}} }
