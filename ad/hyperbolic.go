package ad

import "math"

// Sinh, Cosh, Tanh: the hyperbolic nodes, following the same
// shape as transcendental.go's circular functions.

// Sinh computes sinh(x).
type Sinh struct{ unary }

func NewSinh(x ExpressionNode) *Sinh { return &Sinh{unary{x}} }

func (n *Sinh) Value() float64 { return math.Sinh(n.X.Value()) }
func (n *Sinh) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Sinh) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Sinh) IsNonlinear() bool             { return true }
func (n *Sinh) IsNonFunction() bool           { return false }
func (n *Sinh) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Sinh) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Sinh) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = math.Cosh(t)
	fpp = math.Sinh(t)
	fppp = fp
	return
}
func (n *Sinh) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Sinh) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Sinh) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Sinh) DynamicClone() ExpressionNode { return &Sinh{unary{n.X.DynamicClone()}} }

// Cosh computes cosh(x).
type Cosh struct{ unary }

func NewCosh(x ExpressionNode) *Cosh { return &Cosh{unary{x}} }

func (n *Cosh) Value() float64 { return math.Cosh(n.X.Value()) }
func (n *Cosh) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Cosh) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Cosh) IsNonlinear() bool             { return true }
func (n *Cosh) IsNonFunction() bool           { return false }
func (n *Cosh) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Cosh) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Cosh) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = math.Sinh(t)
	fpp = math.Cosh(t)
	fppp = fp
	return
}
func (n *Cosh) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Cosh) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Cosh) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Cosh) DynamicClone() ExpressionNode { return &Cosh{unary{n.X.DynamicClone()}} }

// Tanh computes tanh(x).
type Tanh struct{ unary }

func NewTanh(x ExpressionNode) *Tanh { return &Tanh{unary{x}} }

func (n *Tanh) Value() float64 { return math.Tanh(n.X.Value()) }
func (n *Tanh) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Tanh) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Tanh) IsNonlinear() bool             { return true }
func (n *Tanh) IsNonFunction() bool           { return false }
func (n *Tanh) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Tanh) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Tanh) derivs() (fp, fpp, fppp float64) {
	f := n.Value()
	fp = 1 - f*f
	fpp = -2 * f * fp
	fppp = (6*f*f - 2) * fp
	return
}
func (n *Tanh) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Tanh) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Tanh) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Tanh) DynamicClone() ExpressionNode { return &Tanh{unary{n.X.DynamicClone()}} }
