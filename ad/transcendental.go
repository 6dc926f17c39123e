package ad

import "math"

// Exp, Log, Log10, Sin, Cos, Tan, ASin, ACos, ATan: the
// exponential/logarithmic and (inverse) trigonometric schemas.
// Each supplies the full f'/f''/f''' triple the higher-order
// sweeps require.

const ln10 = 2.302585092994046 // math.Log(10), spelled out for Log10's derivatives

// Exp computes exp(x).
type Exp struct{ unary }

func NewExp(x ExpressionNode) *Exp { return &Exp{unary{x}} }

func (n *Exp) Value() float64 { return math.Exp(n.X.Value()) }
func (n *Exp) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Exp) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Exp) IsNonlinear() bool             { return true }
func (n *Exp) IsNonFunction() bool           { return false }
func (n *Exp) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Exp) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Exp) EvalD1(a uint32) float64 {
	v := n.Value()
	return unaryD1(v, n.X.EvalD1(a))
}
func (n *Exp) EvalD2(a, b uint32) float64 {
	v := n.Value()
	return unaryD2(v, v, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Exp) EvalD3(a, b, c uint32) float64 {
	v := n.Value()
	return unaryD3(v, v, v,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Exp) DynamicClone() ExpressionNode { return &Exp{unary{n.X.DynamicClone()}} }

// Log computes the natural logarithm of x.
type Log struct{ unary }

func NewLog(x ExpressionNode) *Log { return &Log{unary{x}} }

func (n *Log) Value() float64 { return math.Log(n.X.Value()) }
func (n *Log) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Log) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Log) IsNonlinear() bool             { return true }
func (n *Log) IsNonFunction() bool           { return false }
func (n *Log) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Log) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Log) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = 1 / t
	fpp = -1 / (t * t)
	fppp = 2 / (t * t * t)
	return
}
func (n *Log) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Log) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Log) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Log) DynamicClone() ExpressionNode { return &Log{unary{n.X.DynamicClone()}} }

// Log10 computes the base-10 logarithm of x.
type Log10 struct{ unary }

func NewLog10(x ExpressionNode) *Log10 { return &Log10{unary{x}} }

func (n *Log10) Value() float64 { return math.Log10(n.X.Value()) }
func (n *Log10) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Log10) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Log10) IsNonlinear() bool             { return true }
func (n *Log10) IsNonFunction() bool           { return false }
func (n *Log10) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Log10) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Log10) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = 1 / (t * ln10)
	fpp = -1 / (t * t * ln10)
	fppp = 2 / (t * t * t * ln10)
	return
}
func (n *Log10) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Log10) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Log10) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Log10) DynamicClone() ExpressionNode { return &Log10{unary{n.X.DynamicClone()}} }

// Sin computes sin(x).
type Sin struct{ unary }

func NewSin(x ExpressionNode) *Sin { return &Sin{unary{x}} }

func (n *Sin) Value() float64 { return math.Sin(n.X.Value()) }
func (n *Sin) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Sin) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Sin) IsNonlinear() bool             { return true }
func (n *Sin) IsNonFunction() bool           { return false }
func (n *Sin) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Sin) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Sin) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = math.Cos(t)
	fpp = -math.Sin(t)
	fppp = -math.Cos(t)
	return
}
func (n *Sin) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Sin) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Sin) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Sin) DynamicClone() ExpressionNode { return &Sin{unary{n.X.DynamicClone()}} }

// Cos computes cos(x).
type Cos struct{ unary }

func NewCos(x ExpressionNode) *Cos { return &Cos{unary{x}} }

func (n *Cos) Value() float64 { return math.Cos(n.X.Value()) }
func (n *Cos) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Cos) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Cos) IsNonlinear() bool             { return true }
func (n *Cos) IsNonFunction() bool           { return false }
func (n *Cos) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Cos) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Cos) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	fp = -math.Sin(t)
	fpp = -math.Cos(t)
	fppp = math.Sin(t)
	return
}
func (n *Cos) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Cos) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Cos) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Cos) DynamicClone() ExpressionNode { return &Cos{unary{n.X.DynamicClone()}} }

// Tan computes tan(x).
type Tan struct{ unary }

func NewTan(x ExpressionNode) *Tan { return &Tan{unary{x}} }

func (n *Tan) Value() float64 { return math.Tan(n.X.Value()) }
func (n *Tan) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Tan) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Tan) IsNonlinear() bool             { return true }
func (n *Tan) IsNonFunction() bool           { return false }
func (n *Tan) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Tan) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *Tan) derivs() (fp, fpp, fppp float64) {
	f := n.Value()
	fp = 1 + f*f
	fpp = 2 * f * fp
	fppp = 2*(1+3*f*f)*fp
	return
}
func (n *Tan) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Tan) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Tan) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Tan) DynamicClone() ExpressionNode { return &Tan{unary{n.X.DynamicClone()}} }

// ASin computes asin(x).
type ASin struct{ unary }

func NewASin(x ExpressionNode) *ASin { return &ASin{unary{x}} }

func (n *ASin) Value() float64 { return math.Asin(n.X.Value()) }
func (n *ASin) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *ASin) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *ASin) IsNonlinear() bool             { return true }
func (n *ASin) IsNonFunction() bool           { return false }
func (n *ASin) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *ASin) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *ASin) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	u := 1 - t*t
	su := math.Sqrt(u)
	fp = 1 / su
	fpp = t / (u * su)
	fppp = (1 + 2*t*t) / (u * u * su)
	return
}
func (n *ASin) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *ASin) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *ASin) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *ASin) DynamicClone() ExpressionNode { return &ASin{unary{n.X.DynamicClone()}} }

// ACos computes acos(x). acos = pi/2 - asin, so its derivatives
// are the negation of ASin's at every order.
type ACos struct{ unary }

func NewACos(x ExpressionNode) *ACos { return &ACos{unary{x}} }

func (n *ACos) Value() float64 { return math.Acos(n.X.Value()) }
func (n *ACos) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *ACos) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *ACos) IsNonlinear() bool             { return true }
func (n *ACos) IsNonFunction() bool           { return false }
func (n *ACos) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *ACos) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *ACos) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	u := 1 - t*t
	su := math.Sqrt(u)
	fp = -1 / su
	fpp = -t / (u * su)
	fppp = -(1 + 2*t*t) / (u * u * su)
	return
}
func (n *ACos) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *ACos) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *ACos) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *ACos) DynamicClone() ExpressionNode { return &ACos{unary{n.X.DynamicClone()}} }

// ATan computes atan(x).
type ATan struct{ unary }

func NewATan(x ExpressionNode) *ATan { return &ATan{unary{x}} }

func (n *ATan) Value() float64 { return math.Atan(n.X.Value()) }
func (n *ATan) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *ATan) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *ATan) IsNonlinear() bool             { return true }
func (n *ATan) IsNonFunction() bool           { return false }
func (n *ATan) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *ATan) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }
func (n *ATan) derivs() (fp, fpp, fppp float64) {
	t := n.X.Value()
	u := 1 + t*t
	fp = 1 / u
	fpp = -2 * t / (u * u)
	fppp = (6*t*t - 2) / (u * u * u)
	return
}
func (n *ATan) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *ATan) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *ATan) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *ATan) DynamicClone() ExpressionNode { return &ATan{unary{n.X.DynamicClone()}} }
