package ad

import "reflect"

// ElementalDerivatives supplies the closed-form f', f'', f''' a
// user-registered elemental function needs to participate in the
// same chain-rule contract as every built-in operator, through
// node.go's unaryD1/unaryD2/unaryD3 helpers.
type ElementalDerivatives struct {
	D1 func(value, x float64) float64
	D2 func(value, x float64) float64
	D3 func(value, x float64) float64
}

var elementalRegistry = map[uintptr]ElementalDerivatives{}

// fkey computes the registry key for a function value.
func fkey(f interface{}) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// RegisterElemental associates a scalar math function with the
// derivatives node.go needs to differentiate through it. Call this
// once at package init time for any math.* function (or user
// function) passed to Elemental.
func RegisterElemental(f func(float64) float64, derivs ElementalDerivatives) {
	elementalRegistry[fkey(f)] = derivs
}

// elementalDerivativesFor looks up the derivatives registered for
// f, panicking if none were registered.
func elementalDerivativesFor(f func(float64) float64) ElementalDerivatives {
	d, ok := elementalRegistry[fkey(f)]
	if !ok {
		panic("ad: function passed to Elemental was never registered with RegisterElemental")
	}
	return d
}

// Elemental wraps an arbitrary registered scalar function as an
// ExpressionNode, so user math beyond the built-in operator family
// still composes into the tape.
type Elemental struct {
	unary
	f func(float64) float64
}

// NewElemental builds an Elemental node calling f(x.Value()), using
// the derivatives f was registered with via RegisterElemental.
func NewElemental(f func(float64) float64, x ExpressionNode) *Elemental {
	return &Elemental{unary{x}, f}
}

func (n *Elemental) Value() float64 { return n.f(n.X.Value()) }
func (n *Elemental) PushIds(set *IdSet, includeDependent bool) {
	n.X.PushIds(set, includeDependent)
}
func (n *Elemental) PushIdsU32(set *Uint32Set)     { n.X.PushIdsU32(set) }
func (n *Elemental) IsNonlinear() bool             { return true }
func (n *Elemental) IsNonFunction() bool           { return false }
func (n *Elemental) MakeNLInteractions(bool)       { n.X.MakeNLInteractions(true) }
func (n *Elemental) PushNLInteractions(set *IdSet) { n.X.PushNLInteractions(set) }

func (n *Elemental) derivs() (fp, fpp, fppp float64) {
	d := elementalDerivativesFor(n.f)
	v, t := n.Value(), n.X.Value()
	fp = d.D1(v, t)
	if d.D2 != nil {
		fpp = d.D2(v, t)
	}
	if d.D3 != nil {
		fppp = d.D3(v, t)
	}
	return
}

func (n *Elemental) EvalD1(a uint32) float64 {
	fp, _, _ := n.derivs()
	return unaryD1(fp, n.X.EvalD1(a))
}
func (n *Elemental) EvalD2(a, b uint32) float64 {
	fp, fpp, _ := n.derivs()
	return unaryD2(fp, fpp, n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD2(a, b))
}
func (n *Elemental) EvalD3(a, b, c uint32) float64 {
	fp, fpp, fppp := n.derivs()
	return unaryD3(fp, fpp, fppp,
		n.X.EvalD1(a), n.X.EvalD1(b), n.X.EvalD1(c),
		n.X.EvalD2(a, b), n.X.EvalD2(a, c), n.X.EvalD2(b, c),
		n.X.EvalD3(a, b, c))
}
func (n *Elemental) DynamicClone() ExpressionNode {
	return &Elemental{unary{n.X.DynamicClone()}, n.f}
}
