package ad

import "fmt"

// DerivativeTraceLevel selects which derivative orders a
// GradientStructure captures per recorded assignment.
type DerivativeTraceLevel int

const (
	// FirstOrder records only entry.first and marks dependents.
	FirstOrder DerivativeTraceLevel = iota
	// SecondOrder additionally records the per-leaf diagonal second
	// derivative.
	SecondOrder
	// ThirdOrder additionally records the per-leaf diagonal third
	// derivative and bumps dependence_level.
	ThirdOrder
	// SecondOrderMixedPartials records the full n x n Hessian of a
	// single assignment.
	SecondOrderMixedPartials
	// ThirdOrderMixedPartials records the full n x n x n tensor of
	// a single assignment.
	ThirdOrderMixedPartials
	// Gradient records exactly what FirstOrder records; the two
	// levels are handled identically.
	Gradient
	// GradientAndHessian records only the lower triangle (j<=i) of
	// the mixed second partials.
	GradientAndHessian
	// DynamicRecord defers all derivative evaluation: the entry
	// stores a frozen clone of the expression tree instead of
	// derivative arrays.
	DynamicRecord
)

func (l DerivativeTraceLevel) String() string {
	switch l {
	case FirstOrder:
		return "FirstOrder"
	case SecondOrder:
		return "SecondOrder"
	case ThirdOrder:
		return "ThirdOrder"
	case SecondOrderMixedPartials:
		return "SecondOrderMixedPartials"
	case ThirdOrderMixedPartials:
		return "ThirdOrderMixedPartials"
	case Gradient:
		return "Gradient"
	case GradientAndHessian:
		return "GradientAndHessian"
	case DynamicRecord:
		return "DynamicRecord"
	default:
		return fmt.Sprintf("DerivativeTraceLevel(%d)", int(l))
	}
}
