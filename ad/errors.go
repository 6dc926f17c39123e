package ad

import "fmt"

// Fatal error reporting. An unrecognized trace level aborts
// rather than returning a partial result. Every declared
// DerivativeTraceLevel is implemented, so the only fatal case is
// an out-of-range value reaching recordAndAssign's dispatch.

func fatalUnknownTraceLevel(level DerivativeTraceLevel) {
	panic(fmt.Sprintf("ad: unknown derivative trace level %d", int(level)))
}
