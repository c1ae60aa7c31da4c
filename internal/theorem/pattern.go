package theorem

import (
	"fmt"
	"strconv"
	"strings"

	"juniper/internal/expr"

	"github.com/pkg/errors"
)

// emit prints an IR node to prefix form using the target grammar's symbols,
// per §4.7.5. Eq and Ne are never emitted directly — their two sides are
// emitted independently and compared structurally by the conditional
// applier (see compile.go) rather than printed as a combined pattern.
func emit(ir *IR) (string, error) {
	switch ir.Kind {
	case DefinedConst:
		return "π", nil
	case Var:
		return "?" + ir.Name, nil
	case OfNat:
		return strconv.FormatUint(ir.NatValue, 10), nil
	case OfScientific:
		if ir.ExpSign {
			return decimalForm(ir.NatValue, ir.Exponent), nil
		}
		return fmt.Sprintf("%de%d", ir.NatValue, ir.Exponent), nil
	case HBool:
		lhs, err := emit(ir.In1)
		if err != nil {
			return "", err
		}
		rhs, err := emit(ir.In2)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", ir.Op, lhs, rhs), nil
	case TUnary, IUnary:
		a, err := emit(ir.In1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s)", ir.Op, a), nil
	default:
		return "", errors.Wrapf(ErrIRShape, "node of kind %d cannot appear inside a pattern", ir.Kind)
	}
}

// decimalForm reassembles an OfScientific literal with a divide-by-10^e
// sign into "mantissa.fraction" form, inserting a decimal point e digits
// from the right and left-padding with zeros when the mantissa has fewer
// digits than the exponent demands.
func decimalForm(mantissa, exponent uint64) string {
	m := strconv.FormatUint(mantissa, 10)
	e := int(exponent)
	if e == 0 {
		return m
	}
	if e >= len(m) {
		return "0." + strings.Repeat("0", e-len(m)) + m
	}
	cut := len(m) - e
	return m[:cut] + "." + m[cut:]
}

// emitPattern prints ir and parses the result as a pattern, inheriting the
// expression grammar's pattern parser.
func emitPattern(ir *IR) (*expr.Term, error) {
	s, err := emit(ir)
	if err != nil {
		return nil, err
	}
	return expr.Parse(s)
}
