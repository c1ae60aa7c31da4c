package theorem

import (
	"juniper/internal/leanterm"

	"github.com/pkg/errors"
)

// split walks the outer Foralls of a theorem, collecting side-condition
// hypotheses and pushing binder names onto the de Bruijn stack, then lowers
// the terminal body — which must be a top-level equality — into its two
// sides, per §4.7.4.
func split(e *leanterm.Expr) (conditions []*IR, lhs, rhs *IR, err error) {
	var stack []string
	cur := e

	for cur.Kind == leanterm.ForallE {
		if cur.BinderType == nil || cur.Body == nil {
			return nil, nil, nil, errors.Wrap(ErrIRShape, "forall missing binder type or body")
		}
		// The binder's type is checked against the outer context: it cannot
		// refer to the variable it is itself typing, so it is lowered
		// before that variable's name is pushed onto the stack.
		if !isTypeQuantifier(cur.BinderType) {
			hyp, hErr := lower(cur.BinderType, stack)
			if hErr != nil {
				return nil, nil, nil, hErr
			}
			if hyp.Kind != Eq && hyp.Kind != Ne {
				return nil, nil, nil, errors.Wrap(ErrIRShape, "hypothesis binder type is not an equality or disequality")
			}
			conditions = append(conditions, hyp)
		}

		stack = append([]string{cur.BinderName}, stack...)
		cur = cur.Body
	}

	concl, err := lower(cur, stack)
	if err != nil {
		return nil, nil, nil, err
	}
	if concl.Kind != Eq {
		return nil, nil, nil, errors.Wrap(ErrIRShape, "theorem body is not a top-level equality")
	}
	return conditions, concl.In1, concl.In2, nil
}

// isTypeQuantifier reports whether a binder type is a bare universe or
// type-parameter reference (discarded) rather than a hypothesis (kept).
func isTypeQuantifier(e *leanterm.Expr) bool {
	switch e.Kind {
	case leanterm.Const, leanterm.Sort, leanterm.Lit:
		return true
	default:
		return false
	}
}
