package theorem

import (
	"juniper/internal/egraph"
	"juniper/internal/expr"
	"juniper/internal/leanterm"

	"github.com/pkg/errors"
)

// Compile lowers a single theorem into the rewrite rule(s) it supports. It
// attempts both directions (name+"_forward", name+"_backward") per §4.7.7
// and accepts the theorem if at least one succeeds.
func Compile(e *leanterm.Expr, name string) ([]egraph.Rule, error) {
	conds, lhsIR, rhsIR, err := split(e)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	lhsPat, err := emitPattern(lhsIR)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: left-hand side", name)
	}
	rhsPat, err := emitPattern(rhsIR)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: right-hand side", name)
	}

	conditions, err := compileConditions(conds)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	var rules []egraph.Rule
	var forwardErr, backwardErr error

	if boundOK(lhsPat, rhsPat) {
		rules = append(rules, egraph.Rule{Name: name + "_forward", LHS: lhsPat, RHS: rhsPat, Conditions: conditions})
	} else {
		forwardErr = errors.Wrapf(ErrRewriteConstruction, "%s_forward: right-hand side has unbound variable(s)", name)
	}

	if boundOK(rhsPat, lhsPat) {
		rules = append(rules, egraph.Rule{Name: name + "_backward", LHS: rhsPat, RHS: lhsPat, Conditions: conditions})
	} else {
		backwardErr = errors.Wrapf(ErrRewriteConstruction, "%s_backward: right-hand side has unbound variable(s)", name)
	}

	if len(rules) == 0 {
		return nil, errors.Wrapf(ErrRewriteConstruction, "%s: no usable direction (%v; %v)", name, forwardErr, backwardErr)
	}
	return rules, nil
}

func compileConditions(conds []*IR) ([]egraph.Condition, error) {
	out := make([]egraph.Condition, 0, len(conds))
	for _, c := range conds {
		a, err := emitPattern(c.In1)
		if err != nil {
			return nil, err
		}
		b, err := emitPattern(c.In2)
		if err != nil {
			return nil, err
		}
		switch c.Kind {
		case Eq:
			out = append(out, egraph.EqCondition{LHS: a, RHS: b})
		case Ne:
			out = append(out, egraph.NeCondition{LHS: a, RHS: b})
		default:
			return nil, errors.Wrap(ErrIRShape, "non-relational hypothesis")
		}
	}
	return out, nil
}

// boundOK reports whether every pattern variable in rhs also appears in lhs.
func boundOK(lhs, rhs *expr.Term) bool {
	bound := map[string]bool{}
	for _, v := range lhs.PatVars() {
		bound[v] = true
	}
	for _, v := range rhs.PatVars() {
		if !bound[v] {
			return false
		}
	}
	return true
}
