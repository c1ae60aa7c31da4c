package egraph

import "juniper/internal/expr"

// Rule is a conditional rewrite: whenever LHS matches under some
// substitution and every Condition holds, RHS instantiated under the same
// substitution is unioned into the matched class. Name identifies the rule
// to callers; the engine itself never reads it.
type Rule struct {
	Name       string
	LHS        *expr.Term
	RHS        *expr.Term
	Conditions []Condition
}

// Apply instantiates rhs under subst and unions it with target, returning
// whether the union actually merged two previously distinct classes.
func (g *Graph) Apply(rhs *expr.Term, subst Subst, target ID) bool {
	newID := g.instantiate(rhs, subst)
	return g.Union(newID, target)
}
