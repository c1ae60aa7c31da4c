package egraph

import "juniper/internal/expr"

// Condition is a side-condition predicate attached to a rule, evaluated
// against a candidate match's substitution before the match is applied.
// Modeled as a single-method object (see CostFunc) rather than a closure.
type Condition interface {
	Holds(g *Graph, subst Subst) bool
}

// EqCondition holds when both sides, instantiated under subst, land in the
// same e-class.
type EqCondition struct {
	LHS, RHS *expr.Term
}

// Holds implements Condition.
func (c EqCondition) Holds(g *Graph, subst Subst) bool {
	a := g.instantiate(c.LHS, subst)
	b := g.instantiate(c.RHS, subst)
	return g.find(a) == g.find(b)
}

// NeCondition holds when both sides, instantiated under subst, do not
// currently land in the same e-class. This is a deliberate overapproximation
// (see the conditional-applier design note): it reports disequality whenever
// the two sides aren't *yet* known equal, which can flip to equal in a later
// saturation iteration. Not a soundness guarantee, only a best-effort filter.
type NeCondition struct {
	LHS, RHS *expr.Term
}

// Holds implements Condition.
func (c NeCondition) Holds(g *Graph, subst Subst) bool {
	a := g.instantiate(c.LHS, subst)
	b := g.instantiate(c.RHS, subst)
	return g.find(a) != g.find(b)
}
