package egraph

import "time"

// Status reports why Saturate stopped.
type Status int

const (
	Saturated Status = iota
	NodeLimit
	IterLimit
	TimeLimit
)

func (s Status) String() string {
	switch s {
	case Saturated:
		return "saturated"
	case NodeLimit:
		return "node-limit"
	case IterLimit:
		return "iteration-limit"
	case TimeLimit:
		return "time-limit"
	default:
		return "unknown"
	}
}

// Limits bounds a single saturation run. A zero field disables that cap.
type Limits struct {
	MaxNodes    int
	MaxIters    int
	MaxDuration time.Duration
}

// DefaultLimits matches the driver's documented defaults: a node cap
// generous enough for interactive use, an iteration cap that bounds runaway
// rule chains, and a one-second wall-clock cap.
func DefaultLimits() Limits {
	return Limits{MaxNodes: 10000, MaxIters: 64, MaxDuration: time.Second}
}

// Saturate runs rules to a fixed point or until a cap is hit. Each iteration
// collects every rule's matches against the graph as it stood at the
// iteration's start (a frozen snapshot, in the sense that nothing discovered
// mid-collection is applied until collection for every rule finishes), then
// applies them all, then rebuilds once. Rules are tried in list order; a
// single rule's matches are applied in the order Search produced them.
func (g *Graph) Saturate(rules []Rule, limits Limits) Status {
	start := time.Now()

	for iter := 0; ; iter++ {
		if limits.MaxIters > 0 && iter >= limits.MaxIters {
			return IterLimit
		}
		if limits.MaxDuration > 0 && time.Since(start) > limits.MaxDuration {
			return TimeLimit
		}
		if limits.MaxNodes > 0 && g.NodeCount() >= limits.MaxNodes {
			return NodeLimit
		}

		type pending struct {
			rule   Rule
			subst  Subst
			target ID
		}
		var toApply []pending

		for _, rule := range rules {
			for _, m := range g.Search(rule.LHS) {
				if !conditionsHold(g, rule.Conditions, m.Subst) {
					continue
				}
				toApply = append(toApply, pending{rule, m.Subst, m.Class})
			}
		}

		changed := false
		for _, p := range toApply {
			if g.Apply(p.rule.RHS, p.subst, p.target) {
				changed = true
			}
		}
		g.Rebuild()

		if !changed {
			return Saturated
		}
		if limits.MaxNodes > 0 && g.NodeCount() >= limits.MaxNodes {
			return NodeLimit
		}
	}
}

func conditionsHold(g *Graph, conds []Condition, subst Subst) bool {
	for _, c := range conds {
		if !c.Holds(g, subst) {
			return false
		}
	}
	return true
}
