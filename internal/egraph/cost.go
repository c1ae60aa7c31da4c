package egraph

// CostFunc is a first-class cost model attached to an extraction. It is
// modeled as a single-method object rather than a closure so ownership of
// any captured state is explicit, per the engine's dynamic-dispatch
// convention (see Condition in condition.go).
type CostFunc interface {
	// Cost returns the node's own contribution; the extractor sums this
	// with the already-extracted cost of each child.
	Cost(n ENode) int
}

// AstSizeCost is the default cost function: every node costs 1, so total
// cost is the extracted term's node count.
type AstSizeCost struct{}

// Cost implements CostFunc.
func (AstSizeCost) Cost(ENode) int { return 1 }
