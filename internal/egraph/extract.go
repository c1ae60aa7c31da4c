package egraph

import (
	"juniper/internal/expr"

	"github.com/pkg/errors"
)

// ErrUnknownClass is returned by Extract when root does not refer to any
// live class in the graph.
var ErrUnknownClass = errors.New("egraph: extract of unknown class")

// Extract returns a minimum-cost ground term rooted at root. Classes can
// become mutually referential after unions (a class's best node may, before
// convergence, route through a class that isn't priced yet), so costs are
// computed by repeated relaxation to a fixed point — the same technique a
// shortest-path relaxation uses, safe here because every node has a positive
// cost contribution, guaranteeing convergence without needing explicit cycle
// detection. Ties are broken by the first minimal-cost node found while
// iterating classes and their nodes in a fixed (sorted, insertion) order, so
// results are deterministic across runs for the same input.
func (g *Graph) Extract(root ID, cost CostFunc) (*expr.Term, error) {
	root = g.find(root)
	if _, ok := g.classes[root]; !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "class %d", root)
	}

	bestCost := map[ID]int{}
	bestNode := map[ID]ENode{}

	for {
		changed := false
		for _, id := range g.sortedClassIDs() {
			cls := g.classes[id]
			for _, n := range cls.Nodes {
				c, ok := totalCost(n, bestCost, cost, g)
				if !ok {
					continue
				}
				if cur, have := bestCost[id]; !have || c < cur {
					bestCost[id] = c
					bestNode[id] = n
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	if _, ok := bestNode[root]; !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "class %d has no finite-cost term (disconnected analysis-only class)", root)
	}
	return buildExtracted(root, bestNode, g), nil
}

func totalCost(n ENode, bestCost map[ID]int, cost CostFunc, g *Graph) (int, bool) {
	total := cost.Cost(n)
	for _, c := range n.Children {
		cc, ok := bestCost[g.find(c)]
		if !ok {
			return 0, false
		}
		total += cc
	}
	return total, true
}

func buildExtracted(id ID, bestNode map[ID]ENode, g *Graph) *expr.Term {
	id = g.find(id)
	n := bestNode[id]
	args := make([]*expr.Term, len(n.Children))
	for i, c := range n.Children {
		args[i] = buildExtracted(c, bestNode, g)
	}
	switch n.Kind {
	case expr.Const:
		return expr.NewConst(n.Rat)
	case expr.Pi:
		return expr.NewPi()
	case expr.Var:
		return expr.NewVar(n.Name)
	default:
		return &expr.Term{Kind: n.Kind, Args: args}
	}
}
