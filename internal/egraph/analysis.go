package egraph

import (
	"math/big"

	"juniper/internal/bigrat"
	"juniper/internal/expr"

	"github.com/pkg/errors"
)

var oneInt = big.NewInt(1)

// ErrGraphInvariantViolation is panicked (wrapped with a stack via
// github.com/pkg/errors) when the constant-fold analysis is asked to merge
// two Some data with unequal rationals — a contract violation in the rule
// set or analysis, never a recoverable user-facing condition.
var ErrGraphInvariantViolation = errors.New("constant-fold analysis: merged classes carry unequal constants")

// makeAnalysis computes the constant-fold datum for a freshly inserted node,
// per the make rules: a node folds to Some(r) only when every child already
// carries Some and the variant's exact-arithmetic rule is well-defined.
func makeAnalysis(g *Graph, n ENode) *bigrat.Rat {
	child := func(i int) (bigrat.Rat, bool) {
		cls, ok := g.classes[g.find(n.Children[i])]
		if !ok || cls.Data == nil {
			return bigrat.Rat{}, false
		}
		return *cls.Data, true
	}

	switch n.Kind {
	case expr.Const:
		r := n.Rat
		return &r

	case expr.Add:
		a, ok1 := child(0)
		b, ok2 := child(1)
		if ok1 && ok2 {
			r := a.Add(b)
			return &r
		}

	case expr.Sub:
		a, ok1 := child(0)
		b, ok2 := child(1)
		if ok1 && ok2 {
			r := a.Sub(b)
			return &r
		}

	case expr.Mul:
		a, ok1 := child(0)
		b, ok2 := child(1)
		if ok1 && ok2 {
			r := a.Mul(b)
			return &r
		}

	case expr.Div:
		a, ok1 := child(0)
		b, ok2 := child(1)
		if ok1 && ok2 && b.Sign() != 0 {
			r := a.Quo(b)
			return &r
		}

	case expr.Pow:
		a, ok1 := child(0)
		b, ok2 := child(1)
		if ok1 && ok2 && a.Sign() != 0 && b.Denom().Cmp(oneInt) == 0 {
			r := a.PowInt(b.Num())
			return &r
		}

	case expr.Neg:
		a, ok := child(0)
		if ok {
			r := a.Neg()
			return &r
		}

	case expr.Inv:
		a, ok := child(0)
		if ok {
			// bigrat.Rat.Inv already implements the Inv(0) = 0 convention.
			r := a.Inv()
			return &r
		}
	}
	return nil
}

// mergeAnalysis combines two classes' data on union. Some dominates None;
// merging two unequal Somes is a bug in the caller's rule set, never a valid
// outcome of correct rewriting, so it aborts the process.
func mergeAnalysis(a, b *bigrat.Rat) *bigrat.Rat {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if !a.Equal(*b) {
		panic(errors.WithStack(errors.Wrapf(ErrGraphInvariantViolation, "merged %s and %s", a.String(), b.String())))
	}
	return a
}

// modifyAnalysis fires the first time a class is observed to carry a
// constant datum: it inserts a Const node for that value, unions it into the
// class, and prunes every non-leaf node — the class is already known equal
// to the constant, so the larger nodes are redundant and would otherwise
// balloon later saturation iterations. The Const node is placed first, so
// extraction's first-found tie-break picks it over other leaves (a Var
// learned equal to the constant, say). Returns whether it changed anything.
func modifyAnalysis(g *Graph, id ID) bool {
	cls, ok := g.classes[id]
	if !ok || cls.Data == nil || cls.Folded {
		return false
	}
	r := *cls.Data
	constID := g.addNode(ENode{Kind: expr.Const, Rat: r})
	g.Union(constID, id)

	leader := g.find(id)
	lc := g.classes[leader]
	kept := []ENode{{Kind: expr.Const, Rat: r}}
	for _, n := range lc.Nodes {
		if n.IsLeaf() && !(n.Kind == expr.Const && n.Rat.Equal(r)) {
			kept = append(kept, n)
		}
	}
	lc.Nodes = kept
	lc.Folded = true
	return true
}
