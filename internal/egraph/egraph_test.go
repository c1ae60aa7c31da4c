package egraph

import (
	"testing"

	"juniper/internal/expr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *expr.Term {
	t.Helper()
	tm, err := expr.Parse(s)
	require.NoError(t, err)
	return tm
}

func TestAddIsHashConsed(t *testing.T) {
	g := New()
	a := g.Add(mustParse(t, "(+ x 1)"))
	b := g.Add(mustParse(t, "(+ x 1)"))
	assert.Equal(t, g.Find(a), g.Find(b))
}

func TestUnionCongruence(t *testing.T) {
	g := New()
	// (+ x 1) and (+ y 1): union x and y, then rebuild should merge the
	// two sums by congruence.
	x := g.Add(mustParse(t, "x"))
	y := g.Add(mustParse(t, "y"))
	sum1 := g.Add(mustParse(t, "(+ x 1)"))
	sum2 := g.Add(mustParse(t, "(+ y 1)"))
	assert.NotEqual(t, g.Find(sum1), g.Find(sum2))

	g.Union(x, y)
	g.Rebuild()
	assert.Equal(t, g.Find(sum1), g.Find(sum2))
}

func TestConstantFoldMake(t *testing.T) {
	g := New()
	id := g.Add(mustParse(t, "(+ 1 2)"))
	g.Rebuild()
	cls := g.classes[g.Find(id)]
	require.NotNil(t, cls.Data)
	assert.Equal(t, "3", cls.Data.String())
}

func TestConstantFoldPrunesNonLeafNodes(t *testing.T) {
	g := New()
	id := g.Add(mustParse(t, "(+ 1 2)"))
	g.Rebuild()
	cls := g.classes[g.Find(id)]
	for _, n := range cls.Nodes {
		assert.True(t, n.IsLeaf(), "expected only leaf nodes after folding, found %v", n.Kind)
	}
}

func TestInvZeroFoldsToZero(t *testing.T) {
	g := New()
	id := g.Add(mustParse(t, "(inv 0)"))
	g.Rebuild()
	cls := g.classes[g.Find(id)]
	require.NotNil(t, cls.Data)
	assert.Equal(t, "0", cls.Data.String())
}

func TestExtractMinimalCost(t *testing.T) {
	g := New()
	root := g.Add(mustParse(t, "(+ x 0)"))
	// Add a rewrite rule: (+ ?a 0) -> ?a.
	rule := Rule{
		Name: "add_zero",
		LHS:  mustParse(t, "(+ ?a 0)"),
		RHS:  mustParse(t, "?a"),
	}
	status := g.Saturate([]Rule{rule}, DefaultLimits())
	assert.Equal(t, Saturated, status)

	term, err := g.Extract(root, AstSizeCost{})
	require.NoError(t, err)
	assert.Equal(t, expr.Var, term.Kind)
	assert.Equal(t, "x", expr.Print(term))
}

func TestSearchFindsPatternVariableMatches(t *testing.T) {
	g := New()
	g.Add(mustParse(t, "(+ x 1)"))
	pat := mustParse(t, "(+ ?a 1)")
	matches := g.Search(pat)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Subst, "a")
}

func TestSaturateRespectsNodeLimit(t *testing.T) {
	g := New()
	g.Add(mustParse(t, "(+ (* x y) (- x y))"))
	rule := Rule{
		Name: "add_zero",
		LHS:  mustParse(t, "(+ ?a 0)"),
		RHS:  mustParse(t, "?a"),
	}
	status := g.Saturate([]Rule{rule}, Limits{MaxNodes: 1, MaxIters: 10})
	assert.Equal(t, NodeLimit, status)
}

func TestSaturateConvergesOnCommutativeRule(t *testing.T) {
	g := New()
	g.Add(mustParse(t, "(+ x y)"))
	rule := Rule{
		Name: "add_comm",
		LHS:  mustParse(t, "(+ ?a ?b)"),
		RHS:  mustParse(t, "(+ ?b ?a)"),
	}
	status := g.Saturate([]Rule{rule}, DefaultLimits())
	assert.Equal(t, Saturated, status)
}
