package driver

import (
	"context"
	"strings"
	"testing"

	"juniper/internal/egraph"
	"juniper/internal/expr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *expr.Term {
	t.Helper()
	term, err := expr.Parse(s)
	require.NoError(t, err)
	return term
}

func commRule() egraph.Rule {
	lhs, err := expr.Parse("(+ ?a ?b)")
	if err != nil {
		panic(err)
	}
	rhs, err := expr.Parse("(+ ?b ?a)")
	if err != nil {
		panic(err)
	}
	return egraph.Rule{Name: "add_comm", LHS: lhs, RHS: rhs}
}

func TestSimplifyExtractsAConst(t *testing.T) {
	d := New(nil, egraph.DefaultLimits())
	res, status, err := d.Simplify(context.Background(), mustParse(t, "(+ 1 2)"))
	require.NoError(t, err)
	assert.Equal(t, egraph.Saturated, status)
	assert.Equal(t, "3", expr.Print(res.Canonical))
}

func TestSimplifyApproximatesNonAtomicRoot(t *testing.T) {
	d := New(nil, egraph.DefaultLimits())
	res, _, err := d.Simplify(context.Background(), mustParse(t, "(sin π)"))
	require.NoError(t, err)
	assert.True(t, res.HasApprox)
}

func TestSimplifyDoesNotApproximateAtomicRoot(t *testing.T) {
	d := New(nil, egraph.DefaultLimits())
	res, _, err := d.Simplify(context.Background(), mustParse(t, "x"))
	require.NoError(t, err)
	assert.False(t, res.HasApprox)
}

func TestAssignLearnsBidirectionalRewrite(t *testing.T) {
	d := New(nil, egraph.DefaultLimits())
	assign := mustParse(t, "(:= x (+ 1 2))")
	_, _, err := d.Simplify(context.Background(), assign)
	require.NoError(t, err)
	require.Len(t, d.Rules, 2)
	assert.Equal(t, "assignment_0_f", d.Rules[0].Name)
	assert.Equal(t, "assignment_0_b", d.Rules[1].Name)

	res, _, err := d.Simplify(context.Background(), mustParse(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "3", expr.Print(res.Canonical))
}

func TestRunOnceReportsParseErrors(t *testing.T) {
	d := New(nil, egraph.DefaultLimits())
	err := d.RunOnce(context.Background(), "(+ 1")
	assert.Error(t, err)
}

func TestRunREPLProcessesMultipleLines(t *testing.T) {
	d := New([]egraph.Rule{commRule()}, egraph.DefaultLimits())
	in := strings.NewReader("(+ 1 2)\n(+ 3 4)\n")
	var out strings.Builder
	d.RunREPL(context.Background(), in, &out)
	assert.Contains(t, out.String(), PROMPT)
}
