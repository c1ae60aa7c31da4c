package theorem

import (
	"testing"

	"juniper/internal/expr"
	"juniper/internal/leanterm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constExpr(name string) *leanterm.Expr {
	return &leanterm.Expr{Kind: leanterm.Const, DeclName: name}
}

func app(f, a *leanterm.Expr) *leanterm.Expr {
	return &leanterm.Expr{Kind: leanterm.App, Function: f, Arg: a}
}

func bvar(i uint64) *leanterm.Expr {
	return &leanterm.Expr{Kind: leanterm.BVar, DeBruijnIndex: i}
}

// hAdd builds `HAdd.hAdd Rat Rat Rat inst lhs rhs` (the fully-applied curried
// form the JSON schema flattens application trees into).
func hAdd(lhs, rhs *leanterm.Expr) *leanterm.Expr {
	head := constExpr("HAdd.hAdd")
	e := app(head, constExpr("Rat"))
	e = app(e, constExpr("Rat"))
	e = app(e, constExpr("Rat"))
	e = app(e, constExpr("instHAdd")) // instance hole, discarded regardless of shape
	e = app(e, lhs)
	e = app(e, rhs)
	return e
}

func eq(lhs, rhs *leanterm.Expr) *leanterm.Expr {
	e := app(constExpr("Eq"), constExpr("Rat"))
	e = app(e, lhs)
	e = app(e, rhs)
	return e
}

func forallE(name string, binderType, body *leanterm.Expr) *leanterm.Expr {
	return &leanterm.Expr{Kind: leanterm.ForallE, BinderName: name, BinderType: binderType, Body: body, BinderInfo: leanterm.Default}
}

// addComm builds `∀ a b : Rat, a + b = b + a`.
func addComm() *leanterm.Expr {
	body := eq(hAdd(bvar(1), bvar(0)), hAdd(bvar(0), bvar(1)))
	inner := forallE("b", constExpr("Rat"), body)
	return forallE("a", constExpr("Rat"), inner)
}

func TestCompileBidirectional(t *testing.T) {
	rules, err := Compile(addComm(), "add_comm")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "add_comm_forward", rules[0].Name)
	assert.Equal(t, "add_comm_backward", rules[1].Name)
}

func TestCompileUnknownIdentifierRejected(t *testing.T) {
	bogus := eq(constExpr("SomeUnrecognizedThing"), bvar(0))
	theorem := forallE("a", constExpr("Rat"), bogus)
	_, err := Compile(theorem, "bogus")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownIdentifier)
}

// TestCompileBothDirectionsRejected covers `∀ a b, a = b`: the forward
// direction's right-hand side (?b) isn't bound by its left (?a), and the
// backward direction's right-hand side (?a) isn't bound by its left (?b)
// either, so the theorem has no usable direction and Compile must reject
// it with both failures folded into one message, per §7.
func TestCompileBothDirectionsRejected(t *testing.T) {
	body := eq(bvar(1), bvar(0))
	inner := forallE("b", constExpr("Rat"), body)
	theorem := forallE("a", constExpr("Rat"), inner)

	_, err := Compile(theorem, "bogus_eq")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRewriteConstruction)
	assert.Contains(t, err.Error(), "bogus_eq_forward")
	assert.Contains(t, err.Error(), "bogus_eq_backward")
}

func TestCompileHypothesisBecomesCondition(t *testing.T) {
	// ∀ a, (h : a = a) -> a + a = a. "a" sits at stack depth 0 while the
	// hypothesis binder's own type is lowered (h is not yet pushed), then
	// at depth 1 once h occupies depth 0 for the body.
	body := eq(hAdd(bvar(1), bvar(1)), bvar(1))
	withHyp := forallE("h", eq(bvar(0), bvar(0)), body)
	theorem := forallE("a", constExpr("Rat"), withHyp)

	rules, err := Compile(theorem, "cond_rule")
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	assert.NotEmpty(t, rules[0].Conditions)
}

func TestEmitDecimalScientificForms(t *testing.T) {
	assert.Equal(t, "3.14", decimalForm(314, 2))
	assert.Equal(t, "0.005", decimalForm(5, 3))
	assert.Equal(t, "42", decimalForm(42, 0))
}

func TestBoundOK(t *testing.T) {
	lhs, err := expr.Parse("(+ ?a ?b)")
	require.NoError(t, err)
	rhsOK, err := expr.Parse("(+ ?b ?a)")
	require.NoError(t, err)
	rhsBad, err := expr.Parse("(+ ?b ?c)")
	require.NoError(t, err)

	assert.True(t, boundOK(lhs, rhsOK))
	assert.False(t, boundOK(lhs, rhsBad))
}
