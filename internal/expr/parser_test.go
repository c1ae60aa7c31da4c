package expr

import (
	"testing"

	"juniper/internal/bigrat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtoms(t *testing.T) {
	tm, err := Parse("42")
	require.NoError(t, err)
	assert.Equal(t, Const, tm.Kind)
	assert.Equal(t, "42", tm.Rat.String())

	tm, err = Parse("π")
	require.NoError(t, err)
	assert.Equal(t, Pi, tm.Kind)

	tm, err = Parse("x")
	require.NoError(t, err)
	assert.Equal(t, Var, tm.Kind)
	assert.Equal(t, 'x', tm.Name)

	tm, err = Parse("λ")
	require.NoError(t, err)
	assert.Equal(t, Var, tm.Kind)
	assert.Equal(t, 'λ', tm.Name)

	tm, err = Parse("量")
	require.NoError(t, err)
	assert.Equal(t, Var, tm.Kind)
	assert.Equal(t, '量', tm.Name)

	tm, err = Parse("?a")
	require.NoError(t, err)
	assert.Equal(t, PatVar, tm.Kind)
	assert.Equal(t, "a", tm.Pat)
}

func TestParseOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
		n    int
	}{
		{"(+ 1 2)", Add, 2},
		{"(- 1 2)", Sub, 2},
		{"(- 1)", Neg, 1},
		{"(* 1 2)", Mul, 2},
		{"(/ 1 2)", Div, 2},
		{"(^ 1 2)", Pow, 2},
		{"(inv 1)", Inv, 1},
		{"(sqrt 1)", Sqrt, 1},
		{"(sin 1)", Sin, 1},
		{"(cos 1)", Cos, 1},
		{"(= 1 2)", Eq, 2},
		{"(:= 1 2)", Assign, 2},
		{"(anti-d 1 x)", Antiderivative, 2},
		{"(d 1 x)", Derivative, 2},
		{"(int 1 2 3 x)", Integral, 4},
	}
	for _, c := range cases {
		tm, err := Parse(c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.kind, tm.Kind, c.src)
		assert.Len(t, tm.Args, c.n, c.src)
	}
}

func TestParseArityMismatch(t *testing.T) {
	_, err := Parse("(+ 1)")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Parse("(sqrt 1 2)")
	assert.Error(t, err)
}

func TestParseMultiRuneVariableRejected(t *testing.T) {
	_, err := Parse("foo")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"42",
		"-7",
		"1/3",
		"3.14",
		"π",
		"x",
		"λ",
		"(+ x 1)",
		"(* (+ x 1) (- x 1))",
		"(sqrt (+ (^ x 2) 1))",
		"(anti-d x x)",
		"(int 0 1 x x)",
		"(:= x (+ x 1))",
	}
	for _, src := range sources {
		tm, err := Parse(src)
		require.NoError(t, err, src)
		printed := Print(tm)
		tm2, err := Parse(printed)
		require.NoError(t, err, printed)
		assert.Equal(t, Print(tm2), printed, "round-trip mismatch for %q", src)
	}
}

func TestParsePattern(t *testing.T) {
	tm, err := Parse("(+ ?a ?b)")
	require.NoError(t, err)
	assert.True(t, tm.ContainsPatVar())
	assert.Equal(t, []string{"a", "b"}, tm.PatVars())
}

func TestPrintConstUsesCanonicalRationalForm(t *testing.T) {
	r, err := bigrat.Parse("2/4")
	require.NoError(t, err)
	tm := NewConst(r)
	assert.Equal(t, r.String(), Print(tm))
}
