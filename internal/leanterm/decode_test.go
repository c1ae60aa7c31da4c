package leanterm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBVar(t *testing.T) {
	e, err := Decode([]byte(`{"bvar":{"deBruijnIndex":1}}`))
	require.NoError(t, err)
	assert.Equal(t, BVar, e.Kind)
	assert.EqualValues(t, 1, e.DeBruijnIndex)
}

func TestDecodeConst(t *testing.T) {
	e, err := Decode([]byte(`{"const":{"us":[],"declName":"Rat"}}`))
	require.NoError(t, err)
	assert.Equal(t, Const, e.Kind)
	assert.Equal(t, "Rat", e.DeclName)
	assert.Empty(t, e.Us)
}

func TestDecodeAppRenamesFn(t *testing.T) {
	e, err := Decode([]byte(`{"app":{"fn":{"const":{"us":[],"declName":"Real.sin"}},"arg":{"bvar":{"deBruijnIndex":0}}}}`))
	require.NoError(t, err)
	assert.Equal(t, App, e.Kind)
	require.NotNil(t, e.Function)
	assert.Equal(t, Const, e.Function.Kind)
	assert.Equal(t, "Real.sin", e.Function.DeclName)
	require.NotNil(t, e.Arg)
	assert.Equal(t, BVar, e.Arg.Kind)
}

func TestDecodeForallEWithBinderInfo(t *testing.T) {
	e, err := Decode([]byte(`{"forallE":{"body":{"bvar":{"deBruijnIndex":0}},"binderType":{"const":{"us":[],"declName":"Rat"}},"binderName":"a","binderInfo":"default"}}`))
	require.NoError(t, err)
	assert.Equal(t, ForallE, e.Kind)
	assert.Equal(t, "a", e.BinderName)
	assert.Equal(t, Default, e.BinderInfo)
}

func TestDecodeLevelZeroIsBareString(t *testing.T) {
	var lvl Level
	err := json.Unmarshal([]byte(`"zero"`), &lvl)
	require.NoError(t, err)
	assert.Equal(t, LevelZero, lvl.Kind)
}

func TestDecodeLevelSucc(t *testing.T) {
	var lvl Level
	err := json.Unmarshal([]byte(`{"succ":"zero"}`), &lvl)
	require.NoError(t, err)
	assert.Equal(t, LevelSucc, lvl.Kind)
	require.NotNil(t, lvl.Of)
	assert.Equal(t, LevelZero, lvl.Of.Kind)
}

func TestDecodeLitNatVal(t *testing.T) {
	e, err := Decode([]byte(`{"lit":{"natVal":{"val":42}}}`))
	require.NoError(t, err)
	assert.Equal(t, Lit, e.Kind)
	assert.Equal(t, NatVal, e.Literal.Kind)
	assert.EqualValues(t, 42, e.Literal.Nat)
}

func TestDecodeProjRenamesStruct(t *testing.T) {
	e, err := Decode([]byte(`{"proj":{"typeName":"Prod","idx":0,"struct":{"bvar":{"deBruijnIndex":0}}}}`))
	require.NoError(t, err)
	assert.Equal(t, Proj, e.Kind)
	assert.Equal(t, "Prod", e.TypeName)
	require.NotNil(t, e.Structure)
}

func TestDecodeUnknownVariantRejected(t *testing.T) {
	_, err := Decode([]byte(`{"bogus":{}}`))
	assert.Error(t, err)
}

func TestDecodeFullTheoremShape(t *testing.T) {
	// Grounded on the original decoder's own test fixture: a two-binder
	// forall whose body is a partial Eq application (Eq Rat applied to a
	// bound variable).
	src := `{"forallE":
 {"body":
  {"forallE":
   {"body":
    {"app":
     {"fn":
      {"app":
       {"fn": {"const": {"us": [], "declName": "Eq"}},
        "arg": {"const": {"us": [], "declName": "Rat"}}}},
      "arg": {"bvar": {"deBruijnIndex": 1}}}},
    "binderType": {"const": {"us": [], "declName": "Rat"}},
    "binderName": "b",
    "binderInfo": "default"}},
  "binderType": {"const": {"us": [], "declName": "Rat"}},
  "binderName": "a",
  "binderInfo": "default"}}`
	e, err := Decode([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, ForallE, e.Kind)
	assert.Equal(t, "a", e.BinderName)
	require.NotNil(t, e.Body)
	assert.Equal(t, ForallE, e.Body.Kind)
	assert.Equal(t, "b", e.Body.BinderName)
}
