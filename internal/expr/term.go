// Package expr defines the algebraic term grammar shared by ground
// expressions and rewrite patterns: the closed set of node variants, their
// fixed arities, the prefix surface syntax, and the canonical printer.
package expr

import (
	"juniper/internal/bigrat"
)

// Kind identifies a term variant. The zero Kind is never produced by the
// parser or builders below.
type Kind int

const (
	_ Kind = iota
	Const
	Pi
	Var
	PatVar
	Assign
	Eq
	Add
	Sub
	Mul
	Div
	Pow
	Neg
	Inv
	Sqrt
	Sin
	Cos
	Antiderivative
	Derivative
	Integral
)

// symbolInfo pairs a Kind's fixed arity with its printed operator symbol.
// Const, Var, and PatVar have no fixed symbol; they print their payload
// instead (see Printer).
type symbolInfo struct {
	arity  int
	symbol string
}

var kindTable = map[Kind]symbolInfo{
	Const:          {0, ""},
	Pi:             {0, "π"},
	Var:            {0, ""},
	PatVar:         {0, ""},
	Assign:         {2, ":="},
	Eq:             {2, "="},
	Add:            {2, "+"},
	Sub:            {2, "-"},
	Mul:            {2, "*"},
	Div:            {2, "/"},
	Pow:            {2, "^"},
	Neg:            {1, "-"},
	Inv:            {1, "inv"},
	Sqrt:           {1, "sqrt"},
	Sin:            {1, "sin"},
	Cos:            {1, "cos"},
	Antiderivative: {2, "anti-d"},
	Derivative:     {2, "d"},
	Integral:       {4, "int"},
}

// Arity returns the fixed number of children a Kind's node always has.
func (k Kind) Arity() int { return kindTable[k].arity }

// Symbol returns the operator's prefix-form spelling, or "" for the three
// leaf kinds that print their payload (Const, Var, PatVar).
func (k Kind) Symbol() string { return kindTable[k].symbol }

// opKinds lists every operator-headed Kind, used by the parser to resolve a
// parenthesised form's leading symbol (and, for "-", its arity) into a Kind.
var opKinds = []Kind{Assign, Eq, Add, Sub, Mul, Div, Pow, Neg, Inv, Sqrt, Sin, Cos, Antiderivative, Derivative, Integral}

// resolveOp finds the operator Kind matching symbol and argCount. "-" is
// ambiguous between Sub (arity 2) and Neg (arity 1); every other symbol is
// unambiguous given the vocabulary above.
func resolveOp(symbol string, argCount int) (Kind, bool) {
	for _, k := range opKinds {
		info := kindTable[k]
		if info.symbol == symbol && info.arity == argCount {
			return k, true
		}
	}
	return 0, false
}

// Term is a node in the expression/pattern grammar. Only the field(s)
// relevant to Kind are meaningful; Term is an immutable value once built
// (methods never mutate Args in place — tree surgery produces new Terms).
type Term struct {
	Kind Kind
	Rat  bigrat.Rat // Kind == Const
	Name rune       // Kind == Var
	Pat  string     // Kind == PatVar
	Args []*Term
}

// NewConst builds a Const leaf.
func NewConst(r bigrat.Rat) *Term { return &Term{Kind: Const, Rat: r} }

// NewPi builds the Pi leaf.
func NewPi() *Term { return &Term{Kind: Pi} }

// NewVar builds a single-rune free variable.
func NewVar(r rune) *Term { return &Term{Kind: Var, Name: r} }

// NewPatVar builds a pattern variable; name excludes the leading "?".
func NewPatVar(name string) *Term { return &Term{Kind: PatVar, Pat: name} }

// NewOp builds an operator-headed term, panicking if argCount doesn't match
// the Kind's fixed arity — a programmer error, since every caller in this
// codebase knows the arity of the Kind it constructs.
func NewOp(k Kind, args ...*Term) *Term {
	if len(args) != k.Arity() {
		panic("expr: wrong arity for " + k.Symbol())
	}
	return &Term{Kind: k, Args: args}
}

// IsLeaf reports whether the term has no children.
func (t *Term) IsLeaf() bool { return len(t.Args) == 0 }

// IsAtomic reports whether the driver should skip approximation framing —
// true for Const and Var, matching the source's is_atomic check.
func (t *Term) IsAtomic() bool {
	return t.Kind == Const || t.Kind == Var
}

// ContainsPatVar reports whether any subterm is a pattern variable.
func (t *Term) ContainsPatVar() bool {
	if t.Kind == PatVar {
		return true
	}
	for _, a := range t.Args {
		if a.ContainsPatVar() {
			return true
		}
	}
	return false
}

// PatVars returns the set of distinct pattern variable names in t, in
// first-occurrence order.
func (t *Term) PatVars() []string {
	seen := map[string]bool{}
	var out []string
	var walk func(*Term)
	walk = func(n *Term) {
		if n.Kind == PatVar {
			if !seen[n.Pat] {
				seen[n.Pat] = true
				out = append(out, n.Pat)
			}
			return
		}
		for _, a := range n.Args {
			walk(a)
		}
	}
	walk(t)
	return out
}
