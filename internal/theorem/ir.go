// Package theorem compiles serialized prover theorems into bidirectional
// conditional rewrite rules for the e-graph engine: recognizing the
// supported mathematical vocabulary, splitting each theorem around its
// top-level equality, collecting hypotheses as side conditions, and
// emitting rewrites in both directions where the right-hand side's
// variables are all bound on the left.
package theorem

// Kind tags an IR node — a partially-instantiated term whose variants match
// the patterns this system understands, per §4.7.1.
type Kind int

const (
	DefinedConst Kind = iota // π
	OfNat                    // integer literal
	OfScientific             // decimal/scientific literal
	Var                      // a bound variable, resolved from a de Bruijn index
	Eq                       // equality, used both as a conclusion and a condition
	Ne                       // disequality condition
	HBool                    // binary arithmetic: + - * / ^
	TUnary                   // typed unary: - inv
	IUnary                   // inferred-type unary: sin cos sqrt
)

// IR is a node in the theorem compiler's intermediate representation. Only
// the fields relevant to Kind are meaningful.
type IR struct {
	Kind Kind

	Name string // Var

	Op string // HBool, TUnary, IUnary: "+" "-" "*" "/" "^" "inv" "sin" "cos" "sqrt"

	// OfNat: NatValue is the literal's value.
	// OfScientific: NatValue is the mantissa, ExpSign/Exponent complete it.
	NatValue uint64
	ExpSign  bool
	Exponent uint64

	In1, In2 *IR // Eq, Ne: both sides. HBool: lhs/rhs. TUnary, IUnary: In1 only.
}
