package expr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// rawTerm and rawList are the participle-level parse tree: a structurally
// untyped S-expression. build (in builder.go) lowers this into a typed,
// arity-checked Term — mirroring the teacher's split between a grammar-level
// parse tree and its semantically validated AST.
type rawTerm struct {
	Num   *string  `  @Number`
	Pat   *string  `| "?" @Word`
	Ident *string  `| @Word`
	Paren *rawList `| "(" @@ ")"`
}

type rawList struct {
	Op   string     `@( ":=" | "anti-d" | "sqrt" | "inv" | "sin" | "cos" | "int" | "=" | "+" | "-" | "*" | "/" | "^" | "d" )`
	Args []*rawTerm `@@*`
}

var termParser = buildParser()

func buildParser() *participle.Parser[rawTerm] {
	p, err := participle.Build[rawTerm](
		participle.Lexer(termLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("expr: failed to build parser: %w", err))
	}
	return p
}
