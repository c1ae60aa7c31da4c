package expr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// termLexer tokenizes prefix expressions and patterns. Grounded on the
// teacher's stateful KansoLexer (grammar/lexer.go): ordered rules, generic
// identifier-like tokens disambiguated from keywords by literal matching in
// the grammar rather than by a dedicated keyword token type.
var termLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},

		// Rational literals: decimal-scientific, decimal, scientific,
		// fraction, integer — tried longest-form-first so a shorter
		// alternative never swallows part of a longer one.
		{Name: "Number", Pattern: `-?\d+\.\d+[eE]\d+|-?\d+\.\d+|-?\d+[eE]\d+|-?\d+/\d+|-?\d+`, Action: nil},

		{Name: "PatMark", Pattern: `\?`, Action: nil},
		{Name: "LParen", Pattern: `\(`, Action: nil},
		{Name: "RParen", Pattern: `\)`, Action: nil},
		{Name: "Assign", Pattern: `:=`, Action: nil},
		{Name: "Sym", Pattern: `[-+*/^=]`, Action: nil},

		// Any operator word (sqrt, inv, sin, cos, anti-d, d, int, π) or a
		// free/pattern variable name; the grammar disambiguates by literal
		// value, and the builder rejects multi-rune words that aren't in
		// the operator vocabulary.
		{Name: "Word", Pattern: `[\p{L}][\p{L}-]*`, Action: nil},
	},
})
