// Package diag centralizes error codes and positioned diagnostic rendering
// shared by the expression parser, the theorem compiler, and the driver.
package diag

// Error code ranges:
// J0001-J0099: core parse/eval errors (rational, expression, pattern)
// J0100-J0699: theorem-compiler errors (prover JSON, IR shape, rewrite construction)
// J0700-J0799: fatal invariant violations
// J0800-J0899: warnings (e.g. "theorem accepted in one direction only")

const (
	// J0001: a rational literal does not match one of the four accepted
	// surface forms.
	RationalParseError = "J0001"

	// J0002: a prefix expression or pattern failed to parse.
	ExpressionParseError = "J0002"

	// J0003: serialized prover-term JSON failed to decode.
	ProverJSONParseError = "J0003"

	// J0100: a theorem references a prover identifier outside the
	// recognized vocabulary.
	UnknownIdentifier = "J0100"

	// J0101: an application's argument slots don't match the shape the
	// name table's skeleton expects, or a binder/body chain never
	// reaches a top-level equality.
	IRShapeError = "J0101"

	// J0102: a rewrite direction's right-hand pattern references a
	// variable not bound on its left.
	RewriteConstructionError = "J0102"

	// J0700: the constant-fold analysis was asked to merge two classes
	// carrying unequal constants — a bug in a rule or in the analysis,
	// never a legitimate outcome. Fatal; aborts the process.
	GraphInvariantViolation = "J0700"

	// J0800: a theorem compiled in only one direction.
	SingleDirectionWarning = "J0800"
)

var descriptions = map[string]string{
	RationalParseError:       "rational literal does not match an accepted surface form",
	ExpressionParseError:     "expression or pattern failed to parse",
	ProverJSONParseError:     "serialized prover term failed to decode",
	UnknownIdentifier:        "prover identifier is outside the recognized mathematical vocabulary",
	IRShapeError:             "theorem's application shape or binder structure is not recognized",
	RewriteConstructionError: "rewrite direction references a variable not bound on its left-hand side",
	GraphInvariantViolation:  "constant-fold analysis merged two classes with unequal constants",
	SingleDirectionWarning:   "theorem accepted in only one rewrite direction",
}

// Describe returns a human-readable description of code, or "unknown error
// code" if code is not recognized.
func Describe(code string) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "unknown error code"
}

// Category returns the coarse range a code falls in.
func Category(code string) string {
	switch {
	case code >= "J0001" && code < "J0100":
		return "Parse"
	case code >= "J0100" && code < "J0700":
		return "Theorem Compiler"
	case code >= "J0700" && code < "J0800":
		return "Invariant Violation"
	case code >= "J0800" && code < "J0900":
		return "Warning"
	default:
		return "Unknown"
	}
}

// IsWarning reports whether code falls in the warning range.
func IsWarning(code string) bool {
	return code >= "J0800" && code < "J0900"
}
