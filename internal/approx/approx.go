// Package approx folds an extracted term to a double-precision
// approximation where one is defined, mirroring the constant-fold
// analysis's Inv(0) = 0 convention so the two never disagree.
package approx

import (
	"math"

	"juniper/internal/expr"
)

// Approximate evaluates t, returning (value, true) when every subterm is
// numeric, or (0, false) as soon as a free variable or an opaque symbolic
// operator (antiderivative, derivative, integral) is reached.
func Approximate(t *expr.Term) (float64, bool) {
	switch t.Kind {
	case expr.Const:
		return t.Rat.Float64(), true

	case expr.Pi:
		return math.Pi, true

	case expr.Var:
		return 0, false

	case expr.Add:
		return binary(t, func(a, b float64) float64 { return a + b })
	case expr.Sub:
		return binary(t, func(a, b float64) float64 { return a - b })
	case expr.Mul:
		return binary(t, func(a, b float64) float64 { return a * b })
	case expr.Div:
		return binary(t, func(a, b float64) float64 { return a / b })
	case expr.Pow:
		return binary(t, math.Pow)

	case expr.Neg:
		return unary(t, func(a float64) float64 { return -a })
	case expr.Sqrt:
		return unary(t, math.Sqrt)
	case expr.Sin:
		return unary(t, math.Sin)
	case expr.Cos:
		return unary(t, math.Cos)
	case expr.Inv:
		return unary(t, func(a float64) float64 {
			if a == 0 {
				return 0
			}
			return 1 / a
		})

	default:
		// Antiderivative, Derivative, Integral, Assign, Eq, PatVar: opaque to
		// approximation.
		return 0, false
	}
}

func unary(t *expr.Term, f func(float64) float64) (float64, bool) {
	a, ok := Approximate(t.Args[0])
	if !ok {
		return 0, false
	}
	return f(a), true
}

func binary(t *expr.Term, f func(a, b float64) float64) (float64, bool) {
	a, ok := Approximate(t.Args[0])
	if !ok {
		return 0, false
	}
	b, ok := Approximate(t.Args[1])
	if !ok {
		return 0, false
	}
	return f(a, b), true
}
