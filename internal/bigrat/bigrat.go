// Package bigrat implements the exact rational literal that backs every
// numeric constant in the expression language. It wraps math/big.Rat with
// the surface syntaxes and canonical printer the rest of the system assumes:
// plain integers, fractions, decimals, and (decimal-)scientific notation.
package bigrat

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalid is returned (wrapped) for any input that does not match one of
// the four accepted surface forms.
var ErrInvalid = errors.New("invalid rational literal")

// Rat is an arbitrary-precision rational number, always stored in lowest
// terms with a positive denominator. The zero value is not meaningful; use
// Zero or Parse.
type Rat struct {
	r *big.Rat
}

// Zero returns the rational 0.
func Zero() Rat { return Rat{r: new(big.Rat)} }

// One returns the rational 1.
func One() Rat { return Rat{r: big.NewRat(1, 1)} }

// FromInt64 builds a rational from a plain int64 numerator over 1.
func FromInt64(n int64) Rat { return Rat{r: big.NewRat(n, 1)} }

// FromBigInts builds n/d, reducing to lowest terms. Panics if d is zero;
// callers that accept untrusted denominators must check first.
func FromBigInts(n, d *big.Int) Rat {
	if d.Sign() == 0 {
		panic("bigrat: zero denominator")
	}
	return Rat{r: new(big.Rat).SetFrac(n, d)}
}

// Parse dispatches on surface form in the order the spec mandates:
// decimal-scientific, decimal, scientific, fraction, integer.
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, errors.Wrapf(ErrInvalid, "empty input")
	}

	hasDot := strings.Contains(s, ".")
	eIdx := strings.IndexAny(s, "eE")

	switch {
	case hasDot && eIdx >= 0:
		return parseDecimalScientific(s, eIdx)
	case hasDot:
		return parseDecimal(s)
	case eIdx >= 0:
		return parseScientific(s, eIdx)
	case strings.Contains(s, "/"):
		return parseFraction(s)
	default:
		return parseInteger(s)
	}
}

func parseInteger(s string) (Rat, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q is not an integer", s)
	}
	return Rat{r: new(big.Rat).SetInt(n)}, nil
}

func parseFraction(s string) (Rat, error) {
	num, denom, ok := cutOnce(s, "/")
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q is not a fraction", s)
	}
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q has an invalid numerator", s)
	}
	d, ok := new(big.Int).SetString(denom, 10)
	if !ok || d.Sign() == 0 {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q has an invalid denominator", s)
	}
	return Rat{r: new(big.Rat).SetFrac(n, d)}, nil
}

func parseDecimal(s string) (Rat, error) {
	mantissa, decimal, ok := cutOnce(s, ".")
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q is not decimal", s)
	}
	return decimalToRat(mantissa, decimal, s)
}

func parseScientific(s string, eIdx int) (Rat, error) {
	mantissa, exponent := s[:eIdx], s[eIdx+1:]
	m, ok := new(big.Int).SetString(mantissa, 10)
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q has an invalid mantissa", s)
	}
	pow, err := tenToThe(exponent, s)
	if err != nil {
		return Rat{}, err
	}
	return Rat{r: new(big.Rat).SetInt(new(big.Int).Mul(m, pow))}, nil
}

func parseDecimalScientific(s string, eIdx int) (Rat, error) {
	mantissaPart, exponent := s[:eIdx], s[eIdx+1:]
	mantissa, decimal, ok := cutOnce(mantissaPart, ".")
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q is not decimal-scientific", s)
	}
	base, err := decimalToRat(mantissa, decimal, s)
	if err != nil {
		return Rat{}, err
	}
	pow, err := tenToThe(exponent, s)
	if err != nil {
		return Rat{}, err
	}
	return Rat{r: new(big.Rat).Mul(base.r, new(big.Rat).SetInt(pow))}, nil
}

func decimalToRat(mantissa, decimal, whole string) (Rat, error) {
	m, ok := new(big.Int).SetString(mantissa, 10)
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q has an invalid integer part", whole)
	}
	d, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		return Rat{}, errors.Wrapf(ErrInvalid, "%q has an invalid fractional part", whole)
	}
	denom := pow10(len(decimal))
	decimalRat := new(big.Rat).SetFrac(d, denom)
	if mantissa != "" && mantissa[0] == '-' {
		decimalRat.Neg(decimalRat)
	}
	return Rat{r: decimalRat.Add(decimalRat, new(big.Rat).SetInt(m))}, nil
}

func tenToThe(exponent, whole string) (*big.Int, error) {
	e, ok := new(big.Int).SetString(exponent, 10)
	if !ok || e.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalid, "%q has an invalid exponent", whole)
	}
	return new(big.Int).Exp(big.NewInt(10), e, nil), nil
}

func pow10(digits int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
}

func cutOnce(s, sep string) (before, after string, found bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// String prints the canonical form: "n" for an integer, "n/d" otherwise,
// always in lowest terms with the sign on the numerator.
func (r Rat) String() string {
	return r.r.RatString()
}

// Num and Denom expose the lowest-terms numerator and (positive) denominator.
func (r Rat) Num() *big.Int   { return r.r.Num() }
func (r Rat) Denom() *big.Int { return r.r.Denom() }

// IsInt reports whether the denominator is 1.
func (r Rat) IsInt() bool { return r.r.IsInt() }

// Sign returns -1, 0, or 1.
func (r Rat) Sign() int { return r.r.Sign() }

// Float64 rounds to the nearest representable double, per math/big's rounding.
// Out-of-range values surface as the IEEE-754 infinities the library returns.
func (r Rat) Float64() float64 {
	f, _ := r.r.Float64()
	return f
}

// Cmp gives a total order consistent with value: -1, 0, or 1.
func (r Rat) Cmp(o Rat) int { return r.r.Cmp(o.r) }

// Equal is mathematical equality.
func (r Rat) Equal(o Rat) bool { return r.r.Cmp(o.r) == 0 }

// Key returns a value usable as a Go map key with the same equality as Equal.
// Two Rats compare Equal iff their Keys are ==, since both numerator and
// denominator are already reduced to lowest terms.
func (r Rat) Key() string { return r.String() }

func (r Rat) Add(o Rat) Rat { return Rat{r: new(big.Rat).Add(r.r, o.r)} }
func (r Rat) Sub(o Rat) Rat { return Rat{r: new(big.Rat).Sub(r.r, o.r)} }
func (r Rat) Mul(o Rat) Rat { return Rat{r: new(big.Rat).Mul(r.r, o.r)} }

// Quo returns r/o. The caller must check o.Sign() != 0 first; division by
// the zero rational is a programmer error, not a parse-time one.
func (r Rat) Quo(o Rat) Rat { return Rat{r: new(big.Rat).Quo(r.r, o.r)} }

func (r Rat) Neg() Rat { return Rat{r: new(big.Rat).Neg(r.r)} }

// Inv returns 1/r under this system's explicit (mathematically unsound)
// convention that Inv(0) = 0, matching the constant-fold analysis and the
// approximator so the three stay consistent. See internal/egraph's
// constant-fold Make and internal/approx for the other two call sites of
// this convention.
func (r Rat) Inv() Rat {
	if r.r.Sign() == 0 {
		return Zero()
	}
	return Rat{r: new(big.Rat).Inv(r.r)}
}

// PowInt raises r to a non-negative or negative integer power. The caller
// must ensure r is nonzero when n is negative.
func (r Rat) PowInt(n *big.Int) Rat {
	if n.Sign() == 0 {
		return One()
	}
	neg := n.Sign() < 0
	exp := new(big.Int).Abs(n)
	num := new(big.Int).Exp(r.r.Num(), exp, nil)
	den := new(big.Int).Exp(r.r.Denom(), exp, nil)
	result := new(big.Rat).SetFrac(num, den)
	if neg {
		result.Inv(result)
	}
	return Rat{r: result}
}
