package expr

import (
	"juniper/internal/bigrat"

	"github.com/pkg/errors"
)

// ErrMalformed is wrapped by every lowering failure: an operator used with
// the wrong number of arguments, an unrecognized multi-rune identifier, or
// an invalid rational literal.
var ErrMalformed = errors.New("malformed expression")

func build(rt *rawTerm) (*Term, error) {
	switch {
	case rt.Num != nil:
		r, err := bigrat.Parse(*rt.Num)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "invalid numeric literal %q: %v", *rt.Num, err)
		}
		return NewConst(r), nil

	case rt.Pat != nil:
		return NewPatVar(*rt.Pat), nil

	case rt.Ident != nil:
		return buildIdent(*rt.Ident)

	case rt.Paren != nil:
		return buildList(rt.Paren)

	default:
		return nil, errors.Wrap(ErrMalformed, "empty term")
	}
}

func buildIdent(word string) (*Term, error) {
	if word == "π" {
		return NewPi(), nil
	}
	runes := []rune(word)
	if len(runes) == 1 {
		return NewVar(runes[0]), nil
	}
	return nil, errors.Wrapf(ErrMalformed, "variable %q must be a single character", word)
}

func buildList(rl *rawList) (*Term, error) {
	args := make([]*Term, 0, len(rl.Args))
	for _, a := range rl.Args {
		built, err := build(a)
		if err != nil {
			return nil, err
		}
		args = append(args, built)
	}

	kind, ok := resolveOp(rl.Op, len(args))
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "operator %q does not accept %d argument(s)", rl.Op, len(args))
	}
	return &Term{Kind: kind, Args: args}, nil
}
