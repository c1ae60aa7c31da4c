package theorem

import (
	"juniper/internal/leanterm"

	"github.com/pkg/errors"
)

// partial is an in-progress application lowering: a skeleton with some
// prefix of its slots filled. Only finalize's switch over p.kind reads the
// scratch fields, each written by at most one role.
type partial struct {
	kind Kind
	op   string
	typ  string
	in1  *IR
	in2  *IR
	natA uint64
	natB uint64
	boolA bool

	filled int
}

// lower converts an arbitrary prover subterm into IR. stack holds bound
// variable names with index 0 the most recently introduced binder, matching
// de Bruijn numbering.
func lower(e *leanterm.Expr, stack []string) (*IR, error) {
	switch e.Kind {
	case leanterm.BVar:
		idx := int(e.DeBruijnIndex)
		if idx < 0 || idx >= len(stack) {
			return nil, errors.Wrapf(ErrIRShape, "de Bruijn index %d out of range (depth %d)", idx, len(stack))
		}
		return &IR{Kind: Var, Name: stack[idx]}, nil

	case leanterm.Const:
		skel, ok := nameTable[e.DeclName]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownIdentifier, "%q", e.DeclName)
		}
		if len(slotRoles[skel.kind]) != 0 {
			return nil, errors.Wrapf(ErrIRShape, "%q used without its required arguments", e.DeclName)
		}
		return &IR{Kind: skel.kind}, nil

	case leanterm.App:
		p, err := appParse(e, stack)
		if err != nil {
			return nil, err
		}
		return finalize(p)

	default:
		return nil, errors.Wrapf(ErrIRShape, "unexpected node kind %d in expression position", e.Kind)
	}
}

// appParse walks a right-associative chain of App nodes down to its head
// identifier, then fills slots on the way back up in left-to-right argument
// order.
func appParse(e *leanterm.Expr, stack []string) (*partial, error) {
	if e.Kind == leanterm.App {
		p, err := appParse(e.Function, stack)
		if err != nil {
			return nil, err
		}
		if e.Arg == nil {
			return nil, errors.Wrap(ErrIRShape, "application missing argument")
		}
		if err := fillSlot(p, e.Arg, stack); err != nil {
			return nil, err
		}
		return p, nil
	}

	if e.Kind != leanterm.Const {
		return nil, errors.Wrapf(ErrIRShape, "application head must be an identifier, got node kind %d", e.Kind)
	}
	skel, ok := nameTable[e.DeclName]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIdentifier, "%q", e.DeclName)
	}
	return &partial{kind: skel.kind, op: skel.op}, nil
}

func fillSlot(p *partial, arg *leanterm.Expr, stack []string) error {
	roles := slotRoles[p.kind]
	if p.filled >= len(roles) {
		return errors.Wrapf(ErrIRShape, "too many arguments applied to %q-headed term", p.op)
	}
	switch roles[p.filled] {
	case roleType:
		if arg.Kind != leanterm.Const {
			return errors.Wrap(ErrIRShape, "expected a type identifier in implicit slot")
		}
		p.typ = arg.DeclName

	case roleInstance:
		// Any term is accepted and discarded here.

	case roleIn1:
		sub, err := lower(arg, stack)
		if err != nil {
			return err
		}
		p.in1 = sub

	case roleIn2:
		sub, err := lower(arg, stack)
		if err != nil {
			return err
		}
		p.in2 = sub

	case roleNatA:
		if arg.Kind != leanterm.Lit || arg.Literal.Kind != leanterm.NatVal {
			return errors.Wrap(ErrIRShape, "expected a natural-number literal")
		}
		p.natA = arg.Literal.Nat

	case roleNatB:
		if arg.Kind != leanterm.Lit || arg.Literal.Kind != leanterm.NatVal {
			return errors.Wrap(ErrIRShape, "expected a natural-number literal")
		}
		p.natB = arg.Literal.Nat

	case roleBoolA:
		if arg.Kind != leanterm.Const || (arg.DeclName != "Bool.true" && arg.DeclName != "Bool.false") {
			return errors.Wrap(ErrIRShape, "expected Bool.true or Bool.false")
		}
		p.boolA = arg.DeclName == "Bool.true"
	}
	p.filled++
	return nil
}

func finalize(p *partial) (*IR, error) {
	if p.filled != len(slotRoles[p.kind]) {
		return nil, errors.Wrapf(ErrIRShape, "incomplete application: filled %d of %d slots", p.filled, len(slotRoles[p.kind]))
	}
	switch p.kind {
	case OfNat:
		return &IR{Kind: OfNat, NatValue: p.natA}, nil
	case OfScientific:
		return &IR{Kind: OfScientific, NatValue: p.natA, ExpSign: p.boolA, Exponent: p.natB}, nil
	case Eq:
		return &IR{Kind: Eq, In1: p.in1, In2: p.in2}, nil
	case Ne:
		return &IR{Kind: Ne, In1: p.in1, In2: p.in2}, nil
	case HBool:
		return &IR{Kind: HBool, Op: p.op, In1: p.in1, In2: p.in2}, nil
	case TUnary:
		return &IR{Kind: TUnary, Op: p.op, In1: p.in1}, nil
	case IUnary:
		return &IR{Kind: IUnary, Op: p.op, In1: p.in1}, nil
	default:
		return nil, errors.Wrap(ErrIRShape, "unreachable: finalize of a zero-slot skeleton")
	}
}
