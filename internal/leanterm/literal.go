package leanterm

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// LiteralKind tags the two payload-bearing forms a Lean literal can take.
type LiteralKind int

const (
	NatVal LiteralKind = iota
	StrVal
)

// Literal is the external schema's tagged Literal enum: {"natVal":{"val":N}}
// or {"strVal":{"val":"..."}}.
type Literal struct {
	Kind LiteralKind
	Nat  uint64
	Str  string
}

func (l *Literal) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrMalformed, err.Error())
	}
	if len(raw) != 1 {
		return errors.Wrapf(ErrMalformed, "literal object must have exactly one tag, got %d", len(raw))
	}
	for tag, body := range raw {
		switch tag {
		case "natVal":
			var payload struct {
				Val uint64 `json:"val"`
			}
			if err := json.Unmarshal(body, &payload); err != nil {
				return errors.Wrapf(ErrMalformed, "natVal: %v", err)
			}
			l.Kind = NatVal
			l.Nat = payload.Val
		case "strVal":
			var payload struct {
				Val string `json:"val"`
			}
			if err := json.Unmarshal(body, &payload); err != nil {
				return errors.Wrapf(ErrMalformed, "strVal: %v", err)
			}
			l.Kind = StrVal
			l.Str = payload.Val
		default:
			return errors.Wrapf(ErrUnknownVariant, "literal tag %q", tag)
		}
	}
	return nil
}
