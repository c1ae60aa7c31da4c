package leanterm

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// LevelKind tags a universe level. The theorem compiler never inspects
// levels (the name table is level-agnostic), but C6 decodes them fully
// since the external schema is otherwise a straight one-to-one mapping.
type LevelKind int

const (
	LevelZero LevelKind = iota
	LevelSucc
	LevelMax
	LevelIMax
	LevelParam
	LevelMVar
)

// Level is the external schema's Level enum. Unit variant Zero serializes
// as the bare string "zero"; every other variant serializes as a
// single-key object.
type Level struct {
	Kind  LevelKind
	Of    *Level // Succ
	A, B  *Level // Max, IMax
	Param string
	MVar  LMVarID
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "zero" {
			return errors.Wrapf(ErrUnknownVariant, "level tag %q", tag)
		}
		l.Kind = LevelZero
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrMalformed, err.Error())
	}
	if len(raw) != 1 {
		return errors.Wrapf(ErrMalformed, "level object must have exactly one tag, got %d", len(raw))
	}
	for tag, body := range raw {
		switch tag {
		case "succ":
			var of Level
			if err := json.Unmarshal(body, &of); err != nil {
				return errors.Wrapf(ErrMalformed, "succ: %v", err)
			}
			l.Kind = LevelSucc
			l.Of = &of
		case "max":
			var pair [2]Level
			if err := json.Unmarshal(body, &pair); err != nil {
				return errors.Wrapf(ErrMalformed, "max: %v", err)
			}
			l.Kind = LevelMax
			l.A, l.B = &pair[0], &pair[1]
		case "imax":
			var pair [2]Level
			if err := json.Unmarshal(body, &pair); err != nil {
				return errors.Wrapf(ErrMalformed, "imax: %v", err)
			}
			l.Kind = LevelIMax
			l.A, l.B = &pair[0], &pair[1]
		case "param":
			var name string
			if err := json.Unmarshal(body, &name); err != nil {
				return errors.Wrapf(ErrMalformed, "param: %v", err)
			}
			l.Kind = LevelParam
			l.Param = name
		case "mvar":
			var m LMVarID
			if err := json.Unmarshal(body, &m); err != nil {
				return errors.Wrapf(ErrMalformed, "mvar: %v", err)
			}
			l.Kind = LevelMVar
			l.MVar = m
		default:
			return errors.Wrapf(ErrUnknownVariant, "level tag %q", tag)
		}
	}
	return nil
}

// LMVarID, FVarID, MVarID are thin named-field wrappers in the external
// schema; Go models them as plain structs with one field each.
type LMVarID struct {
	Name string `json:"name"`
}

type FVarID struct {
	Name string `json:"name"`
}

type MVarID struct {
	Name string `json:"name"`
}
