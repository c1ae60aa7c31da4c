// Package leanterm decodes the external serialized prover-term schema: a
// dependently-typed AST with de Bruijn bound variables, implicit/instance
// argument slots, and nat/scientific literal encodings. It is a straight
// one-to-one decoding — Package theorem is where the recognized mathematical
// vocabulary is picked out and lowered into rewrite rules.
package leanterm

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Kind tags an Expr variant.
type Kind int

const (
	BVar Kind = iota
	FVar
	MVar
	Sort
	Const
	App
	Lam
	ForallE
	LetE
	Lit
	MData
	Proj
)

// Expr is the external schema's Expr enum. Only the fields relevant to Kind
// are meaningful. Field names are normalized from the wire schema's
// camelCase (binderName, declName, deBruijnIndex, ...) and from the two
// Rust-keyword-driven renames: external "fn" becomes Function, external
// "struct" becomes Structure.
type Expr struct {
	Kind Kind

	DeBruijnIndex uint64  // BVar
	FVarID        FVarID  // FVar
	MVarID        MVarID  // MVar
	Sort_         Level   // Sort (u)
	DeclName      string  // Const
	Us            []Level // Const

	Function *Expr // App
	Arg      *Expr // App

	BinderName string     // Lam, ForallE, LetE (decl_name for LetE)
	BinderType *Expr      // Lam, ForallE
	Body       *Expr      // Lam, ForallE, LetE
	BinderInfo BinderInfo // Lam, ForallE

	Typ    *Expr // LetE
	Value  *Expr // LetE
	NonDep bool  // LetE

	Literal Literal // Lit

	Data      map[string]json.RawMessage // MData
	InnerExpr *Expr                      // MData

	TypeName  string // Proj
	Idx       uint64 // Proj
	Structure *Expr  // Proj
}

func (e *Expr) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrMalformed, err.Error())
	}
	if len(raw) != 1 {
		return errors.Wrapf(ErrMalformed, "expr object must have exactly one tag, got %d", len(raw))
	}

	for tag, body := range raw {
		switch tag {
		case "bvar":
			var p struct {
				DeBruijnIndex uint64 `json:"deBruijnIndex"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "bvar: %v", err)
			}
			e.Kind, e.DeBruijnIndex = BVar, p.DeBruijnIndex

		case "fvar":
			var p struct {
				FVarID FVarID `json:"fvarId"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "fvar: %v", err)
			}
			e.Kind, e.FVarID = FVar, p.FVarID

		case "mvar":
			var p struct {
				MVarID MVarID `json:"mvarId"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "mvar: %v", err)
			}
			e.Kind, e.MVarID = MVar, p.MVarID

		case "sort":
			var p struct {
				U Level `json:"u"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "sort: %v", err)
			}
			e.Kind, e.Sort_ = Sort, p.U

		case "const":
			var p struct {
				DeclName string  `json:"declName"`
				Us       []Level `json:"us"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "const: %v", err)
			}
			e.Kind, e.DeclName, e.Us = Const, p.DeclName, p.Us

		case "app":
			var p struct {
				Function *Expr `json:"fn"`
				Arg      *Expr `json:"arg"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "app: %v", err)
			}
			e.Kind, e.Function, e.Arg = App, p.Function, p.Arg

		case "lam":
			var p struct {
				BinderName string     `json:"binderName"`
				BinderType *Expr      `json:"binderType"`
				Body       *Expr      `json:"body"`
				BinderInfo BinderInfo `json:"binderInfo"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "lam: %v", err)
			}
			e.Kind, e.BinderName, e.BinderType, e.Body, e.BinderInfo = Lam, p.BinderName, p.BinderType, p.Body, p.BinderInfo

		case "forallE":
			var p struct {
				BinderName string     `json:"binderName"`
				BinderType *Expr      `json:"binderType"`
				Body       *Expr      `json:"body"`
				BinderInfo BinderInfo `json:"binderInfo"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "forallE: %v", err)
			}
			e.Kind, e.BinderName, e.BinderType, e.Body, e.BinderInfo = ForallE, p.BinderName, p.BinderType, p.Body, p.BinderInfo

		case "letE":
			var p struct {
				DeclName string `json:"declName"`
				Typ      *Expr  `json:"type"`
				Value    *Expr  `json:"value"`
				Body     *Expr  `json:"body"`
				NonDep   bool   `json:"nonDep"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "letE: %v", err)
			}
			e.Kind, e.BinderName, e.Typ, e.Value, e.Body, e.NonDep = LetE, p.DeclName, p.Typ, p.Value, p.Body, p.NonDep

		case "lit":
			var lit Literal
			if err := json.Unmarshal(body, &lit); err != nil {
				return errors.Wrapf(ErrMalformed, "lit: %v", err)
			}
			e.Kind, e.Literal = Lit, lit

		case "mdata":
			var p struct {
				Data map[string]json.RawMessage `json:"data"`
				Expr *Expr                      `json:"expr"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "mdata: %v", err)
			}
			e.Kind, e.Data, e.InnerExpr = MData, p.Data, p.Expr

		case "proj":
			var p struct {
				TypeName  string `json:"typeName"`
				Idx       uint64 `json:"idx"`
				Structure *Expr  `json:"struct"`
			}
			if err := json.Unmarshal(body, &p); err != nil {
				return errors.Wrapf(ErrMalformed, "proj: %v", err)
			}
			e.Kind, e.TypeName, e.Idx, e.Structure = Proj, p.TypeName, p.Idx, p.Structure

		default:
			return errors.Wrapf(ErrUnknownVariant, "expr tag %q", tag)
		}
	}
	return nil
}

// Decode parses a single serialized prover term.
func Decode(data []byte) (*Expr, error) {
	var e Expr
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
