package driver

import (
	"encoding/json"
	"os"

	"juniper/internal/diag"
	"juniper/internal/egraph"
	"juniper/internal/leanterm"
	"juniper/internal/theorem"

	"github.com/pkg/errors"
)

// namedTheorem mirrors the theorem file's on-disk record shape: a name
// paired with its serialized prover-term type.
type namedTheorem struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// ErrTheoremRejected is returned by LoadRules when one or more theorems
// compiled to no usable direction. Per §7, this is a startup-fatal
// condition distinct from an ordinary reported parse error: the caller
// must abort rather than continue with a partial rule set.
var ErrTheoremRejected = errors.New("one or more theorems yielded no usable rewrite direction")

// LoadRules reads a theorem file (a JSON array of {name, type} records),
// decodes and compiles each one via theorem.Compile, and returns the
// resulting rule list. A theorem whose prover-term JSON fails to decode is
// reported through r and skipped, matching the REPL's reported-and-continue
// treatment of ordinary parse errors. A theorem that compiles to no usable
// direction is also reported through r, but additionally causes LoadRules
// to return ErrTheoremRejected once every record has been processed — the
// caller must fail startup rather than proceed with a short rule set.
func LoadRules(path string, r *diag.Reporter) ([]egraph.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading theorem file %s", path)
	}

	var records []namedTheorem
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "theorem file is not a JSON array of {name, type} records")
	}

	var rules []egraph.Rule
	rejected := false
	for _, rec := range records {
		e, err := leanterm.Decode(rec.Type)
		if err != nil {
			r.Report(diag.Diagnostic{Code: diag.ProverJSONParseError, Message: errors.Wrapf(err, "%s", rec.Name).Error()})
			continue
		}

		compiled, err := theorem.Compile(e, rec.Name)
		if err != nil {
			r.Report(diag.Diagnostic{Code: codeFor(err), Message: err.Error()})
			rejected = true
			continue
		}
		if len(compiled) == 1 {
			r.Report(diag.Diagnostic{Code: diag.SingleDirectionWarning, Message: rec.Name + " accepted in one direction only"})
		}
		rules = append(rules, compiled...)
	}
	if rejected {
		return rules, ErrTheoremRejected
	}
	return rules, nil
}

// codeFor classifies a theorem-compilation error into its §7 error code.
func codeFor(err error) string {
	switch {
	case errors.Is(err, theorem.ErrUnknownIdentifier):
		return diag.UnknownIdentifier
	case errors.Is(err, theorem.ErrIRShape):
		return diag.IRShapeError
	case errors.Is(err, theorem.ErrRewriteConstruction):
		return diag.RewriteConstructionError
	default:
		return diag.IRShapeError
	}
}
