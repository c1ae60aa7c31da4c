// Package driver wires the parser, e-graph engine, and theorem compiler
// into the two entry points the CLI exposes: a one-shot simplification and
// a line-delimited REPL, both following the teacher's repl.Start shape.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"juniper/internal/approx"
	"juniper/internal/diag"
	"juniper/internal/egraph"
	"juniper/internal/expr"

	"github.com/fatih/color"
)

// Driver holds the live rule set and saturation limits shared across every
// expression it simplifies. Rules grow over a session as Assign forms are
// entered; Limits is fixed for the session's lifetime.
type Driver struct {
	Rules    []egraph.Rule
	Limits   egraph.Limits
	Reporter *diag.Reporter

	assignCount int
}

// New builds a Driver from an initial rule set (typically the output of
// LoadRules).
func New(rules []egraph.Rule, limits egraph.Limits) *Driver {
	return &Driver{Rules: rules, Limits: limits, Reporter: &diag.Reporter{}}
}

// Result is one simplification's output: the extracted canonical term and,
// when the root is non-atomic, its floating-point approximation.
type Result struct {
	Canonical     *expr.Term
	Approximation float64
	HasApprox     bool
}

// Simplify builds a fresh e-graph from t, saturates it against d's current
// rule set, and extracts the lowest-cost representative. If t is an
// Assign(a, b) form, it additionally synthesizes a bidirectional rewrite
// pair and appends it to d.Rules for future calls, per §4.8.
func (d *Driver) Simplify(ctx context.Context, t *expr.Term) (Result, egraph.Status, error) {
	if t.Kind == expr.Assign {
		d.learnAssignment(t)
	}

	g := egraph.New()
	root := g.Add(t)
	status := g.Saturate(d.Rules, d.Limits)

	best, err := g.Extract(root, egraph.AstSizeCost{})
	if err != nil {
		return Result{}, status, err
	}

	res := Result{Canonical: best}
	if !best.IsAtomic() {
		if v, ok := approx.Approximate(best); ok {
			res.Approximation, res.HasApprox = v, true
		}
	}
	return res, status, nil
}

// learnAssignment splits an Assign(a, b) term into two unconditional
// rewrites (a→b, b→a) named assignment_{n}_f / assignment_{n}_b and appends
// them to the rule list, mirroring juniper_repl's create_assignment.
func (d *Driver) learnAssignment(t *expr.Term) {
	if len(t.Args) != 2 {
		return
	}
	a, b := t.Args[0], t.Args[1]
	n := d.assignCount
	d.assignCount++

	d.Rules = append(d.Rules,
		egraph.Rule{Name: fmt.Sprintf("assignment_%d_f", n), LHS: a, RHS: b},
		egraph.Rule{Name: fmt.Sprintf("assignment_%d_b", n), LHS: b, RHS: a},
	)
}

// RunOnce parses and simplifies a single expression, printing the result to
// stdout in the style of the teacher's one-shot CLI.
func (d *Driver) RunOnce(ctx context.Context, source string) error {
	t, err := expr.Parse(source)
	if err != nil {
		d.Reporter.Render(diag.FromParseError(diag.ExpressionParseError, source, err))
		return err
	}

	res, status, err := d.Simplify(ctx, t)
	if err != nil {
		return err
	}
	d.print(res, status)
	return nil
}

// PROMPT mirrors the teacher's repl.PROMPT constant.
const PROMPT = "> "

// RunREPL reads line-delimited expressions from in until EOF, simplifying
// and printing each one; parse errors are reported and the loop continues,
// matching juniper_repl's behavior of looping on malformed input.
func (d *Driver) RunREPL(ctx context.Context, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		t, err := expr.Parse(line)
		if err != nil {
			d.Reporter.Render(diag.FromParseError(diag.ExpressionParseError, line, err))
			continue
		}

		res, status, err := d.Simplify(ctx, t)
		if err != nil {
			color.Red("fatal: %v", err)
			continue
		}
		if status != egraph.Saturated {
			diag.Warn(diag.SingleDirectionWarning, fmt.Sprintf("saturation stopped early (%v)", status))
		}
		d.print(res, status)
	}
}

func (d *Driver) print(res Result, status egraph.Status) {
	color.Green(expr.Print(res.Canonical))
	if res.HasApprox {
		fmt.Printf("≈ %v\n", res.Approximation)
	}
}
