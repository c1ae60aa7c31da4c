// Package config parses the juniper CLI's flags into a Config, layering
// the egraph package's saturation defaults under whatever the user
// overrides on the command line.
package config

import (
	"flag"

	"juniper/internal/egraph"

	"github.com/pkg/errors"
)

// Config holds everything the driver needs to build a rule set and run
// either a one-shot simplification or a REPL session.
type Config struct {
	TheoremPath string // path to a JSON file of serialized theorems, "" if none
	Expression  string // -e one-shot expression; "" means REPL mode
	Limits      egraph.Limits
}

// Parse parses args (typically os.Args[1:]) into a Config. Unset flags fall
// back to egraph.DefaultLimits().
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("juniper", flag.ContinueOnError)

	defaults := egraph.DefaultLimits()

	theoremPath := fs.String("theorems", "", "path to a JSON file of serialized theorems")
	expr := fs.String("e", "", "simplify a single expression and exit, instead of entering the REPL")
	nodeLimit := fs.Int("node-limit", defaults.MaxNodes, "maximum e-graph node count before saturation aborts")
	iterLimit := fs.Int("iter-limit", defaults.MaxIters, "maximum saturation iterations")
	timeLimit := fs.Duration("time-limit", defaults.MaxDuration, "maximum wall-clock time spent saturating")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parsing flags")
	}

	if *nodeLimit < 0 || *iterLimit < 0 || *timeLimit < 0 {
		return Config{}, errors.New("node-limit, iter-limit, and time-limit must be non-negative")
	}

	return Config{
		TheoremPath: *theoremPath,
		Expression:  *expr,
		Limits: egraph.Limits{
			MaxNodes:    *nodeLimit,
			MaxIters:    *iterLimit,
			MaxDuration: *timeLimit,
		},
	}, nil
}
