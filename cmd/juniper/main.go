// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"os"

	"juniper/internal/config"
	"juniper/internal/diag"
	"juniper/internal/driver"
	"juniper/internal/egraph"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		color.Red("Failed to parse flags: %s", err)
		os.Exit(1)
	}

	reporter := &diag.Reporter{}
	var rules []egraph.Rule
	if cfg.TheoremPath != "" {
		rules, err = driver.LoadRules(cfg.TheoremPath, reporter)
		reporter.RenderAll()
		if errors.Is(err, driver.ErrTheoremRejected) {
			color.Red("Startup aborted: %s", err)
			os.Exit(1)
		}
		if err != nil {
			color.Red("Failed to load theorem file: %s", err)
			os.Exit(1)
		}
	}

	d := driver.New(rules, cfg.Limits)
	d.Reporter = reporter
	ctx := context.Background()

	if cfg.Expression != "" {
		if err := d.RunOnce(ctx, cfg.Expression); err != nil {
			os.Exit(1)
		}
		return
	}

	fmt.Println("Enter a (lisp-y) expression:")
	d.RunREPL(ctx, os.Stdin, os.Stdout)
}
