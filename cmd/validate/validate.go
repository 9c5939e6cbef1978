/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tessera.
package validate

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/convert"
	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/cli"
	"bennypowers.dev/tessera/pipeline"
	"bennypowers.dev/tessera/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate design token sources",
	Long: `Load and resolve every cell without writing output, then lint the
tokens for invalid colors, object values and name collisions.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	project, err := cli.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	driver, err := project.Driver()
	if err != nil {
		return err
	}

	results, err := driver.Check(cmd.Context())
	if err != nil {
		return err
	}

	findings := lint(driver, results)
	report(cmd.OutOrStdout(), cmd.ErrOrStderr(), findings, quiet)

	if validator.HasErrors(findings, strict) {
		return fmt.Errorf("validation failed")
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d cells valid.\n", len(results))
	}
	return nil
}

// lint validates every cell, reporting each distinct finding once.
// Primitives appear in every cell, so their findings would otherwise repeat.
func lint(driver *pipeline.Driver, results []pipeline.CheckResult) []validator.ValidationError {
	chain, _ := driver.Chain(convert.CSSVariables)

	seen := make(map[string]bool)
	var findings []validator.ValidationError
	for _, r := range results {
		for _, f := range validator.Validate(r.Tokens, chain) {
			key := f.Error()
			if seen[key] {
				continue
			}
			seen[key] = true
			findings = append(findings, f)
		}
	}
	return findings
}

func report(stdout, stderr io.Writer, findings []validator.ValidationError, quiet bool) {
	for _, f := range findings {
		switch f.Severity {
		case validator.SeverityError:
			fmt.Fprintf(stderr, "%s %s\n", color.RedString("error:"), f.Error())
		default:
			if !quiet {
				fmt.Fprintf(stdout, "%s %s\n", color.YellowString("warning:"), f.Error())
			}
		}
	}
}
