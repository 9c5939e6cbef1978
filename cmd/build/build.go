/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tessera.
package build

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/cli"
	"bennypowers.dev/tessera/pipeline"
	"bennypowers.dev/tessera/postprocess"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build every theme and typography cell",
	Long: `Build the full matrix: the primitives cell, every brand × theme cell
and every brand × breakpoint cell, for every configured platform.

Examples:
  # Build with .config/tessera.yaml
  tessera build

  # Override directories and prefix
  tessera build --tokens design/tokens --out dist --prefix ds

  # Skip the canonical re-print pass
  tessera build --skip-format`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("skip-format", false, "Skip the format post-processing action")
	Cmd.Flags().BoolP("quiet", "q", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	skipFormat, _ := cmd.Flags().GetBool("skip-format")
	quiet, _ := cmd.Flags().GetBool("quiet")

	project, err := cli.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	if skipFormat {
		project.Config = project.Config.WithoutAction(postprocess.FormatName)
	}

	driver, err := project.Driver()
	if err != nil {
		return err
	}

	result, err := driver.Run(cmd.Context())
	if err != nil {
		return err
	}

	if !quiet {
		printSummary(cmd.OutOrStdout(), result)
	}
	return nil
}

func printSummary(w io.Writer, result *pipeline.Result) {
	cellColor := color.New(color.FgCyan, color.Bold)
	fileColor := color.New(color.Faint)
	for _, c := range result.Cells {
		fmt.Fprintf(w, "%s %d tokens\n", cellColor.Sprint(c.Cell.ID()), c.Tokens)
		for _, f := range c.Files {
			fmt.Fprintf(w, "  %s\n", fileColor.Sprint(f))
		}
	}
	fmt.Fprintln(w, color.GreenString("Built %d cells, %d files.", len(result.Cells), len(result.Files())))
}
