/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cells provides the cells command for tessera.
package cells

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/cli"
	"bennypowers.dev/tessera/pipeline"
)

// Cmd is the cells cobra command.
var Cmd = &cobra.Command{
	Use:   "cells",
	Short: "List the build matrix",
	Long:  `List every cell the build would produce, in build order, with its source files.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	project, err := cli.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	driver, err := project.Driver()
	if err != nil {
		return err
	}
	cells, err := driver.Cells()
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), cells)
	case "table":
		outputTable(cmd.OutOrStdout(), cells)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

type cellJSON struct {
	ID string `json:"id"`
	pipeline.Cell
}

func outputJSON(w io.Writer, cells []pipeline.Cell) error {
	out := make([]cellJSON, 0, len(cells))
	for _, c := range cells {
		out = append(out, cellJSON{ID: c.ID(), Cell: c})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling cells: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputTable(w io.Writer, cells []pipeline.Cell) {
	title := cases.Title(language.English)
	headColor := color.New(color.Bold, color.Underline)
	kindColor := color.New(color.FgMagenta)

	width := len("CELL")
	for _, c := range cells {
		width = max(width, len(c.ID()))
	}

	fmt.Fprintf(w, "%s  %s  %s\n",
		headColor.Sprintf("%-*s", width, "CELL"),
		headColor.Sprintf("%-10s", "KIND"),
		headColor.Sprint("SOURCES"))
	for _, c := range cells {
		fmt.Fprintf(w, "%-*s  %s  %s\n",
			width, c.ID(),
			kindColor.Sprintf("%-10s", title.String(string(c.Kind))),
			strings.Join(c.Sources, ", "))
	}
}
