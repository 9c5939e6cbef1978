/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, which serves the build matrix
// over the Model Context Protocol on stdio.
package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/convert"
	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/cli"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/internal/version"
	"bennypowers.dev/tessera/pipeline"
	"bennypowers.dev/tessera/postprocess"
	"bennypowers.dev/tessera/resolver"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve tessera tools over MCP (stdio)",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
list_cells, build and resolve_token tools.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol.
	logger.SetOutput(io.Discard)

	t := &tools{open: func() (*pipeline.Driver, *cli.Project, error) {
		project, err := cli.Open(fs.NewOSFileSystem())
		if err != nil {
			return nil, nil, err
		}
		d, err := project.Driver()
		return d, project, err
	}}

	return newServer(t).Run(cmd.Context(), &mcp.StdioTransport{})
}

// newServer registers the tessera tools on a new MCP server.
func newServer(t *tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "tessera", Version: version.Get()}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cells",
		Description: "List every cell of the build matrix in build order, with its source files.",
	}, t.listCells)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build",
		Description: "Build every cell and return the files written.",
	}, t.build)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_token",
		Description: "Resolve one token in one cell as a platform emits it.",
	}, t.resolveToken)

	return server
}

type tools struct {
	open func() (*pipeline.Driver, *cli.Project, error)
}

// CellInfo describes one cell.
type CellInfo struct {
	ID      string   `json:"id" jsonschema:"cell identifier, e.g. acme/dark"`
	Kind    string   `json:"kind" jsonschema:"primitives, theme or typography"`
	Sources []string `json:"sources" jsonschema:"source files, lowest precedence first"`
}

// ListCellsInput takes no arguments.
type ListCellsInput struct{}

// ListCellsOutput lists the matrix.
type ListCellsOutput struct {
	Cells []CellInfo `json:"cells"`
}

func (t *tools) listCells(ctx context.Context, req *mcp.CallToolRequest, in ListCellsInput) (*mcp.CallToolResult, ListCellsOutput, error) {
	d, _, err := t.open()
	if err != nil {
		return nil, ListCellsOutput{}, err
	}
	cells, err := d.Cells()
	if err != nil {
		return nil, ListCellsOutput{}, err
	}
	out := ListCellsOutput{Cells: make([]CellInfo, 0, len(cells))}
	for _, c := range cells {
		out.Cells = append(out.Cells, CellInfo{ID: c.ID(), Kind: string(c.Kind), Sources: c.Sources})
	}
	return nil, out, nil
}

// BuildInput configures a build.
type BuildInput struct {
	SkipFormat bool `json:"skipFormat,omitempty" jsonschema:"skip the format post-processing action"`
}

// BuildOutput lists the written files.
type BuildOutput struct {
	Cells int      `json:"cells"`
	Files []string `json:"files"`
}

func (t *tools) build(ctx context.Context, req *mcp.CallToolRequest, in BuildInput) (*mcp.CallToolResult, BuildOutput, error) {
	d, project, err := t.open()
	if err != nil {
		return nil, BuildOutput{}, err
	}
	if in.SkipFormat {
		d, err = pipeline.New(project.Config.WithoutAction(postprocess.FormatName), pipeline.NewRegistry(), project.FS, project.Root)
		if err != nil {
			return nil, BuildOutput{}, err
		}
	}
	result, err := d.Run(ctx)
	if err != nil {
		return nil, BuildOutput{}, err
	}
	return nil, BuildOutput{Cells: len(result.Cells), Files: result.Files()}, nil
}

// ResolveTokenInput names a token.
type ResolveTokenInput struct {
	Cell     string `json:"cell" jsonschema:"cell identifier from list_cells"`
	Path     string `json:"path" jsonschema:"dot-separated token path, e.g. color.grey.100"`
	Platform string `json:"platform,omitempty" jsonschema:"css (default) or ts"`
}

// ResolveTokenOutput is the resolved token.
type ResolveTokenOutput struct {
	Name          string `json:"name"`
	Value         string `json:"value"`
	OriginalValue string `json:"originalValue"`
	Type          string `json:"type,omitempty"`
	File          string `json:"file"`
}

func (t *tools) resolveToken(ctx context.Context, req *mcp.CallToolRequest, in ResolveTokenInput) (*mcp.CallToolResult, ResolveTokenOutput, error) {
	platform := convert.CSSVariables
	if in.Platform != "" {
		p, err := convert.ParsePlatform(in.Platform)
		if err != nil {
			return nil, ResolveTokenOutput{}, err
		}
		platform = p
	}

	d, _, err := t.open()
	if err != nil {
		return nil, ResolveTokenOutput{}, err
	}
	tok, err := d.ResolveToken(ctx, in.Cell, in.Path, platform)
	if err != nil {
		return nil, ResolveTokenOutput{}, fmt.Errorf("resolve %s: %w", in.Path, err)
	}
	return nil, ResolveTokenOutput{
		Name:          tok.Name,
		Value:         resolver.Stringify(tok.Value),
		OriginalValue: resolver.Stringify(tok.OriginalValue),
		Type:          tok.Type,
		File:          tok.FilePath,
	}, nil
}
