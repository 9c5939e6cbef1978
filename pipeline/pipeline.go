/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline drives the build matrix: it enumerates cells, then for
// each cell loads sources, resolves references, formats every configured
// platform, writes the files and runs post-processing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tessera/config"
	"bennypowers.dev/tessera/convert"
	"bennypowers.dev/tessera/convert/formatter"
	tfs "bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/load"
	"bennypowers.dev/tessera/postprocess"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/source"
	"bennypowers.dev/tessera/token"
	"bennypowers.dev/tessera/transform"
)

var (
	// ErrUnknownCell is returned when a cell ID matches no enumerated cell.
	ErrUnknownCell = errors.New("unknown cell")
	// ErrUnknownToken is returned when a path matches no token in a cell.
	ErrUnknownToken = errors.New("unknown token")
	// ErrNoTarget is returned when a platform is not configured.
	ErrNoTarget = errors.New("platform not configured")
)

// target is one configured output platform.
type target struct {
	platform  convert.Platform
	dir       string
	chain     *transform.Chain
	mode      resolver.Mode
	formatter formatter.Formatter
}

// Driver builds the matrix described by a config.
type Driver struct {
	cfg     *config.Config
	fs      tfs.FileSystem
	root    string
	targets []target
	actions []postprocess.Action
}

// New prepares a driver. Platform, transform and action names are looked
// up in reg here, so a bad name fails before any cell runs.
func New(cfg *config.Config, reg *Registry, filesystem tfs.FileSystem, root string) (*Driver, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if reg == nil {
		reg = NewRegistry()
	}
	if filesystem == nil {
		filesystem = tfs.NewOSFileSystem()
	}

	d := &Driver{cfg: cfg, fs: filesystem, root: root}

	for _, pc := range cfg.Platforms {
		platform, err := convert.ParsePlatform(pc.Platform)
		if err != nil {
			return nil, err
		}

		var chain *transform.Chain
		if len(pc.Transforms) > 0 {
			chain, err = reg.Transforms.Chain(pc.Transforms, cfg.Prefix)
		} else {
			chain, err = reg.Transforms.GroupChain(platform.String(), cfg.Prefix)
		}
		if err != nil {
			return nil, fmt.Errorf("platform %s: %w", platform, err)
		}

		mode, err := resolver.ParseMode(pc.References)
		if err != nil {
			return nil, fmt.Errorf("platform %s: %w", platform, err)
		}

		f, err := reg.formatter(platform)
		if err != nil {
			return nil, err
		}

		dir := pc.Dir
		if dir == "" {
			dir = platform.DefaultDir()
		}

		d.targets = append(d.targets, target{
			platform:  platform,
			dir:       dir,
			chain:     chain,
			mode:      mode,
			formatter: f,
		})
	}

	actions, err := reg.Actions.Actions(cfg.Actions)
	if err != nil {
		return nil, err
	}
	d.actions = actions

	return d, nil
}

// Chain returns the transform chain configured for a platform.
func (d *Driver) Chain(p convert.Platform) (*transform.Chain, bool) {
	for _, t := range d.targets {
		if t.platform == p {
			return t.chain, true
		}
	}
	return nil, false
}

func (d *Driver) abs(p string) string {
	if filepath.IsAbs(p) || d.root == "" {
		return p
	}
	return filepath.Join(d.root, p)
}

// Cells enumerates the matrix: the primitives cell, then every brand ×
// theme, then every brand × breakpoint. Dimensions not pinned in config
// are discovered from the tokens directory.
func (d *Driver) Cells() ([]Cell, error) {
	catalog, err := source.Discover(d.fs, d.abs(d.cfg.TokensDir))
	if err != nil {
		return nil, &CellError{Cell: Cell{Kind: KindPrimitives}, Stage: StageConfigure, Err: err}
	}

	prim, err := catalog.Primitives()
	if err != nil {
		return nil, &CellError{Cell: Cell{Kind: KindPrimitives}, Stage: StageConfigure, Err: err}
	}

	brands := dimension(d.cfg.Brands, catalog, source.Brand)
	themes := dimension(d.cfg.Themes, catalog, source.Theme)
	breakpoints := dimension(d.cfg.Breakpoints, catalog, source.Breakpoint)
	if len(brands) == 0 {
		logger.Warn("No brands found in %s, only primitives will be built", catalog.Dir)
	}

	cells := []Cell{{Kind: KindPrimitives, Sources: []string{prim.Path}, primitives: prim.Path}}

	for _, brand := range brands {
		for _, theme := range themes {
			cell := Cell{Kind: KindTheme, Brand: brand, Theme: theme, primitives: prim.Path}
			sources, err := cellSources(catalog, prim, source.Theme, theme, brand)
			if err != nil {
				return nil, &CellError{Cell: cell, Stage: StageConfigure, Err: err}
			}
			cell.Sources = sources
			cells = append(cells, cell)
		}
	}

	for _, brand := range brands {
		for _, bp := range breakpoints {
			cell := Cell{Kind: KindTypography, Brand: brand, Breakpoint: bp, primitives: prim.Path}
			sources, err := cellSources(catalog, prim, source.Breakpoint, bp, brand)
			if err != nil {
				return nil, &CellError{Cell: cell, Stage: StageConfigure, Err: err}
			}
			cell.Sources = sources
			cells = append(cells, cell)
		}
	}

	return cells, nil
}

func dimension(pinned []string, catalog *source.Catalog, kind source.Kind) []string {
	if len(pinned) > 0 {
		return pinned
	}
	return catalog.Variants(kind)
}

// cellSources returns [primitives, <kind variant>, brand].
func cellSources(catalog *source.Catalog, prim source.File, kind source.Kind, variant, brand string) ([]string, error) {
	v, err := catalog.Lookup(kind, variant)
	if err != nil {
		return nil, err
	}
	b, err := catalog.Lookup(source.Brand, brand)
	if err != nil {
		return nil, err
	}
	return []string{prim.Path, v.Path, b.Path}, nil
}

// CellResult records what one cell produced.
type CellResult struct {
	Cell   Cell
	Files  []string
	Tokens int
}

// Result records a complete run.
type Result struct {
	Cells []CellResult
}

// Files returns every written file in cell order.
func (r *Result) Files() []string {
	var files []string
	for _, c := range r.Cells {
		files = append(files, c.Files...)
	}
	return files
}

// Run builds every cell in order, stopping at the first failure.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	cells, err := d.Cells()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, cell := range cells {
		cr, err := d.RunCell(ctx, cell)
		if err != nil {
			return result, err
		}
		result.Cells = append(result.Cells, *cr)
	}
	return result, nil
}

// RunCell builds a single cell for every configured platform, then runs
// the post-processing actions over the cell's files.
func (d *Driver) RunCell(ctx context.Context, cell Cell) (*CellResult, error) {
	fail := func(stage Stage, err error) (*CellResult, error) {
		return nil, &CellError{Cell: cell, Stage: stage, Err: err}
	}

	logger.Debug("Building cell %s", cell.ID())

	dict, err := d.load(ctx, cell)
	if err != nil {
		return fail(StageLoad, err)
	}

	cr := &CellResult{Cell: cell, Tokens: dict.Len()}
	for _, t := range d.targets {
		tokens, err := resolver.Resolve(dict, t.chain, t.mode)
		if err != nil {
			return fail(StageResolve, fmt.Errorf("%s: %w", t.platform, err))
		}

		out, err := t.formatter.Format(tokens, d.options(cell))
		if err != nil {
			return fail(StageFormat, fmt.Errorf("%s: %w", t.platform, err))
		}

		path := d.OutputPath(t.platform, t.dir, cell)
		if err := tfs.WriteFileAll(d.fs, path, out); err != nil {
			return fail(StageWrite, err)
		}
		logger.Debug("Wrote %s", path)
		cr.Files = append(cr.Files, path)
	}

	if err := postprocess.Run(ctx, d.fs, d.actions, cr.Files); err != nil {
		return fail(StagePostProcess, err)
	}

	return cr, nil
}

func (d *Driver) load(ctx context.Context, cell Cell) (*token.Dictionary, error) {
	return load.Load(ctx, cell.Sources, load.Options{FS: d.fs})
}

func (d *Driver) options(cell Cell) formatter.Options {
	opts := formatter.Options{Header: d.cfg.Header}
	switch cell.Kind {
	case KindTheme:
		opts.Selector = formatter.ForTheme(cell.Theme, d.cfg.DefaultTheme)
		opts.StringsOnly = true
	case KindTypography:
		opts.Selector = formatter.ForBreakpoint(cell.Breakpoint, d.cfg.BaselineBreakpoint, d.cfg.Widths())
	default:
		opts.Selector = formatter.Root()
	}
	if cell.Kind != KindPrimitives && cell.primitives != "" {
		prim := cell.primitives
		opts.Filter = func(tok *token.Token) bool {
			return tok.FilePath != prim
		}
	}
	return opts
}

// OutputPath returns where a cell's output for a platform is written.
func (d *Driver) OutputPath(p convert.Platform, dir string, cell Cell) string {
	return d.abs(filepath.Join(d.cfg.OutDir, dir, filepath.FromSlash(cell.ID())+p.Extension()))
}

// CheckResult is one cell's loaded dictionary.
type CheckResult struct {
	Cell   Cell
	Tokens []*token.Token
}

// Check loads and resolves every cell for every platform without writing
// anything.
func (d *Driver) Check(ctx context.Context) ([]CheckResult, error) {
	cells, err := d.Cells()
	if err != nil {
		return nil, err
	}

	var results []CheckResult
	for _, cell := range cells {
		dict, err := d.load(ctx, cell)
		if err != nil {
			return results, &CellError{Cell: cell, Stage: StageLoad, Err: err}
		}
		for _, t := range d.targets {
			if _, err := resolver.Resolve(dict, t.chain, t.mode); err != nil {
				return results, &CellError{Cell: cell, Stage: StageResolve, Err: fmt.Errorf("%s: %w", t.platform, err)}
			}
		}
		results = append(results, CheckResult{Cell: cell, Tokens: dict.Tokens()})
	}
	return results, nil
}

// ResolveToken resolves one token of one cell as a platform would emit it.
func (d *Driver) ResolveToken(ctx context.Context, cellID, dotPath string, p convert.Platform) (*token.Token, error) {
	var t *target
	for i := range d.targets {
		if d.targets[i].platform == p {
			t = &d.targets[i]
			break
		}
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTarget, p)
	}

	cells, err := d.Cells()
	if err != nil {
		return nil, err
	}
	for _, cell := range cells {
		if cell.ID() != cellID {
			continue
		}
		dict, err := d.load(ctx, cell)
		if err != nil {
			return nil, &CellError{Cell: cell, Stage: StageLoad, Err: err}
		}
		tokens, err := resolver.Resolve(dict, t.chain, t.mode)
		if err != nil {
			return nil, &CellError{Cell: cell, Stage: StageResolve, Err: err}
		}
		for _, tok := range tokens {
			if tok.DotPath() == dotPath {
				return tok, nil
			}
		}
		return nil, fmt.Errorf("%w: %s in cell %s", ErrUnknownToken, dotPath, cellID)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCell, cellID)
}
