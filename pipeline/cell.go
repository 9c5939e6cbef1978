/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline

import (
	"fmt"
	"path"
)

// CellKind distinguishes the three shapes of build cell.
type CellKind string

const (
	// KindPrimitives is the single cell built from the primitives source.
	KindPrimitives CellKind = "primitives"
	// KindTheme is a brand × theme cell.
	KindTheme CellKind = "theme"
	// KindTypography is a brand × breakpoint cell.
	KindTypography CellKind = "typography"
)

// Cell is one unit of the build matrix.
type Cell struct {
	Kind       CellKind `json:"kind"`
	Brand      string   `json:"brand,omitempty"`
	Theme      string   `json:"theme,omitempty"`
	Breakpoint string   `json:"breakpoint,omitempty"`

	// Sources are the files loaded for the cell, lowest precedence first.
	Sources []string `json:"sources"`

	// primitives is the primitives source path, used to filter tokens out
	// of theme and typography output.
	primitives string
}

// ID names the cell by its output path without directory or extension:
// "primitives", "<brand>/<theme>" or "<brand>/typographies/<breakpoint>".
func (c Cell) ID() string {
	switch c.Kind {
	case KindTheme:
		return path.Join(c.Brand, c.Theme)
	case KindTypography:
		return path.Join(c.Brand, "typographies", c.Breakpoint)
	default:
		return string(KindPrimitives)
	}
}

func (c Cell) String() string {
	return c.ID()
}

// Stage is one step of building a cell.
type Stage string

const (
	StageConfigure   Stage = "configure"
	StageLoad        Stage = "load"
	StageResolve     Stage = "resolve"
	StageFormat      Stage = "format"
	StageWrite       Stage = "write"
	StagePostProcess Stage = "postprocess"
)

// CellError reports the cell and stage at which a build failed.
type CellError struct {
	Cell  Cell
	Stage Stage
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: %s: %v", e.Cell.ID(), e.Stage, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
