/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source discovers token source files by naming convention.
//
// Source files are named <ordinal>.<kind>.<variant>.<ext>, for example
// 1.primitives.value.json, 2.theme.dark.json, 3.brand.enterprise.yaml or
// 4.breakpoint.sm.json. The ordinal encodes precedence.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	tfs "bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/logger"
)

// ErrMissingSource indicates a source file the matrix needs does not exist.
var ErrMissingSource = errors.New("missing source")

// Kind is the role a source file plays in the matrix.
type Kind string

const (
	Primitives Kind = "primitives"
	Theme      Kind = "theme"
	Brand      Kind = "brand"
	Breakpoint Kind = "breakpoint"
)

// Kinds lists every kind in matrix order.
var Kinds = []Kind{Primitives, Theme, Brand, Breakpoint}

const extensions = "{json,yaml,yml}"

// File is one discovered source file.
type File struct {
	Path    string
	Ordinal int
	Kind    Kind
	Variant string
}

// Pattern returns the glob matching file names of the given kind.
func Pattern(kind Kind) string {
	return fmt.Sprintf("*.%s.*.%s", kind, extensions)
}

// ParseName parses a base name following the naming convention.
func ParseName(name string) (File, error) {
	parts := strings.Split(name, ".")
	if len(parts) != 4 {
		return File{}, fmt.Errorf("source name %q: want <ordinal>.<kind>.<variant>.<ext>", name)
	}
	ordinal, err := strconv.Atoi(parts[0])
	if err != nil {
		return File{}, fmt.Errorf("source name %q: ordinal: %w", name, err)
	}
	kind := Kind(parts[1])
	if !slices.Contains(Kinds, kind) {
		return File{}, fmt.Errorf("source name %q: unknown kind %q", name, parts[1])
	}
	if ok, _ := doublestar.Match(Pattern(kind), name); !ok {
		return File{}, fmt.Errorf("source name %q: unsupported extension", name)
	}
	return File{Ordinal: ordinal, Kind: kind, Variant: parts[2]}, nil
}

// Catalog is the set of source files found in a tokens directory.
type Catalog struct {
	Dir   string
	files []File
}

// Discover lists dir and keeps the files that follow the naming convention.
// Other files are ignored.
func Discover(filesystem tfs.FileSystem, dir string) (*Catalog, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		if tfs.IsNotExist(err) {
			return nil, fmt.Errorf("%w: tokens directory %s", ErrMissingSource, dir)
		}
		return nil, err
	}

	c := &Catalog{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, kind := range Kinds {
			if ok, _ := doublestar.Match(Pattern(kind), entry.Name()); !ok {
				continue
			}
			f, err := ParseName(entry.Name())
			if err != nil {
				logger.Warn("Skipping token source: %v", err)
				break
			}
			f.Path = filepath.Join(dir, entry.Name())
			c.files = append(c.files, f)
			break
		}
	}

	slices.SortStableFunc(c.files, func(a, b File) int {
		if a.Ordinal != b.Ordinal {
			return a.Ordinal - b.Ordinal
		}
		return strings.Compare(a.Path, b.Path)
	})
	return c, nil
}

// Variants returns the distinct variants of a kind in precedence order.
func (c *Catalog) Variants(kind Kind) []string {
	var variants []string
	for _, f := range c.files {
		if f.Kind == kind && !slices.Contains(variants, f.Variant) {
			variants = append(variants, f.Variant)
		}
	}
	return variants
}

// Lookup returns the highest-precedence file of a kind and variant.
func (c *Catalog) Lookup(kind Kind, variant string) (File, error) {
	var found *File
	for i := range c.files {
		f := &c.files[i]
		if f.Kind == kind && f.Variant == variant {
			found = f
		}
	}
	if found == nil {
		return File{}, fmt.Errorf("%w: no %s source %q in %s", ErrMissingSource, kind, variant, c.Dir)
	}
	return *found, nil
}

// Primitives returns the primitives file. With several, the highest ordinal wins.
func (c *Catalog) Primitives() (File, error) {
	variants := c.Variants(Primitives)
	if len(variants) == 0 {
		return File{}, fmt.Errorf("%w: no primitives source in %s", ErrMissingSource, c.Dir)
	}
	var found File
	for _, f := range c.files {
		if f.Kind == Primitives {
			found = f
		}
	}
	return found, nil
}
