/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package postprocess provides the idempotent passes run over written files.
package postprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	tfs "bennypowers.dev/tessera/fs"
)

var (
	// ErrFormat is returned when a file cannot be parsed for re-printing.
	ErrFormat = errors.New("format error")

	// ErrUnknownAction is returned for unregistered action names.
	ErrUnknownAction = errors.New("unknown post-processing action")
)

// Action names.
const (
	StripDefaultSuffixName = "strip-default-suffix"
	FormatName             = "format"
)

// Action rewrites the content of one written file.
// Process must be idempotent: Process(Process(x)) == Process(x).
type Action interface {
	Name() string
	Process(path string, src []byte) ([]byte, error)
}

// Registry maps action names to actions.
type Registry struct {
	actions map[string]Action
}

// NewRegistry returns a registry holding the built-in actions.
func NewRegistry() *Registry {
	r := &Registry{actions: make(map[string]Action)}
	_ = r.Register(StripDefaultSuffix{})
	_ = r.Register(Format{})
	return r
}

// Register adds an action, replacing none.
func (r *Registry) Register(a Action) error {
	if _, exists := r.actions[a.Name()]; exists {
		return fmt.Errorf("duplicate action %s", a.Name())
	}
	r.actions[a.Name()] = a
	return nil
}

// Actions looks up actions by name, keeping the given order.
func (r *Registry) Actions(names []string) ([]Action, error) {
	result := make([]Action, 0, len(names))
	for _, name := range names {
		a, ok := r.actions[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownAction, name, strings.Join(r.Names(), ", "))
		}
		result = append(result, a)
	}
	return result, nil
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run applies each action in order to every file. Within an action the
// files are processed concurrently; the next action starts only after
// all of them finish.
func Run(ctx context.Context, filesystem tfs.FileSystem, actions []Action, files []string) error {
	for _, action := range actions {
		g, gctx := errgroup.WithContext(ctx)
		for _, file := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return Apply(filesystem, action, file)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("%s: %w", action.Name(), err)
		}
	}
	return nil
}

// Apply runs one action over one file. Missing files are skipped and the
// file is written back only when its content changed.
func Apply(filesystem tfs.FileSystem, action Action, path string) error {
	src, err := filesystem.ReadFile(path)
	if err != nil {
		if tfs.IsNotExist(err) {
			return nil
		}
		return err
	}
	out, err := action.Process(path, src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if bytes.Equal(out, src) {
		return nil
	}
	return filesystem.WriteFile(path, out, 0o644)
}

// defaultSuffixPattern matches a custom property declaration whose name
// ends in one or more -default segments.
var defaultSuffixPattern = regexp.MustCompile(`(--[\w-]+?)(?:-default)+(\s*:)`)

// StripDefaultSuffix removes -default suffixes from declared custom property names.
type StripDefaultSuffix struct{}

// Name implements Action.
func (StripDefaultSuffix) Name() string { return StripDefaultSuffixName }

// Process implements Action.
func (StripDefaultSuffix) Process(_ string, src []byte) ([]byte, error) {
	return defaultSuffixPattern.ReplaceAll(src, []byte("$1$2")), nil
}
