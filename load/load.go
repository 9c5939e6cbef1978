/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads a cell's source files into a token dictionary.
package load

import (
	"context"
	"fmt"

	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/parser"
	"bennypowers.dev/tessera/source"
	"bennypowers.dev/tessera/token"
)

// Options configures how tokens are loaded.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Parser parses each file. Defaults to the JSON/YAML parser if nil.
	Parser parser.Parser

	// ParseOptions are passed to the parser for every file.
	ParseOptions parser.Options
}

// Load parses every path in order and merges the results into a new
// dictionary, so later files override earlier ones. Files are read fresh
// on every call. A missing file yields source.ErrMissingSource.
func Load(ctx context.Context, paths []string, opts Options) (*token.Dictionary, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	p := opts.Parser
	if p == nil {
		p = parser.NewJSONParser()
	}

	dict := token.NewDictionary()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !filesystem.Exists(path) {
			return nil, fmt.Errorf("%w: %s", source.ErrMissingSource, path)
		}
		tokens, err := p.ParseFile(filesystem, path, opts.ParseOptions)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		dict.Merge(tokens)
	}
	return dict, nil
}
