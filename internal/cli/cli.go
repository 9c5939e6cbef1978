/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds the project setup shared by the tessera commands.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/tessera/config"
	tfs "bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/pipeline"
)

// Viper keys bound to persistent flags and TESSERA_* environment variables.
const (
	KeyRoot     = "root"
	KeyTokens   = "tokens"
	KeyOut      = "out"
	KeyPrefix   = "prefix"
	KeyLogLevel = "log-level"
)

// Project is a loaded tessera project.
type Project struct {
	Root   string
	FS     tfs.FileSystem
	Config *config.Config
}

// Open loads the project config under the root named by viper, applies
// flag and environment overrides, and validates the result.
func Open(filesystem tfs.FileSystem) (*Project, error) {
	root := viper.GetString(KeyRoot)
	if root == "" {
		root = "."
	}

	cfg, err := config.LoadOrDefault(filesystem, root, config.Overrides{
		TokensDir: viper.GetString(KeyTokens),
		OutDir:    viper.GetString(KeyOut),
		Prefix:    viper.GetString(KeyPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	return &Project{Root: root, FS: filesystem, Config: cfg}, nil
}

// Driver returns a build driver for the project using the built-in registry.
func (p *Project) Driver() (*pipeline.Driver, error) {
	return pipeline.New(p.Config, pipeline.NewRegistry(), p.FS, p.Root)
}
