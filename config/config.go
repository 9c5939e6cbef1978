/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token build matrix.
package config

import (
	"maps"

	"bennypowers.dev/tessera/convert"
	"bennypowers.dev/tessera/convert/formatter"
	"bennypowers.dev/tessera/resolver"
)

// Default values applied when the config file leaves a field empty.
const (
	DefaultTokensDir          = "tokens"
	DefaultOutDir             = "src/themes"
	DefaultTheme              = "light"
	DefaultBaselineBreakpoint = "sm"
	DefaultHeader             = "Do not edit directly, this file was auto-generated."
)

// DefaultActions are the post-processing actions run after each cell.
var DefaultActions = []string{"strip-default-suffix", "format"}

// Config represents the build matrix configuration.
type Config struct {
	// TokensDir is the directory holding the token source files.
	TokensDir string `yaml:"tokensDir" json:"tokensDir" toml:"tokensDir" validate:"required"`

	// OutDir is the root of the generated output tree.
	OutDir string `yaml:"outDir" json:"outDir" toml:"outDir" validate:"required"`

	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix" validate:"omitempty,ident"`

	// Brands, Themes and Breakpoints pin the matrix dimensions.
	// When empty they are discovered from TokensDir.
	Brands      []string `yaml:"brands" json:"brands" toml:"brands" validate:"dive,ident"`
	Themes      []string `yaml:"themes" json:"themes" toml:"themes" validate:"dive,ident"`
	Breakpoints []string `yaml:"breakpoints" json:"breakpoints" toml:"breakpoints" validate:"dive,ident"`

	// DefaultTheme is the theme emitted under :root.
	DefaultTheme string `yaml:"defaultTheme" json:"defaultTheme" toml:"defaultTheme" validate:"required,ident"`

	// BaselineBreakpoint is the breakpoint emitted without a media query.
	BaselineBreakpoint string `yaml:"baselineBreakpoint" json:"baselineBreakpoint" toml:"baselineBreakpoint" validate:"required,ident"`

	// BreakpointWidths overrides or extends the built-in min-width table.
	BreakpointWidths map[string]int `yaml:"breakpointWidths" json:"breakpointWidths" toml:"breakpointWidths" validate:"dive,keys,ident,endkeys,gt=0"`

	// Header is the comment written at the top of generated files.
	Header string `yaml:"header" json:"header" toml:"header"`

	// Platforms lists the outputs generated for every cell.
	Platforms []PlatformConfig `yaml:"platforms" json:"platforms" toml:"platforms" validate:"dive"`

	// Actions lists post-processing actions in run order.
	Actions []string `yaml:"actions" json:"actions" toml:"actions" validate:"dive,oneof=strip-default-suffix format"`
}

// PlatformConfig configures one output platform.
type PlatformConfig struct {
	// Platform is "css" or "ts".
	Platform string `yaml:"platform" json:"platform" toml:"platform" validate:"required,platform"`

	// Dir is the output subdirectory under OutDir.
	Dir string `yaml:"dir" json:"dir" toml:"dir"`

	// Transforms replaces the platform's default transform group.
	Transforms []string `yaml:"transforms" json:"transforms" toml:"transforms"`

	// References is "var" (default) or "literal".
	References string `yaml:"references" json:"references" toml:"references" validate:"omitempty,oneof=var literal"`
}

// Default returns a config with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.TokensDir == "" {
		c.TokensDir = DefaultTokensDir
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = DefaultTheme
	}
	if c.BaselineBreakpoint == "" {
		c.BaselineBreakpoint = DefaultBaselineBreakpoint
	}
	if c.Header == "" {
		c.Header = DefaultHeader
	}
	if len(c.Platforms) == 0 {
		c.Platforms = []PlatformConfig{
			{Platform: convert.CSSVariables.String()},
			{Platform: convert.TypedNestedObject.String()},
		}
	}
	for i := range c.Platforms {
		p := &c.Platforms[i]
		if p.Dir == "" {
			if platform, err := convert.ParsePlatform(p.Platform); err == nil {
				p.Dir = platform.DefaultDir()
			}
		}
		if p.References == "" {
			p.References = string(resolver.ModeVar)
		}
	}
	if c.Actions == nil {
		c.Actions = append([]string(nil), DefaultActions...)
	}
}

// Overrides carries command-line or environment values that take
// precedence over the config file. Empty fields are ignored.
type Overrides struct {
	TokensDir string
	OutDir    string
	Prefix    string
}

// Apply copies non-empty override values onto the config.
func (c *Config) Apply(o Overrides) {
	if o.TokensDir != "" {
		c.TokensDir = o.TokensDir
	}
	if o.OutDir != "" {
		c.OutDir = o.OutDir
	}
	if o.Prefix != "" {
		c.Prefix = o.Prefix
	}
}

// Widths returns the breakpoint min-width table with overrides applied.
func (c *Config) Widths() map[string]int {
	widths := maps.Clone(formatter.DefaultBreakpointWidths)
	maps.Copy(widths, c.BreakpointWidths)
	return widths
}

// WithoutAction returns a copy of the config with the named action removed.
func (c *Config) WithoutAction(name string) *Config {
	clone := *c
	clone.Actions = nil
	for _, a := range c.Actions {
		if a != name {
			clone.Actions = append(clone.Actions, a)
		}
	}
	if clone.Actions == nil {
		clone.Actions = []string{}
	}
	return &clone
}
