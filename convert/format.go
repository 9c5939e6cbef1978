/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert maps output platforms to their formatters.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/tessera/convert/formatter"
	"bennypowers.dev/tessera/convert/formatter/css"
	"bennypowers.dev/tessera/convert/formatter/js"
)

// ErrUnknownPlatform is returned for platform names outside the closed set.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform is an output platform.
type Platform int

const (
	// CSSVariables outputs CSS custom properties.
	CSSVariables Platform = iota
	// TypedNestedObject outputs a typed TypeScript object keyed by selector.
	TypedNestedObject
)

type platformInfo struct {
	name      string
	aliases   []string
	dir       string
	extension string
	formatter func() formatter.Formatter
}

var platforms = map[Platform]platformInfo{
	CSSVariables: {
		name:      "css",
		aliases:   []string{"css-variables"},
		dir:       "css",
		extension: ".css",
		formatter: func() formatter.Formatter { return css.New() },
	},
	TypedNestedObject: {
		name:      "ts",
		aliases:   []string{"typescript", "typed-object"},
		dir:       "js",
		extension: ".ts",
		formatter: func() formatter.Formatter { return js.New() },
	},
}

// Platforms returns every platform in declaration order.
func Platforms() []Platform {
	return []Platform{CSSVariables, TypedNestedObject}
}

// ValidPlatforms returns all valid platform strings.
func ValidPlatforms() []string {
	names := make([]string, 0, len(platforms))
	for _, p := range Platforms() {
		names = append(names, p.String())
	}
	return names
}

// ParsePlatform converts a string to a Platform.
func ParsePlatform(s string) (Platform, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Platforms() {
		info := platforms[p]
		if s == info.name {
			return p, nil
		}
		for _, alias := range info.aliases {
			if s == alias {
				return p, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPlatform, s, strings.Join(ValidPlatforms(), ", "))
}

func (p Platform) String() string {
	if info, ok := platforms[p]; ok {
		return info.name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// DefaultDir is the output subdirectory used when config leaves it empty.
func (p Platform) DefaultDir() string {
	return platforms[p].dir
}

// Extension is the file extension, dot included.
func (p Platform) Extension() string {
	return platforms[p].extension
}

// Formatter returns a new formatter for the platform.
func (p Platform) Formatter() (formatter.Formatter, error) {
	info, ok := platforms[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
	}
	return info.formatter(), nil
}
