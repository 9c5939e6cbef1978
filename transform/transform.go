/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the named name and value transforms applied
// to tokens before formatting.
package transform

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var (
	// ErrUnknownTransform is returned when a chain names an unregistered transform.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrDuplicateTransform is returned when registering a name twice.
	ErrDuplicateTransform = errors.New("duplicate transform")
)

// Kind distinguishes transforms that rename tokens from those that rewrite values.
type Kind int

const (
	// KindName transforms rewrite the emitted token name.
	KindName Kind = iota
	// KindValue transforms rewrite the emitted token value.
	KindValue
)

func (k Kind) String() string {
	if k == KindName {
		return "name"
	}
	return "value"
}

// Transform is a single named step of a chain.
// Exactly one of Rename or Convert is set, according to Kind.
type Transform struct {
	Name    string
	Kind    Kind
	Rename  func(name string) string
	Convert func(value any) (any, error)
}

// Built-in transform names.
const (
	NameKebab         = "name/kebab"
	NameLower         = "name/lower"
	NameStripPercent  = "name/strip-percent"
	NameStripDefault  = "name/strip-default"
	ValuePx           = "value/px"
	ValueColorHex     = "value/color-hex"
	GroupCSS          = "css"
	GroupTS           = "ts"
	pathSeparator     = "."
	maxNameIterations = 8
)

// Registry holds transforms and named transform groups.
// Registries are independent; callers build one per driver.
type Registry struct {
	transforms map[string]Transform
	groups     map[string][]string
}

// NewRegistry returns a registry holding the built-in transforms and groups.
func NewRegistry() *Registry {
	r := &Registry{
		transforms: make(map[string]Transform),
		groups:     make(map[string][]string),
	}
	for _, t := range builtins() {
		_ = r.Register(t)
	}
	defaultGroup := []string{NameKebab, NameLower, NameStripPercent, NameStripDefault, ValuePx}
	_ = r.RegisterGroup(GroupCSS, defaultGroup)
	_ = r.RegisterGroup(GroupTS, defaultGroup)
	return r
}

// Register adds a transform.
func (r *Registry) Register(t Transform) error {
	if _, exists := r.transforms[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTransform, t.Name)
	}
	if t.Kind == KindName && t.Rename == nil || t.Kind == KindValue && t.Convert == nil {
		return fmt.Errorf("transform %s: missing %s function", t.Name, t.Kind)
	}
	r.transforms[t.Name] = t
	return nil
}

// RegisterGroup names an ordered list of transforms. Every member must
// already be registered. Re-registering a group replaces it.
func (r *Registry) RegisterGroup(name string, members []string) error {
	for _, m := range members {
		if _, ok := r.transforms[m]; !ok {
			return fmt.Errorf("group %s: %w: %s", name, ErrUnknownTransform, m)
		}
	}
	r.groups[name] = slices.Clone(members)
	return nil
}

// Group returns the members of a named group.
func (r *Registry) Group(name string) ([]string, bool) {
	members, ok := r.groups[name]
	return slices.Clone(members), ok
}

// Names returns every registered transform name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain builds a chain from transform names. Name transforms run before
// value transforms; relative order within each kind is preserved.
func (r *Registry) Chain(names []string, prefix string) (*Chain, error) {
	c := &Chain{prefix: prefix}
	for _, name := range names {
		t, ok := r.transforms[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownTransform, name, strings.Join(r.Names(), ", "))
		}
		switch t.Kind {
		case KindName:
			c.names = append(c.names, t)
		case KindValue:
			c.values = append(c.values, t)
		}
	}
	return c, nil
}

// GroupChain builds a chain from a registered group.
func (r *Registry) GroupChain(group, prefix string) (*Chain, error) {
	members, ok := r.Group(group)
	if !ok {
		return nil, fmt.Errorf("%w: group %s", ErrUnknownTransform, group)
	}
	return r.Chain(members, prefix)
}

// Chain is an ordered set of transforms bound to an optional name prefix.
type Chain struct {
	names  []Transform
	values []Transform
	prefix string
}

// Name returns the canonical emitted name for a token path, without the
// leading "--". It is the only naming function: direct emission and alias
// targets both go through it. Name transforms are reapplied until the name
// stops changing.
func (c *Chain) Name(path []string) string {
	name := strings.Join(path, pathSeparator)
	for range maxNameIterations {
		next := name
		for _, t := range c.names {
			next = t.Rename(next)
		}
		if next == name {
			break
		}
		name = next
	}
	if c.prefix != "" {
		return c.prefix + "-" + name
	}
	return name
}

// Var returns the CSS var() reference to the token at path.
func (c *Chain) Var(path []string) string {
	return "var(--" + c.Name(path) + ")"
}

// Value applies the value transforms in order.
func (c *Chain) Value(value any) (any, error) {
	var err error
	for _, t := range c.values {
		value, err = t.Convert(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
	}
	return value, nil
}
