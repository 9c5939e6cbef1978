/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/transform"
)

func cssChain(t *testing.T, prefix string) *transform.Chain {
	t.Helper()
	chain, err := transform.NewRegistry().GroupChain(transform.GroupCSS, prefix)
	require.NoError(t, err)
	return chain
}

func TestChainName(t *testing.T) {
	chain := cssChain(t, "")

	tests := []struct {
		path []string
		want string
	}{
		{[]string{"color", "grey", "100"}, "color-grey-100"},
		{[]string{"Color", "Brand", "Primary"}, "color-brand-primary"},
		{[]string{"size", "100%"}, "size-100"},
		{[]string{"space", "default"}, "space"},
		{[]string{"space", "DEFAULT"}, "space"},
		{[]string{"x", "default%"}, "x"},
		{[]string{"x%", "default"}, "x"},
		{[]string{"x", "default", "default"}, "x"},
		{[]string{"Größe", "ÄÖÜ"}, "größe-äöü"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.path, "."), func(t *testing.T) {
			assert.Equal(t, tt.want, chain.Name(tt.path))
		})
	}
}

func TestChainNameIsFixedPoint(t *testing.T) {
	chain := cssChain(t, "")
	for _, path := range [][]string{
		{"a", "default%"},
		{"a%", "default"},
		{"Size", "50%", "Default"},
	} {
		once := chain.Name(path)
		assert.Equal(t, once, chain.Name([]string{once}), "name of %v is not stable", path)
	}
}

func TestChainPrefix(t *testing.T) {
	chain := cssChain(t, "rh")

	assert.Equal(t, "rh-color-grey-100", chain.Name([]string{"color", "grey", "100"}))
	assert.Equal(t, "var(--rh-color-grey-100)", chain.Var([]string{"color", "grey", "100"}))
}

func TestValuePx(t *testing.T) {
	chain := cssChain(t, "")

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"zero float", float64(0), float64(0)},
		{"zero int", 0, 0},
		{"float", float64(8), "8px"},
		{"int", 16, "16px"},
		{"fraction", 0.5, "0.5px"},
		{"percent string", "100%", "100%"},
		{"string", "1rem", "1rem"},
		{"bool", true, true},
		{"list", []any{float64(0), float64(4), "auto"}, []any{float64(0), "4px", "auto"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chain.Value(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueColorHex(t *testing.T) {
	chain, err := transform.NewRegistry().Chain([]string{transform.ValueColorHex}, "")
	require.NoError(t, err)

	tests := []struct {
		value any
		want  any
	}{
		{"#FFFFFF", "#ffffff"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"red", "#ff0000"},
		{"{color.brand}", "{color.brand}"},
		{"var(--x)", "var(--x)"},
		{"1px solid", "1px solid"},
		{float64(3), float64(3)},
	}

	for _, tt := range tests {
		got, err := chain.Value(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}
}

func TestChainOrdersNamesBeforeValues(t *testing.T) {
	reg := transform.NewRegistry()
	chain, err := reg.Chain([]string{transform.ValuePx, transform.NameKebab}, "")
	require.NoError(t, err)

	assert.Equal(t, "a-b", chain.Name([]string{"a", "b"}))
	got, err := chain.Value(float64(2))
	require.NoError(t, err)
	assert.Equal(t, "2px", got)
}

func TestRegistry(t *testing.T) {
	reg := transform.NewRegistry()

	_, err := reg.Chain([]string{"name/camel"}, "")
	assert.ErrorIs(t, err, transform.ErrUnknownTransform)
	assert.Contains(t, err.Error(), "valid: name/kebab, name/lower")

	_, err = reg.GroupChain("android", "")
	assert.ErrorIs(t, err, transform.ErrUnknownTransform)

	err = reg.Register(transform.Transform{Name: transform.NameKebab, Kind: transform.KindName, Rename: strings.ToUpper})
	assert.ErrorIs(t, err, transform.ErrDuplicateTransform)

	err = reg.Register(transform.Transform{Name: "name/upper", Kind: transform.KindName})
	assert.Error(t, err)

	require.NoError(t, reg.Register(transform.Transform{Name: "name/upper", Kind: transform.KindName, Rename: strings.ToUpper}))
	require.NoError(t, reg.RegisterGroup("shout", []string{transform.NameKebab, "name/upper"}))

	chain, err := reg.GroupChain("shout", "")
	require.NoError(t, err)
	assert.Equal(t, "A-B", chain.Name([]string{"a", "b"}))

	assert.ErrorIs(t, reg.RegisterGroup("bad", []string{"nope"}), transform.ErrUnknownTransform)

	members, ok := reg.Group(transform.GroupTS)
	require.True(t, ok)
	assert.Equal(t, []string{
		transform.NameKebab,
		transform.NameLower,
		transform.NameStripPercent,
		transform.NameStripDefault,
		transform.ValuePx,
	}, members)
	assert.Contains(t, reg.Names(), transform.ValueColorHex)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := transform.NewRegistry()
	b := transform.NewRegistry()

	require.NoError(t, a.Register(transform.Transform{Name: "name/upper", Kind: transform.KindName, Rename: strings.ToUpper}))
	_, err := b.Chain([]string{"name/upper"}, "")
	assert.ErrorIs(t, err, transform.ErrUnknownTransform)
}
