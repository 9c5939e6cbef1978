/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/convert/formatter"
	"bennypowers.dev/tessera/convert/formatter/css"
	"bennypowers.dev/tessera/testutil"
	"bennypowers.dev/tessera/token"
)

func resolved() []*token.Token {
	return []*token.Token{
		{Name: "color-grey-100", Path: []string{"color", "grey", "100"}, Value: "#111111", FilePath: "/t/1.primitives.value.json"},
		{Name: "color-surface", Path: []string{"color", "surface", "default"}, Value: "var(--color-grey-100)", FilePath: "/t/2.theme.light.json"},
		{Name: "space-0", Path: []string{"space", "0"}, Value: float64(0), FilePath: "/t/1.primitives.value.json"},
		{Name: "space-2", Path: []string{"space", "2"}, Value: "8px", FilePath: "/t/1.primitives.value.json"},
		{Name: "font-family-sans", Path: []string{"font", "family", "sans"}, Value: []any{"Inter", "sans-serif"}, FilePath: "/t/1.primitives.value.json"},
	}
}

func TestFormat_Root(t *testing.T) {
	out, err := css.New().Format(resolved(), formatter.Options{
		Header:   "Do not edit directly, this file was auto-generated.",
		Selector: formatter.Root(),
	})
	require.NoError(t, err)
	testutil.AssertGolden(t, "golden/root.css", out)
}

func TestFormat_ThemeFiltersPrimitives(t *testing.T) {
	out, err := css.New().Format(resolved(), formatter.Options{
		Selector: formatter.ForTheme("dark", "light"),
		Filter: func(tok *token.Token) bool {
			return tok.FilePath != "/t/1.primitives.value.json"
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ".dark {\n  --color-surface: var(--color-grey-100);\n}\n", string(out))
}

func TestFormat_Media(t *testing.T) {
	tokens := []*token.Token{
		{Name: "font-size-body", Path: []string{"font", "size", "body"}, Value: "18px"},
	}
	out, err := css.New().Format(tokens, formatter.Options{
		Header:   "Generated",
		Selector: formatter.ForBreakpoint("md", "sm", formatter.DefaultBreakpointWidths),
	})
	require.NoError(t, err)
	testutil.AssertGolden(t, "golden/media.css", out)
}

func TestFormat_Baseline(t *testing.T) {
	tokens := []*token.Token{
		{Name: "font-size-body", Path: []string{"font", "size", "body"}, Value: "16px"},
	}
	out, err := css.New().Format(tokens, formatter.Options{
		Selector: formatter.ForBreakpoint("sm", "sm", formatter.DefaultBreakpointWidths),
	})
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --font-size-body: 16px;\n}\n", string(out))
}

func TestFormat_EmptyOmitsBlock(t *testing.T) {
	out, err := css.New().Format(nil, formatter.Options{
		Header:   "Generated",
		Selector: formatter.ForTheme("dark", "light"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/**\n * Generated\n */\n", string(out))
	assert.NotContains(t, string(out), ".dark")

	out, err = css.New().Format(nil, formatter.Options{Selector: formatter.Root()})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormat_UnsupportedValue(t *testing.T) {
	tokens := []*token.Token{
		{Name: "shadow", Path: []string{"shadow"}, Value: map[string]any{"x": 1}},
	}
	_, err := css.New().Format(tokens, formatter.Options{Selector: formatter.Root()})
	assert.ErrorIs(t, err, formatter.ErrUnsupportedValue)
}

func TestFormat_Pure(t *testing.T) {
	opts := formatter.Options{Header: "h", Selector: formatter.Root()}
	first, err := css.New().Format(resolved(), opts)
	require.NoError(t, err)
	second, err := css.New().Format(resolved(), opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormat_QuotedWhitespaceKept(t *testing.T) {
	tokens := []*token.Token{
		{Name: "font-family", Path: []string{"font", "family"}, Value: "\"Inter  Display\",   sans-serif"},
		{Name: "content", Path: []string{"content"}, Value: "'a  b'"},
	}
	out, err := css.New().Format(tokens, formatter.Options{Selector: formatter.Root()})
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --font-family: \"Inter  Display\", sans-serif;\n  --content: 'a  b';\n}\n", string(out))
}
