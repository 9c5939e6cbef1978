/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tessera/convert/formatter"
)

func TestForTheme(t *testing.T) {
	assert.Equal(t, ":root", formatter.ForTheme("light", "light").Key())
	assert.Equal(t, ".dark", formatter.ForTheme("dark", "light").Key())
}

func TestForBreakpoint(t *testing.T) {
	widths := formatter.DefaultBreakpointWidths

	base := formatter.ForBreakpoint("sm", "sm", widths)
	assert.Equal(t, formatter.Root(), base)

	md := formatter.ForBreakpoint("md", "sm", widths)
	assert.Equal(t, ":root", md.Rule)
	assert.Equal(t, "(min-width: 768px)", md.Media)
	assert.Equal(t, "@media (min-width: 768px)", md.Key())

	unknown := formatter.ForBreakpoint("xxl", "sm", widths)
	assert.Equal(t, "(min-width: var(--breakpoint-xxl))", unknown.Media)
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "", formatter.FormatHeader("  ", formatter.CommentBlock))
	assert.Equal(t, "/**\n * a\n * b\n */", formatter.FormatHeader("a\nb", formatter.CommentBlock))
	assert.Equal(t, "// a\n//\n// b", formatter.FormatHeader("a\n\nb", formatter.CommentLine))
	assert.Equal(t, "/**\n * x * /\n */", formatter.FormatHeader("x */", formatter.CommentBlock))
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"#fff", "#fff"},
		{float64(0), "0"},
		{1.25, "1.25"},
		{42, "42"},
		{true, "true"},
		{[]any{"Inter", float64(1)}, "Inter, 1"},
	}
	for _, tt := range tests {
		got, err := formatter.ValueString(tt.value)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := formatter.ValueString(map[string]any{})
	assert.ErrorIs(t, err, formatter.ErrUnsupportedValue)
	_, err = formatter.ValueString(nil)
	assert.ErrorIs(t, err, formatter.ErrUnsupportedValue)
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  1px\n\tsolid   red ", "1px solid red"},
		{`"Inter  Display",   sans-serif`, `"Inter  Display", sans-serif`},
		{`'a  b'   "c \"  d"`, `'a  b' "c \"  d"`},
		{`"it's  fine"  x`, `"it's  fine" x`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatter.CollapseSpace(tt.in), tt.in)
	}
}
