/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package postprocess_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/postprocess"
	"bennypowers.dev/tessera/testutil"
)

func process(t *testing.T, a postprocess.Action, path, src string) string {
	t.Helper()
	out, err := a.Process(path, []byte(src))
	require.NoError(t, err)
	return string(out)
}

func TestStripDefaultSuffix(t *testing.T) {
	strip := postprocess.StripDefaultSuffix{}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", "--space-default: 8px;", "--space: 8px;"},
		{"repeated", "--x-default-default: 1;", "--x: 1;"},
		{"spaced colon", "--x-default : 1;", "--x : 1;"},
		{"inner segment kept", "--x-default-y: 1;", "--x-default-y: 1;"},
		{"reference untouched", "--a: var(--b-default);", "--a: var(--b-default);"},
		{"no suffix", "--color-grey-100: #111111;", "--color-grey-100: #111111;"},
		{"inner then suffix", "--x-default-y-default: 1;", "--x-default-y: 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := process(t, strip, "a.css", tt.in)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, process(t, strip, "a.css", once), "not idempotent")
		})
	}
}

func TestFormat_CSSCanonical(t *testing.T) {
	format := postprocess.Format{}

	in := "/**\n * Generated\n */\n:root{--a:  1px   solid red;--b:2px;}\n\n\n.dark {  --c : x ; }"
	want := "/**\n * Generated\n */\n\n:root {\n  --a: 1px solid red;\n  --b: 2px;\n}\n\n.dark {\n  --c: x;\n}\n"

	once := process(t, format, "tokens.css", in)
	assert.Equal(t, want, once)
	assert.Equal(t, once, process(t, format, "tokens.css", once))
}

func TestFormat_CSSMedia(t *testing.T) {
	format := postprocess.Format{}

	in := "@media   (min-width:768px){:root{--font-size-body:18px;}}"
	want := "@media (min-width:768px) {\n  :root {\n    --font-size-body: 18px;\n  }\n}\n"

	once := process(t, format, "md.css", in)
	assert.Equal(t, want, once)
	assert.Equal(t, once, process(t, format, "md.css", once))
}

func TestFormat_CSSQuotedStrings(t *testing.T) {
	format := postprocess.Format{}

	in := ":root{--font-family:  \"Inter  Display\",   sans-serif;--content:'a  b';}"
	want := ":root {\n  --font-family: \"Inter  Display\", sans-serif;\n  --content: 'a  b';\n}\n"

	once := process(t, format, "fonts.css", in)
	assert.Equal(t, want, once)
	assert.Equal(t, once, process(t, format, "fonts.css", once))
}

func TestFormat_CSSEmpty(t *testing.T) {
	assert.Equal(t, "", process(t, postprocess.Format{}, "empty.css", ""))
	assert.Equal(t, "", process(t, postprocess.Format{}, "empty.css", "\n\n"))
}

func TestFormat_TSCanonical(t *testing.T) {
	format := postprocess.Format{}

	in := "// h\nexport const tokens:Record<string,  string> = {':root': {\"a-b\": 'it\\'s', n: 0}};"
	want := "// h\n\nexport const tokens: Record<string, string> = {\n  \":root\": {\n    \"a-b\": \"it's\",\n    \"n\": 0,\n  },\n};\n"

	once := process(t, format, "light.ts", in)
	assert.Equal(t, want, once)
	assert.Equal(t, once, process(t, format, "light.ts", once))
}

func TestFormat_TSEmptyObject(t *testing.T) {
	in := "export const tokens: Record<string, Record<string, string>> = { };"
	want := "export const tokens: Record<string, Record<string, string>> = {};\n"
	assert.Equal(t, want, process(t, postprocess.Format{}, "dark.ts", in))
}

func TestFormat_ParseErrors(t *testing.T) {
	format := postprocess.Format{}

	_, err := format.Process("bad.css", []byte(":root { --a: 1; }}}"))
	assert.ErrorIs(t, err, postprocess.ErrFormat)

	_, err = format.Process("bad.ts", []byte("export const tokens: T = {a: };"))
	assert.ErrorIs(t, err, postprocess.ErrFormat)

	_, err = format.Process("bad.ts", []byte("const x = 1;"))
	assert.ErrorIs(t, err, postprocess.ErrFormat)
}

func TestFormat_OtherExtensions(t *testing.T) {
	assert.Equal(t, "anything {", process(t, postprocess.Format{}, "notes.md", "anything {"))
}

func TestRun(t *testing.T) {
	mfs := testutil.NewMapFS(t, map[string]string{
		"/out/css/a.css": ":root{--space-default:8px;}",
		"/out/css/b.css": "/**\n * h\n */\n\n:root {\n  --x: 1;\n}\n",
	})
	registry := postprocess.NewRegistry()
	actions, err := registry.Actions([]string{postprocess.StripDefaultSuffixName, postprocess.FormatName})
	require.NoError(t, err)

	files := []string{"/out/css/a.css", "/out/css/b.css", "/out/css/missing.css"}
	require.NoError(t, postprocess.Run(t.Context(), mfs, actions, files))

	a, _ := mfs.Content("/out/css/a.css")
	assert.Equal(t, ":root {\n  --space: 8px;\n}\n", a)
	assert.Equal(t, 0, mfs.Writes("/out/css/b.css"), "unchanged file must not be rewritten")
	assert.False(t, mfs.Exists("/out/css/missing.css"))

	require.NoError(t, postprocess.Run(t.Context(), mfs, actions, files))
	again, _ := mfs.Content("/out/css/a.css")
	assert.Equal(t, a, again)
	assert.Equal(t, 2, mfs.Writes("/out/css/a.css"))
}

func TestRun_Error(t *testing.T) {
	mfs := testutil.NewMapFS(t, map[string]string{
		"/out/bad.css": "}}}",
	})
	actions, err := postprocess.NewRegistry().Actions([]string{postprocess.FormatName})
	require.NoError(t, err)

	err = postprocess.Run(t.Context(), mfs, actions, []string{"/out/bad.css"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, postprocess.ErrFormat))
	assert.Contains(t, err.Error(), "format: /out/bad.css")
}

func TestRegistry(t *testing.T) {
	r := postprocess.NewRegistry()
	assert.Equal(t, []string{"format", "strip-default-suffix"}, r.Names())

	_, err := r.Actions([]string{"minify"})
	assert.ErrorIs(t, err, postprocess.ErrUnknownAction)
	assert.Contains(t, err.Error(), "(valid: format, strip-default-suffix)")

	assert.Error(t, r.Register(postprocess.Format{}))
}
