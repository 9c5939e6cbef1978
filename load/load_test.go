/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/load"
	"bennypowers.dev/tessera/source"
	"bennypowers.dev/tessera/testutil"
)

func TestLoad_LastWriteWins(t *testing.T) {
	mfs := testutil.NewMapFS(t, map[string]string{
		"/t/1.primitives.value.json": `{"color": {"grey": {"100": {"value": "#111111"}}, "brand": {"value": "#0000ff"}}}`,
		"/t/2.theme.dark.json":       `{"color": {"brand": {"value": "{color.grey.100}"}, "text": {"value": "#ffffff"}}}`,
	})

	dict, err := load.Load(t.Context(), []string{"/t/1.primitives.value.json", "/t/2.theme.dark.json"}, load.Options{FS: mfs})
	require.NoError(t, err)

	assert.Equal(t, 3, dict.Len())

	var paths []string
	for _, tok := range dict.Tokens() {
		paths = append(paths, tok.DotPath())
	}
	assert.Equal(t, []string{"color.brand", "color.grey.100", "color.text"}, paths)

	brand, ok := dict.Get("color.brand")
	require.True(t, ok)
	assert.Equal(t, "{color.grey.100}", brand.Value)
	assert.Equal(t, "/t/2.theme.dark.json", brand.FilePath)
}

func TestLoad_MissingSource(t *testing.T) {
	mfs := testutil.NewMapFS(t, map[string]string{
		"/t/1.primitives.value.json": `{}`,
	})

	_, err := load.Load(t.Context(), []string{"/t/1.primitives.value.json", "/t/3.brand.x.json"}, load.Options{FS: mfs})
	require.ErrorIs(t, err, source.ErrMissingSource)
	assert.Contains(t, err.Error(), "/t/3.brand.x.json")
}

func TestLoad_ParseError(t *testing.T) {
	mfs := testutil.NewMapFS(t, map[string]string{
		"/t/1.primitives.value.json": `{"color": `,
	})

	_, err := load.Load(t.Context(), []string{"/t/1.primitives.value.json"}, load.Options{FS: mfs})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse /t/1.primitives.value.json")
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := load.Load(ctx, []string{"/t/a.json"}, load.Options{FS: testutil.NewMapFS(t, nil)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_ReadsFresh(t *testing.T) {
	mfs := testutil.NewMapFS(t, map[string]string{
		"/t/1.primitives.value.json": `{"a": {"value": 1}}`,
	})
	paths := []string{"/t/1.primitives.value.json"}

	first, err := load.Load(t.Context(), paths, load.Options{FS: mfs})
	require.NoError(t, err)

	mfs.AddFile("/t/1.primitives.value.json", `{"a": {"value": 2}}`, 0o644)
	second, err := load.Load(t.Context(), paths, load.Options{FS: mfs})
	require.NoError(t, err)

	a1, _ := first.Get("a")
	a2, _ := second.Get("a")
	assert.Equal(t, float64(1), a1.Value)
	assert.Equal(t, float64(2), a2.Value)
}
