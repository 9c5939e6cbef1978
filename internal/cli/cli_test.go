/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cli_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/config"
	"bennypowers.dev/tessera/internal/cli"
	"bennypowers.dev/tessera/testutil"
)

func TestOpen_Overrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	mfs := testutil.NewMapFS(t, map[string]string{
		"/p/.config/tessera.yaml": "tokensDir: design\nprefix: ds\n",
	})
	viper.Set(cli.KeyRoot, "/p")
	viper.Set(cli.KeyOut, "dist")

	p, err := cli.Open(mfs)
	require.NoError(t, err)

	assert.Equal(t, "/p", p.Root)
	assert.Equal(t, "design", p.Config.TokensDir)
	assert.Equal(t, "dist", p.Config.OutDir)
	assert.Equal(t, "ds", p.Config.Prefix)
}

func TestOpen_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set(cli.KeyRoot, "/empty")
	p, err := cli.Open(testutil.NewMapFS(t, nil))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTokensDir, p.Config.TokensDir)

	_, err = p.Driver()
	require.NoError(t, err)
}

func TestOpen_InvalidPrefix(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set(cli.KeyRoot, "/empty")
	viper.Set(cli.KeyPrefix, "not a prefix")

	_, err := cli.Open(testutil.NewMapFS(t, nil))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
