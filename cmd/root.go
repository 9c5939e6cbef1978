/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tessera.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tessera/cmd/build"
	"bennypowers.dev/tessera/cmd/cells"
	"bennypowers.dev/tessera/cmd/mcp"
	"bennypowers.dev/tessera/cmd/validate"
	"bennypowers.dev/tessera/cmd/version"
	"bennypowers.dev/tessera/internal/cli"
	"bennypowers.dev/tessera/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tessera",
	Short: "Build design token themes",
	Long: `tessera reads design token sources (primitives, themes, brands and
breakpoints), resolves aliases across files, and writes CSS custom
properties and typed TypeScript objects for every brand, theme and
breakpoint combination.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetLevel(viper.GetString(cli.KeyLogLevel))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(cli.KeyRoot, ".", "Project root containing .config/tessera.*")
	flags.StringP(cli.KeyTokens, "t", "", "Token sources directory (default from config, or tokens)")
	flags.StringP(cli.KeyOut, "o", "", "Output directory (default from config, or src/themes)")
	flags.StringP(cli.KeyPrefix, "p", "", "CSS variable prefix")
	flags.String(cli.KeyLogLevel, "warn", "Log level (debug, info, warn, error)")

	for _, key := range []string{cli.KeyRoot, cli.KeyTokens, cli.KeyOut, cli.KeyPrefix, cli.KeyLogLevel} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("TESSERA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(cells.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
}
