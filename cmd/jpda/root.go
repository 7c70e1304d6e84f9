// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd constructs the command. Each command has its own viper instance,
// so flags and JPDA_* environment variables are read afresh for each one.
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "jpda [flags] [file]",
		Short: "Parse and print a JSON value",
		Long: `Parse a single JSON value from the named file, or from standard input
if the file is omitted or "-", and print it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, v, args)
		},
	}

	cmd.Flags().Bool("jwcc", false, "Accept JSON with comments and trailing commas")
	cmd.Flags().StringP("path", "p", "", "Print only the value at this slash-separated path")
	cmd.Flags().Bool("builtin", false, "Decode with encoding/json instead of the pushdown parser")
	cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	cmd.Flags().Bool("debug", false, "Debug output (trace each parser step)")

	_ = v.BindPFlag("jwcc", cmd.Flags().Lookup("jwcc"))
	_ = v.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = v.BindPFlag("builtin", cmd.Flags().Lookup("builtin"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = v.BindPFlag("debug", cmd.Flags().Lookup("debug"))

	v.SetEnvPrefix("JPDA")
	v.AutomaticEnv()
	return cmd
}
