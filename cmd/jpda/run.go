// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/jpda"
	"github.com/creachadair/jpda/ast"
	"github.com/creachadair/jpda/ast/cursor"
	"github.com/creachadair/jpda/internal/builtin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tailscale/hujson"
)

func runParse(cmd *cobra.Command, v *viper.Viper, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), v)

	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	src, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	if name == "-" {
		name = "standard input"
	}

	if v.GetBool("jwcc") {
		std, err := hujson.Standardize(src)
		if err != nil {
			return fmt.Errorf("standardizing %s: %w", name, err)
		}
		src = std
	}

	var val ast.Value
	if v.GetBool("builtin") {
		log.Info("decoding with encoding/json", "input", name, "bytes", len(src))
		val, err = builtin.DecodeBytes(src)
	} else {
		val, err = (&jpda.Config{Logger: log}).ParseBytes(src)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	if p := v.GetString("path"); p != "" {
		c := cursor.New(val).DownPath(p)
		if err := c.Err(); err != nil {
			return fmt.Errorf("path %q: %w", p, err)
		}
		val = c.Value()
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

// newLogger returns a text logger writing to w. The level is warn, or info if
// verbose is set, or debug if debug is set.
func newLogger(w io.Writer, v *viper.Viper) *slog.Logger {
	level := slog.LevelWarn
	if v.GetBool("debug") {
		level = slog.LevelDebug
	} else if v.GetBool("verbose") {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}
