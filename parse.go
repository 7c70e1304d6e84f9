// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpda

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/creachadair/jpda/ast"
	"github.com/creachadair/jpda/lexer"
)

// Config carries settings for a parser.  A nil *Config is ready for use and
// provides default settings.
type Config struct {
	// If set, each step of the automaton is logged at debug level, and the
	// acceptance of a value at info level.
	Logger *slog.Logger
}

// Parse parses a single JSON value from text. The entire input must be
// consumed, and only whitespace may follow the value.
//
// If the input contains a character that is not permitted in JSON, the error
// has concrete type *LexError. An invalid escape sequence in a string is
// reported as an *EscapeError. Any other violation of the grammar is reported
// as a *SyntaxError.
func Parse(text string) (ast.Value, error) { return (*Config)(nil).Parse(text) }

// ParseBytes parses a single JSON value from data, as Parse.
func ParseBytes(data []byte) (ast.Value, error) { return (*Config)(nil).ParseBytes(data) }

// ParseReader parses a single JSON value from the contents of r, as Parse.
func ParseReader(r io.Reader) (ast.Value, error) { return (*Config)(nil).ParseReader(r) }

// Parse parses a single JSON value from text using the settings from c.
func (c *Config) Parse(text string) (ast.Value, error) {
	return c.ParseReader(strings.NewReader(text))
}

// ParseBytes parses a single JSON value from data using the settings from c.
func (c *Config) ParseBytes(data []byte) (ast.Value, error) {
	return c.ParseReader(bytes.NewReader(data))
}

// ParseReader parses a single JSON value from the contents of r using the
// settings from c.
func (c *Config) ParseReader(r io.Reader) (ast.Value, error) {
	toks, err := lexer.Tokens(r)
	if err != nil {
		return nil, err
	}
	return newAutomaton(toks, c.logger()).run()
}

func (c *Config) logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.Logger
}
