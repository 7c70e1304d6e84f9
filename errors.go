// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpda

import (
	"errors"
	"fmt"

	"github.com/creachadair/jpda/lexer"
)

var (
	// ErrUnexpectedTerminal is wrapped by a *SyntaxError reporting that the
	// current token does not match the terminal the grammar requires.
	ErrUnexpectedTerminal = errors.New("unexpected token")

	// ErrNoProduction is wrapped by a *SyntaxError reporting that the grammar
	// has no production for the current token.
	ErrNoProduction = errors.New("no production for lookahead")
)

// LexError is the concrete type of errors reported for characters that may
// not appear in JSON text at all.
type LexError = lexer.LexError

// SyntaxError is the concrete type of errors reported when the input does not
// conform to the grammar.
type SyntaxError struct {
	Location lexer.LineCol
	Offset   int    // byte offset of the offending token
	Expected string // what the grammar called for
	Got      string // the offending token
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// EscapeError is the concrete type of errors reported for an invalid escape
// sequence in a string.
type EscapeError struct {
	Location lexer.LineCol
	Offset   int // byte offset of the offending token
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *EscapeError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *EscapeError) Unwrap() error { return e.err }
