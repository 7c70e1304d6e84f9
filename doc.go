// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jpda implements a JSON parser driven by a table-based pushdown
// automaton.
//
// # Parsing
//
// Call Parse, ParseBytes, or ParseReader to parse a single JSON value. Any
// value may appear at the top level, and whitespace is permitted between any
// two tokens. The result is an ast.Value:
//
//	v, err := jpda.Parse(`{"name": "jpda", "tags": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Printf("Got %v", v)
//
// # Operation
//
// The input is first split into character-level tokens by package lexer.
// The parser then runs a loop over a stack of grammar symbols, which
// initially holds the start value, trailing whitespace, and an end marker.
// Each step pops one symbol:
//
//	Symbol       | Effect
//	------------ | ----------------------------------------------------------
//	Terminal     | must match the current token, which is then consumed
//	NonTerminal  | replaced by the production the grammar table selects for
//	             | the current token
//	Action       | begins or finishes a value on the value stack
//
// The grammar does not use recursion, so deeply nested input is limited only
// by available memory. The grammar table is shared by all parsers and is
// never modified, so concurrent parses are safe.
//
// # Errors
//
// A parse either returns a complete value or fails. The concrete type of the
// error says what went wrong:
//
//	Type          | Meaning
//	------------- | ---------------------------------------------------------
//	*LexError     | the input contains a control character or invalid UTF-8
//	*SyntaxError  | a token does not fit the grammar
//	*EscapeError  | a string contains an invalid escape sequence
//
// A *SyntaxError wraps ErrUnexpectedTerminal when a token did not match the
// grammar's expectation, or ErrNoProduction when the grammar had no rule for
// the token at all. Use errors.Is to distinguish them.
//
// # Tracing
//
// Set the Logger field of a Config to record each step of the automaton at
// debug level, and each accepted value at info level:
//
//	cfg := &jpda.Config{Logger: slog.Default()}
//	v, err := cfg.Parse(input)
package jpda
