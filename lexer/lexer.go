// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package lexer implements the character-level tokenizer for the JSON
// pushdown parser.
//
// The lexer assigns as little meaning as possible: every input character
// becomes one token. Digits are tagged as Zero or OneNine, and everything
// else, including whitespace and punctuation, is a Char carrying its literal.
// The grammar decides what each character means in context.
//
//	lx := lexer.New(input)
//	for tok, err := range lx.All() {
//	   if err != nil {
//	      log.Fatalf("Lexing failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// The sequence always ends with exactly one End token, even for empty input.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// A Lexer reads tokens from an input stream.  Each call to Next advances the
// lexer to the next token, or reports an error.
type Lexer struct {
	r    *bufio.Reader
	tok  Token
	err  error
	done bool // the End token has been delivered

	pos, end    int // start and end offsets of the current token
	line, col   int // position of the next rune (0-based)
	pline, pcol int // position of the current token (0-based)
}

// New constructs a new lexer that consumes input from r.
func New(r io.Reader) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{r: br}
}

// Next advances l to the next token of the input, or reports an error.  After
// the End token has been delivered, Next returns io.EOF.
func (l *Lexer) Next() error {
	if l.err != nil {
		return l.err
	} else if l.done {
		return io.EOF
	}
	l.pos, l.pline, l.pcol = l.end, l.line, l.col

	ch, nb, err := l.r.ReadRune()
	if err == io.EOF {
		l.done = true
		l.tok = Token{Kind: End, Loc: l.location()}
		return nil
	} else if err != nil {
		return l.setErr(err)
	}
	l.end += nb
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col += nb
	}

	switch {
	case ch == utf8.RuneError && nb == 1:
		return l.setErr(&LexError{Location: l.location(), Rune: ch, Message: "invalid UTF-8 encoding"})
	case ch == '0':
		l.tok = Token{Kind: Zero, Lit: ch, Loc: l.location()}
	case '1' <= ch && ch <= '9':
		l.tok = Token{Kind: OneNine, Lit: ch, Loc: l.location()}
	case isSpace(ch) || ch >= ' ':
		l.tok = Token{Kind: Char, Lit: ch, Loc: l.location()}
	default:
		return l.setErr(&LexError{Location: l.location(), Rune: ch, Message: "control character"})
	}
	return nil
}

// Token returns the current token.
func (l *Lexer) Token() Token { return l.tok }

// Err returns the error that stopped the lexer, or nil.
func (l *Lexer) Err() error { return l.err }

// All returns a sequence of the remaining tokens of the input. The sequence
// ends after the End token, or after the first error, which is yielded with a
// zero Token. The sequence cannot be restarted.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			if err := l.Next(); err == io.EOF {
				return
			} else if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(l.tok, nil) {
				return
			}
		}
	}
}

// Tokens reads all of r and returns its complete token sequence, ending with
// an End token.
func Tokens(r io.Reader) ([]Token, error) {
	var out []Token
	for tok, err := range New(r).All() {
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// TokensString is a convenience wrapper for Tokens on a string.
func TokensString(s string) ([]Token, error) { return Tokens(strings.NewReader(s)) }

func (l *Lexer) location() Location {
	return Location{
		Span:  Span{Pos: l.pos, End: l.end},
		First: LineCol{Line: l.pline + 1, Column: l.pcol},
		Last:  LineCol{Line: l.line + 1, Column: l.col},
	}
}

func (l *Lexer) setErr(err error) error {
	l.err = err
	return err
}

// LexError is the concrete type of errors reported for characters that may
// not appear anywhere in JSON text.
type LexError struct {
	Location Location
	Rune     rune
	Message  string
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: %s %U (offset %d)", e.Location.First, e.Message, e.Rune, e.Location.Pos)
}

// IsSpace reports whether ch is one of the four JSON whitespace characters.
func IsSpace(ch rune) bool { return isSpace(ch) }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
