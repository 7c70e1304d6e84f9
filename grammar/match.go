// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package grammar

import (
	"strings"

	"github.com/creachadair/jpda/lexer"
)

// Reclassify returns tok adjusted to the class that the expected symbol calls
// for, if the literal of tok permits it. Otherwise tok is returned unchanged.
//
// The lexer tags digits and nothing else, so context decides the rest:
//
//   - A digit is a plain character where the body of a string is expected.
//   - A character after a backslash is an escape character if it is one of
//     the letters of a simple escape or "u".
//   - A digit or one of the letters a-f, A-F is a hex digit where a "\u"
//     escape expects one.
func Reclassify(want Symbol, tok lexer.Token) lexer.Token {
	switch w := want.(type) {
	case Terminal:
		switch w.Kind {
		case lexer.Char:
			if !w.Pinned() && tok.Kind.IsDigit() {
				return tok.As(lexer.Char)
			}
		case lexer.Escape:
			if tok.Kind == lexer.Char && isEscapeChar(tok.Lit) {
				return tok.As(lexer.Escape)
			}
		case lexer.Hex:
			if (tok.Kind == lexer.Char || tok.Kind.IsDigit()) && isHexDigit(tok.Lit) {
				return tok.As(lexer.Hex)
			}
		}
	case NonTerminal:
		switch w {
		case Chars:
			if tok.Kind.IsDigit() {
				return tok.As(lexer.Char)
			}
		case Escape:
			if tok.Kind == lexer.Char && isEscapeChar(tok.Lit) {
				return tok.As(lexer.Escape)
			}
		}
	}
	return tok
}

// Matches reports whether tok satisfies the terminal want.
// The caller is responsible for reclassifying tok first (see Reclassify).
func Matches(want Terminal, tok lexer.Token) bool {
	return tok.Kind == want.Kind && (!want.Pinned() || tok.Lit == want.Lit)
}

// InEscape reports whether sym occurs only inside a \-escape sequence.
// Errors at such symbols are escape errors rather than plain syntax errors.
func InEscape(sym Symbol) bool {
	switch s := sym.(type) {
	case NonTerminal:
		return s == Escape
	case Terminal:
		return s.Kind == lexer.Escape || s.Kind == lexer.Hex
	}
	return false
}

func isEscapeChar(ch rune) bool { return strings.ContainsRune(`"\/bfnrtu`, ch) }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
