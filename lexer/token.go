// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lexer

import "fmt"

// Kind is the lexical class of a Token.
type Kind byte

// Constants defining the valid Kind values. The lexer itself only emits Char,
// Zero, OneNine, and End. Escape and Hex are assigned by the parser when a
// grammar position calls for them.
const (
	Invalid Kind = iota // invalid token
	Char                // any other printable character, including whitespace
	Zero                // the digit "0"
	OneNine             // a digit "1" through "9"
	Escape              // a character following "\" in a string
	Hex                 // a hexadecimal digit in a "\u" escape
	End                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	Char:    "character",
	Zero:    "digit 0",
	OneNine: "digit 1-9",
	Escape:  "escape character",
	Hex:     "hex digit",
	End:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsDigit reports whether k is one of the digit classes.
func (k Kind) IsDigit() bool { return k == Zero || k == OneNine }

// A Token is a single lexical token: its class, the character it was scanned
// from, and where it occurred. The End token has no literal.
type Token struct {
	Kind Kind
	Lit  rune
	Loc  Location
}

// As returns a copy of t with its kind replaced by k.
func (t Token) As(k Kind) Token { t.Kind = k; return t }

func (t Token) String() string {
	if t.Kind == End {
		return t.Kind.String()
	}
	return fmt.Sprintf("%q", t.Lit)
}
