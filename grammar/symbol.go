// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package grammar defines the predictive parsing table and production rules
// for JSON, as consumed by the pushdown parser in package jpda.
//
// A production is a sequence of Symbols. A Symbol is exactly one of:
//
//	Terminal     matched against one input token
//	NonTerminal  expanded through the Table into a production
//	Action       a value-construction effect that consumes no input
//
// The table and rule set are built once when the package is initialized and
// are never modified, so they may be shared by any number of concurrent
// parses.
package grammar

import (
	"fmt"

	"github.com/creachadair/jpda/lexer"
)

// A Symbol is an element of a production: a Terminal, a NonTerminal, or an
// Action. No other types implement Symbol.
type Symbol interface {
	String() string

	isSymbol()
}

// A Terminal matches a single token. If Lit is zero, any token of the given
// Kind matches; otherwise the token must also carry exactly that literal.
type Terminal struct {
	Kind lexer.Kind
	Lit  rune
}

func (Terminal) isSymbol() {}

// Pinned reports whether t requires a specific literal.
func (t Terminal) Pinned() bool { return t.Lit != 0 }

func (t Terminal) String() string {
	if t.Pinned() {
		return fmt.Sprintf("%q", t.Lit)
	}
	return t.Kind.String()
}

// Char returns a Terminal pinned to the character ch.
func Char(ch rune) Terminal { return Terminal{Kind: lexer.Char, Lit: ch} }

// A NonTerminal is a grammar symbol expanded via the Table.
type NonTerminal byte

// Constants defining the nonterminals of the grammar.
const (
	Value        NonTerminal = iota + 1 // any JSON value, with leading whitespace
	ObjectBody                          // members and "}" after "{"
	Member                              // "key": value
	MembersTail                         // more members after ","
	ArrayBody                           // elements and "]" after "["
	ElementsTail                        // more elements after ","
	String                              // a quoted string
	Chars                               // the body of a string
	Escape                              // the remainder of a \-escape
	Integer                             // the integer part of a number
	IntDigits                           // an integer without sign
	Digits                              // zero or more digits
	SomeDigits                          // one or more digits
	Fraction                            // an optional fraction
	Exponent                            // an optional exponent
	Sign                                // an optional exponent sign
	Whitespace                          // zero or more whitespace characters
)

var ntStr = [...]string{
	Value:        "value",
	ObjectBody:   "object body",
	Member:       "object member",
	MembersTail:  "members",
	ArrayBody:    "array body",
	ElementsTail: "elements",
	String:       "string",
	Chars:        "string body",
	Escape:       "escape sequence",
	Integer:      "integer",
	IntDigits:    "integer digits",
	Digits:       "digits",
	SomeDigits:   "digits",
	Fraction:     "fraction",
	Exponent:     "exponent",
	Sign:         "exponent sign",
	Whitespace:   "whitespace",
}

func (NonTerminal) isSymbol() {}

func (n NonTerminal) String() string {
	if int(n) < len(ntStr) && ntStr[n] != "" {
		return ntStr[n]
	}
	return fmt.Sprintf("nonterminal(%d)", byte(n))
}

// ActionOp says whether an Action begins or finishes a value.
type ActionOp byte

// Constants defining the valid ActionOp values.
const (
	Begin  ActionOp = iota + 1 // push a new accumulator or literal value
	Finish                     // pop and finalize the top accumulator
)

func (op ActionOp) String() string {
	switch op {
	case Begin:
		return "begin"
	case Finish:
		return "finish"
	}
	return "invalid"
}

// ValueKind identifies the kind of value an Action constructs.
type ValueKind byte

// Constants defining the valid ValueKind values.
const (
	ObjectValue ValueKind = iota + 1
	ArrayValue
	StringValue
	NumberValue
	TrueValue
	FalseValue
	NullValue
)

var kindStr = [...]string{
	ObjectValue: "object",
	ArrayValue:  "array",
	StringValue: "string",
	NumberValue: "number",
	TrueValue:   "true",
	FalseValue:  "false",
	NullValue:   "null",
}

func (k ValueKind) String() string {
	if int(k) < len(kindStr) && kindStr[k] != "" {
		return kindStr[k]
	}
	return "invalid"
}

// IsLiteral reports whether k is one of the constants true, false, or null,
// which are constructed whole rather than accumulated.
func (k ValueKind) IsLiteral() bool {
	return k == TrueValue || k == FalseValue || k == NullValue
}

// An Action is a value-construction marker embedded in a production. It is
// never compared against input.
type Action struct {
	Op   ActionOp
	Kind ValueKind
}

func (Action) isSymbol() {}

func (a Action) String() string { return fmt.Sprintf("<%s %s>", a.Op, a.Kind) }
