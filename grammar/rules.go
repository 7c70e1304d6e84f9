// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package grammar

import (
	"fmt"

	"github.com/creachadair/jpda/lexer"
)

// RuleID identifies a production in the rule set.
type RuleID byte

// Constants defining the productions of the grammar.
// Reject is reserved: a table entry mapping to Reject blocks the kind-only
// fallback for that exact lookahead.
const (
	Reject RuleID = iota
	Empty
	ValueSpace
	ObjectOpen
	ObjectEmpty
	ObjectMembers
	MemberPair
	MembersMore
	ArrayOpen
	ArrayEmpty
	ArrayElements
	ElementsMore
	StringOpen
	CharPlain
	CharEscape
	EscapeSimple
	EscapeUnicode
	NumberOpen
	IntegerNeg
	IntegerZero
	DigitZero
	DigitOneNine
	FractionDot
	ExponentLower
	ExponentUpper
	SignPlus
	SignMinus
	LiteralTrue
	LiteralFalse
	LiteralNull
	SpaceChar

	numRules // must be last
)

var (
	digit0 = Terminal{Kind: lexer.Zero}
	digit1 = Terminal{Kind: lexer.OneNine}
	hex    = Terminal{Kind: lexer.Hex}

	ws = Whitespace
)

func begin(k ValueKind) Action  { return Action{Op: Begin, Kind: k} }
func finish(k ValueKind) Action { return Action{Op: Finish, Kind: k} }

// rules are the right-hand sides of each production, leftmost first.
var rules = [numRules][]Symbol{
	Reject: nil,
	Empty:  {},

	ValueSpace: {ws, Value},

	ObjectOpen:    {Char('{'), begin(ObjectValue), ws, ObjectBody},
	ObjectEmpty:   {Char('}'), finish(ObjectValue)},
	ObjectMembers: {Member, MembersTail, Char('}'), finish(ObjectValue)},
	MemberPair:    {String, ws, Char(':'), Value, ws},
	MembersMore:   {Char(','), ws, Member, MembersTail},

	ArrayOpen:     {Char('['), begin(ArrayValue), ws, ArrayBody},
	ArrayEmpty:    {Char(']'), finish(ArrayValue)},
	ArrayElements: {Value, ws, ElementsTail, Char(']'), finish(ArrayValue)},
	ElementsMore:  {Char(','), Value, ws, ElementsTail},

	StringOpen:    {Char('"'), begin(StringValue), Chars, finish(StringValue), Char('"')},
	CharPlain:     {Terminal{Kind: lexer.Char}, Chars},
	CharEscape:    {Char('\\'), Escape, Chars},
	EscapeSimple:  {Terminal{Kind: lexer.Escape}},
	EscapeUnicode: {Terminal{Kind: lexer.Escape, Lit: 'u'}, hex, hex, hex, hex},

	NumberOpen:    {begin(NumberValue), Integer, Fraction, Exponent, finish(NumberValue)},
	IntegerNeg:    {Char('-'), IntDigits},
	IntegerZero:   {digit0},
	DigitZero:     {digit0, Digits},
	DigitOneNine:  {digit1, Digits},
	FractionDot:   {Char('.'), SomeDigits},
	ExponentLower: {Char('e'), Sign, SomeDigits},
	ExponentUpper: {Char('E'), Sign, SomeDigits},
	SignPlus:      {Char('+')},
	SignMinus:     {Char('-')},

	LiteralTrue:  {Char('t'), Char('r'), Char('u'), Char('e'), begin(TrueValue)},
	LiteralFalse: {Char('f'), Char('a'), Char('l'), Char('s'), Char('e'), begin(FalseValue)},
	LiteralNull:  {Char('n'), Char('u'), Char('l'), Char('l'), begin(NullValue)},

	SpaceChar: {Terminal{Kind: lexer.Char}, ws},
}

var ruleStr = [numRules]string{
	Reject:        "reject",
	Empty:         "empty",
	ValueSpace:    "value-space",
	ObjectOpen:    "object-open",
	ObjectEmpty:   "object-empty",
	ObjectMembers: "object-members",
	MemberPair:    "member",
	MembersMore:   "members-more",
	ArrayOpen:     "array-open",
	ArrayEmpty:    "array-empty",
	ArrayElements: "array-elements",
	ElementsMore:  "elements-more",
	StringOpen:    "string-open",
	CharPlain:     "char",
	CharEscape:    "char-escape",
	EscapeSimple:  "escape",
	EscapeUnicode: "escape-unicode",
	NumberOpen:    "number",
	IntegerNeg:    "integer-neg",
	IntegerZero:   "integer-zero",
	DigitZero:     "digit-zero",
	DigitOneNine:  "digit-one-nine",
	FractionDot:   "fraction",
	ExponentLower: "exponent-e",
	ExponentUpper: "exponent-E",
	SignPlus:      "sign-plus",
	SignMinus:     "sign-minus",
	LiteralTrue:   "true",
	LiteralFalse:  "false",
	LiteralNull:   "null",
	SpaceChar:     "space",
}

func (r RuleID) String() string {
	if r < numRules {
		return ruleStr[r]
	}
	return fmt.Sprintf("rule(%d)", byte(r))
}

// RHS returns the right-hand side of rule r, leftmost symbol first.  The
// returned slice is shared and must not be modified.  RHS returns nil for an
// unknown rule.
func RHS(r RuleID) []Symbol {
	if r >= numRules {
		return nil
	}
	return rules[r]
}

// Start returns a fresh symbol stack for a new parse. The top of the stack is
// the last element.
func Start() []Symbol {
	return []Symbol{Terminal{Kind: lexer.End}, Whitespace, Value}
}
