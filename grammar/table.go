// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package grammar

import (
	"slices"

	"github.com/creachadair/jpda/lexer"
)

// A key is a lookahead entry of the table. A zero lit is a kind-only key.
type key struct {
	nt   NonTerminal
	kind lexer.Kind
	lit  rune
}

var table = buildTable()

func buildTable() map[key]RuleID {
	t := make(map[key]RuleID)
	lit := func(nt NonTerminal, chars string, r RuleID) {
		for _, ch := range chars {
			t[key{nt, lexer.Char, ch}] = r
		}
	}
	kind := func(nt NonTerminal, r RuleID, kinds ...lexer.Kind) {
		for _, k := range kinds {
			t[key{nt, k, 0}] = r
		}
	}
	const spaces = " \t\n\r"

	lit(Value, spaces, ValueSpace)
	lit(Value, "{", ObjectOpen)
	lit(Value, "[", ArrayOpen)
	lit(Value, `"`, StringOpen)
	lit(Value, "-", NumberOpen)
	kind(Value, NumberOpen, lexer.Zero, lexer.OneNine)
	lit(Value, "t", LiteralTrue)
	lit(Value, "f", LiteralFalse)
	lit(Value, "n", LiteralNull)

	lit(ObjectBody, "}", ObjectEmpty)
	lit(ObjectBody, `"`, ObjectMembers)
	lit(Member, `"`, MemberPair)
	lit(MembersTail, ",", MembersMore)
	lit(MembersTail, "}", Empty)

	// Whitespace was consumed before the body, so a value here cannot begin
	// with a space.
	lit(ArrayBody, "]", ArrayEmpty)
	lit(ArrayBody, `{["-tfn`, ArrayElements)
	kind(ArrayBody, ArrayElements, lexer.Zero, lexer.OneNine)
	lit(ElementsTail, ",", ElementsMore)
	lit(ElementsTail, "]", Empty)

	lit(String, `"`, StringOpen)
	lit(Chars, `"`, Empty)
	lit(Chars, `\`, CharEscape)
	lit(Chars, "\t\n\r", Reject) // must be escaped
	kind(Chars, CharPlain, lexer.Char)
	t[key{Escape, lexer.Escape, 'u'}] = EscapeUnicode
	kind(Escape, EscapeSimple, lexer.Escape)

	lit(Integer, "-", IntegerNeg)
	kind(Integer, IntegerZero, lexer.Zero)
	kind(Integer, DigitOneNine, lexer.OneNine)
	kind(IntDigits, IntegerZero, lexer.Zero)
	kind(IntDigits, DigitOneNine, lexer.OneNine)
	kind(Digits, DigitZero, lexer.Zero)
	kind(Digits, DigitOneNine, lexer.OneNine)
	kind(Digits, Empty, lexer.Char, lexer.End)
	kind(SomeDigits, DigitZero, lexer.Zero)
	kind(SomeDigits, DigitOneNine, lexer.OneNine)
	lit(Fraction, ".", FractionDot)
	kind(Fraction, Empty, lexer.Char, lexer.End)
	lit(Exponent, "e", ExponentLower)
	lit(Exponent, "E", ExponentUpper)
	kind(Exponent, Empty, lexer.Char, lexer.End)
	lit(Sign, "+", SignPlus)
	lit(Sign, "-", SignMinus)
	kind(Sign, Empty, lexer.Zero, lexer.OneNine)

	lit(Whitespace, spaces, SpaceChar)
	kind(Whitespace, Empty, lexer.Char, lexer.Zero, lexer.OneNine, lexer.End)
	return t
}

// Lookup returns the rule to expand nt by when tok is the lookahead.  An entry
// for the exact kind and literal of tok takes precedence over an entry for its
// kind alone.  The caller is responsible for reclassifying tok first (see
// Reclassify).
func Lookup(nt NonTerminal, tok lexer.Token) (RuleID, bool) {
	r, ok := table[key{nt, tok.Kind, tok.Lit}]
	if !ok {
		r, ok = table[key{nt, tok.Kind, 0}]
	}
	if !ok || r == Reject {
		return Reject, false
	}
	return r, true
}

// Expected returns a sorted list of human-readable descriptions of the
// lookaheads for which nt has a production.
func Expected(nt NonTerminal) []string {
	var out []string
	for k, r := range table {
		if k.nt != nt || r == Reject {
			continue
		}
		if k.lit != 0 {
			out = append(out, Char(k.lit).String())
		} else {
			out = append(out, k.kind.String())
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
