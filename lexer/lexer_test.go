// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lexer_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jpda/lexer"
	"github.com/google/go-cmp/cmp"
)

// kinds renders the kinds and literals of toks compactly, e.g. "c{ 0 9 $".
func kinds(toks []lexer.Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch tok.Kind {
		case lexer.Char:
			sb.WriteString("c" + string(tok.Lit))
		case lexer.Zero:
			sb.WriteString("0")
		case lexer.OneNine:
			sb.WriteString(string(tok.Lit))
		case lexer.End:
			sb.WriteString("$")
		default:
			sb.WriteString("?")
		}
	}
	return sb.String()
}

func TestTokens(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		// Empty input yields only the end marker.
		{"", "$"},

		{"0", "0 $"},
		{"19", "1 9 $"},
		{"-0.5e+7", "c- 0 c. 5 ce c+ 7 $"},
		{"{}", "c{ c} $"},
		{`["a"]`, `c[ c" ca c" c] $`},
		{"tru", "ct cr cu $"},
		{"\t \n", "c\t c  c\n $"},
		{`"\u00e9"`, `c" c\ cu 0 0 ce 9 c" $`},
		{"π", "cπ $"},
		{"\x7f", "c\x7f $"},
	}
	for _, test := range tests {
		got, err := lexer.TokensString(test.input)
		if err != nil {
			t.Errorf("Tokens %q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, kinds(got)); diff != "" {
			t.Errorf("Tokens %q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		msg   string
	}{
		{"\x00", 0, "control character"},
		{"[1,\x1f]", 3, "control character"},
		{"\"a\x08\"", 2, "control character"},
		{"ab\xffc", 2, "invalid UTF-8"},
		{"\xc3", 0, "invalid UTF-8"},
	}
	for _, test := range tests {
		toks, err := lexer.TokensString(test.input)
		var lerr *lexer.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("Tokens %q: got (%v, %v), want *LexError", test.input, toks, err)
			continue
		}
		if lerr.Location.Pos != test.pos {
			t.Errorf("Tokens %q: error at offset %d, want %d", test.input, lerr.Location.Pos, test.pos)
		}
		if !strings.Contains(lerr.Error(), test.msg) {
			t.Errorf("Tokens %q: error %q does not mention %q", test.input, lerr.Error(), test.msg)
		}
	}
}

func TestLocation(t *testing.T) {
	toks, err := lexer.TokensString("[1,\n é]")
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}
	type loc struct {
		Pos, End, Line, Col int
	}
	var got []loc
	for _, tok := range toks {
		got = append(got, loc{tok.Loc.Pos, tok.Loc.End, tok.Loc.First.Line, tok.Loc.First.Column})
	}
	want := []loc{
		{0, 1, 1, 0}, // [
		{1, 2, 1, 1}, // 1
		{2, 3, 1, 2}, // ,
		{3, 4, 1, 3}, // \n
		{4, 5, 2, 0}, // space
		{5, 7, 2, 1}, // é (two bytes)
		{7, 8, 2, 3}, // ]
		{8, 8, 2, 4}, // end
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locations: (-want, +got)\n%s", diff)
	}

	if got, want := toks[3].Loc.String(), "1:3-2:0"; got != want {
		t.Errorf("Newline location: got %q, want %q", got, want)
	}
	if got, want := toks[5].Loc.String(), "2:1-3"; got != want {
		t.Errorf("Rune location: got %q, want %q", got, want)
	}
}

func TestNext(t *testing.T) {
	lx := lexer.New(strings.NewReader("1"))
	if err := lx.Next(); err != nil {
		t.Fatalf("Next: unexpected error: %v", err)
	}
	if got := lx.Token(); got.Kind != lexer.OneNine || got.Lit != '1' {
		t.Errorf("Token: got %v, want digit 1", got)
	}
	if err := lx.Next(); err != nil {
		t.Fatalf("Next: unexpected error: %v", err)
	}
	if got := lx.Token(); got.Kind != lexer.End {
		t.Errorf("Token: got %v, want end", got)
	}
	for range 3 {
		if err := lx.Next(); err != io.EOF {
			t.Errorf("Next after end: got %v, want %v", err, io.EOF)
		}
	}
	if err := lx.Err(); err != nil {
		t.Errorf("Err: got %v, want nil", err)
	}
}

func TestAllStop(t *testing.T) {
	lx := lexer.New(strings.NewReader("abcdef"))
	var n int
	for tok, err := range lx.All() {
		if err != nil {
			t.Fatalf("All: unexpected error: %v", err)
		}
		n++
		if tok.Lit == 'c' {
			break
		}
	}
	if n != 3 {
		t.Errorf("All: got %d tokens before stopping, want 3", n)
	}

	// The remaining tokens are still available.
	var rest []lexer.Token
	for tok, err := range lx.All() {
		if err != nil {
			t.Fatalf("All: unexpected error: %v", err)
		}
		rest = append(rest, tok)
	}
	if got, want := kinds(rest), "cd ce cf $"; got != want {
		t.Errorf("Remaining tokens: got %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind lexer.Kind
		want string
	}{
		{lexer.Char, "character"},
		{lexer.Zero, "digit 0"},
		{lexer.End, "end of input"},
		{lexer.Kind(200), "invalid token"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind %d: got %q, want %q", test.kind, got, test.want)
		}
	}
	if got, want := (lexer.Token{Kind: lexer.Char, Lit: 'x'}).String(), `'x'`; got != want {
		t.Errorf("Token string: got %q, want %q", got, want)
	}
}
