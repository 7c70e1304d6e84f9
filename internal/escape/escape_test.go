// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jpda/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},
		{`ok go`, "ok go", false},
		{`abc\ndef`, "abc\ndef", false},
		{`\tabc\n`, "\tabc\n", false},
		{`\b\f\n\r\t`, "\b\f\n\r\t", false},
		{`\"\\\/`, `"\/`, false},
		{`he said \"hello\"`, `he said "hello"`, false},
		{`a \u0026 b`, "a & b", false},
		{`\u8A12`, "\u8a12", false},
		{`\u00e9t\u00C9`, "\u00e9t\u00c9", false},
		{`\ud83d\ude00`, "\U0001F600", false}, // surrogate pair
		{`\ud83d`, "\ufffd", false},           // unpaired high
		{`\ude00x`, "\ufffdx", false},         // unpaired low
		{`\ud83dA`, "\ufffdA", false},         // high then plain
		{`\ud83d\ud83d\ude00`, "\ufffd\U0001F600", false},
		{`\u`, ``, true},      // incomplete Unicode escape
		{`\u00`, ``, true},    // incomplete Unicode escape
		{`\u8Z12`, ``, true},  // invalid hex digit
		{`\u019 `, ``, true},  // invalid hex digit
		{`abc\`, ``, true},    // incomplete escape
		{`\x41`, ``, true},    // invalid escape character
		{`ok\q`, ``, true},    // invalid escape character
	}

	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}

func TestUnquoteErrorOffset(t *testing.T) {
	_, err := escape.Unquote(mem.S(`abc\u00e9 \q`))
	var e *escape.Error
	if !errors.As(err, &e) {
		t.Fatalf("Unquote: got %v, want *escape.Error", err)
	}
	if e.Offset != 10 {
		t.Errorf("Offset: got %d, want 10", e.Offset)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"\u8a12", "\"\u8a12\""},
	}
	for _, test := range tests {
		got := escape.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
		if dec, err := escape.Unquote(mem.S(got[1 : len(got)-1])); err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if string(dec) != test.input {
			t.Errorf("Unquote(%#q): got %#q, want %#q", got, dec, test.input)
		}
	}
}
