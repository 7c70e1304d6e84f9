// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles decoding and quoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// An Error reports an invalid or incomplete escape sequence.
type Error struct {
	Offset  int // byte offset of the backslash in the input
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Unquote decodes the body of a JSON string, with the enclosing double
// quotation marks already removed. Escape sequences are replaced with the
// characters they denote.
//
// A "\u" escape for a high surrogate that is immediately followed by a "\u"
// escape for a low surrogate is combined into a single code point. An unpaired
// surrogate decodes to the Unicode replacement rune.  Unquote reports an
// *Error for any other invalid or incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putByte := func(b byte) { dec = append(dec, b) }
	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	var off int // offset of src within the original input
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		esc := off + i
		src, off = src.SliceFrom(i+1), esc+1
		if src.Len() == 0 {
			return nil, &Error{Offset: esc, Message: "incomplete escape sequence"}
		}

		c := src.At(0)
		src, off = src.SliceFrom(1), off+1
		switch c {
		case '"', '\\', '/':
			putByte(c)
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			r, err := parseHex4(src)
			if err != nil {
				return nil, &Error{Offset: esc, Message: err.Error()}
			}
			src, off = src.SliceFrom(4), off+4
			if utf16.IsSurrogate(r) {
				// Try to pair a high surrogate with a following low surrogate.
				if lo, ok := lowSurrogate(src); ok {
					if pr := utf16.DecodeRune(r, lo); pr != utf8.RuneError {
						r = pr
						src, off = src.SliceFrom(6), off+6
					}
				}
				if utf16.IsSurrogate(r) {
					r = utf8.RuneError
				}
			}
			putRune(r)
		default:
			return nil, &Error{Offset: esc, Message: fmt.Sprintf("invalid escape character %q", c)}
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// lowSurrogate reports whether src begins with a "\u" escape for a low
// surrogate, and if so returns its value.
func lowSurrogate(src mem.RO) (rune, bool) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, false
	}
	r, err := parseHex4(src.SliceFrom(2))
	if err != nil || r < 0xdc00 || r > 0xdfff {
		return 0, false
	}
	return r, true
}

// parseHex4 decodes exactly four hexadecimal digits from the front of data.
func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q in Unicode escape", b)
		}
	}
	return v, nil
}
