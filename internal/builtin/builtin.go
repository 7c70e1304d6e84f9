// Package builtin decodes JSON with the standard library into the value
// types of package ast. It serves as a reference for comparing the output
// of the pushdown parser.
package builtin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jpda/ast"
)

// Decode decodes a single JSON value from r. It is an error if anything other
// than whitespace follows the value.
func Decode(r io.Reader) (ast.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("extra data after value")
		}
		return nil, err
	}
	return convert(v)
}

// DecodeString is a convenience wrapper for Decode on a string.
func DecodeString(s string) (ast.Value, error) { return Decode(strings.NewReader(s)) }

// DecodeBytes is a convenience wrapper for Decode on a slice.
func DecodeBytes(data []byte) (ast.Value, error) { return Decode(bytes.NewReader(data)) }

func convert(v any) (ast.Value, error) {
	switch t := v.(type) {
	case nil:
		return ast.Null{}, nil
	case bool:
		return ast.Bool(t), nil
	case string:
		return ast.String(t), nil
	case json.Number:
		return convertNumber(t.String())
	case []any:
		arr := make(ast.Array, len(t))
		for i, elt := range t {
			cv, err := convert(elt)
			if err != nil {
				return nil, err
			}
			arr[i] = cv
		}
		return arr, nil
	case map[string]any:
		obj := make(ast.Object, len(t))
		for key, elt := range t {
			cv, err := convert(elt)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", key, err)
			}
			obj[key] = cv
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unexpected value of type %T", v)
}

// convertNumber follows the same rules as the pushdown parser: a number with
// no fraction or exponent that fits in an int64 is an Int.
func convertNumber(s string) (ast.Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if z, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ast.Int(z), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("number %q: %w", s, err)
	}
	return ast.Float(f), nil
}
