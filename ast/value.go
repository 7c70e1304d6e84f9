// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the values produced by parsing JSON text.
//
// A Value is one of the concrete types Null, Bool, Int, Float, String, Array,
// or Object. Use a type switch to inspect a value:
//
//	switch t := v.(type) {
//	case ast.Object:
//	   log.Printf("Object with %d members", len(t))
//	case ast.Int:
//	   log.Printf("Integer %d", int64(t))
//	}
package ast

import (
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jpda/internal/escape"
)

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	IntKind:    "int",
	FloatKind:  "float",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return "invalid"
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports the concrete type of the value.
	Kind() Kind

	// String renders the value for display, with object keys in sorted order.
	String() string
}

// Null represents the null constant.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind       { return BoolKind }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// An Int is a number written without a fraction or exponent.
type Int int64

func (Int) Kind() Kind       { return IntKind }
func (z Int) String() string { return strconv.FormatInt(int64(z), 10) }

// A Float is a number written with a fraction or exponent, or an integer too
// large to represent as an Int.
type Float float64

func (Float) Kind() Kind { return FloatKind }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// A String is a string value with its escapes decoded.
type String string

func (String) Kind() Kind       { return StringKind }
func (s String) String() string { return escape.Quote(string(s)) }

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object is a collection of values indexed by unique string keys.
type Object map[string]Value

func (Object) Kind() Kind { return ObjectKind }

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Keys returns the keys of o in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (o Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(escape.Quote(key))
		sb.WriteString(": ")
		sb.WriteString(o[key].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
