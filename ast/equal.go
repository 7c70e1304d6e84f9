// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Equal reports whether a and b are structurally equal. Numbers are compared
// by numeric value regardless of whether they are Int or Float, arrays are
// compared element-wise in order, and objects are compared as sets of keys
// with equal associated values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		if !ok {
			return false
		}
		if ia, ok := a.(Int); ok {
			if ib, ok := b.(Int); ok {
				return ia == ib
			}
		}
		return fa == fb
	}
	switch t := a.(type) {
	case Array:
		u, ok := b.(Array)
		if !ok || len(t) != len(u) {
			return false
		}
		for i := range t {
			if !Equal(t[i], u[i]) {
				return false
			}
		}
		return true
	case Object:
		u, ok := b.(Object)
		if !ok || len(t) != len(u) {
			return false
		}
		for key, v := range t {
			w, ok := u[key]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func asFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	}
	return 0, false
}

// ToValue converts a Go value into an equivalent Value. It accepts nil, bool,
// the integer and floating-point types, string, []any, []Value, map[string]any,
// map[string]Value, and any Value. It panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []Value:
		return Array(t)
	case []any:
		a := make(Array, len(t))
		for i, elt := range t {
			a[i] = ToValue(elt)
		}
		return a
	case map[string]Value:
		return Object(t)
	case map[string]any:
		o := make(Object, len(t))
		for key, elt := range t {
			o[key] = ToValue(elt)
		}
		return o
	default:
		panic(fmt.Sprintf("unsupported type %T", v))
	}
}
