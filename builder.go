// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpda

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jpda/ast"
	"github.com/creachadair/jpda/grammar"
	"github.com/creachadair/jpda/internal/escape"
	"github.com/creachadair/jpda/lexer"

	"go4.org/mem"
)

// A builder assembles a value on a stack in response to the actions embedded
// in the grammar.  Each element of the stack is an entry.
type builder struct {
	stk []entry
}

// An entry is a *textAcc, a *listAcc, or a finished value.
type entry interface{ isEntry() }

// A textAcc accumulates the raw text of a string or number.
type textAcc struct{ buf []byte }

// A listAcc accumulates the elements of an array, or the members of an object
// as alternating keys and values.
type listAcc struct{ vals []ast.Value }

// A done is a finished value.
type done struct{ ast.Value }

func (*textAcc) isEntry() {}
func (*listAcc) isEntry() {}
func (done) isEntry()     {}

func (b *builder) push(e entry) { b.stk = append(b.stk, e) }

func (b *builder) top() entry { return b.stk[len(b.stk)-1] }

func (b *builder) pop() entry {
	last := b.top()
	b.stk = b.stk[:len(b.stk)-1]
	return last
}

// consume records a token matched by the parser. If a string or number is
// being accumulated, its literal is appended.
func (b *builder) consume(tok lexer.Token) {
	if len(b.stk) == 0 || tok.Kind == lexer.End {
		return
	}
	if acc, ok := b.top().(*textAcc); ok {
		acc.buf = utf8.AppendRune(acc.buf, tok.Lit)
	}
}

// apply executes act. The token is the current lookahead, used to locate
// errors.
func (b *builder) apply(act grammar.Action, at lexer.Token) error {
	switch act.Op {
	case grammar.Begin:
		return b.begin(act.Kind)
	case grammar.Finish:
		return b.finish(act.Kind, at)
	}
	return fmt.Errorf("invalid action %v", act)
}

func (b *builder) begin(kind grammar.ValueKind) error {
	switch kind {
	case grammar.StringValue, grammar.NumberValue:
		b.push(new(textAcc))
	case grammar.ArrayValue, grammar.ObjectValue:
		b.push(new(listAcc))
	case grammar.TrueValue:
		return b.complete(ast.Bool(true))
	case grammar.FalseValue:
		return b.complete(ast.Bool(false))
	case grammar.NullValue:
		return b.complete(ast.Null{})
	default:
		return fmt.Errorf("begin: invalid value kind %v", kind)
	}
	return nil
}

func (b *builder) finish(kind grammar.ValueKind, at lexer.Token) error {
	if len(b.stk) == 0 {
		return fmt.Errorf("finish %v: empty value stack", kind)
	}
	switch acc := b.pop().(type) {
	case *textAcc:
		switch kind {
		case grammar.NumberValue:
			v, err := numberValue(string(acc.buf))
			if err != nil {
				return &SyntaxError{
					Location: at.Loc.First,
					Offset:   at.Loc.Pos,
					Expected: "number",
					Got:      string(acc.buf),
					Message:  fmt.Sprintf("number out of range: %s", acc.buf),
					err:      err,
				}
			}
			return b.complete(v)
		case grammar.StringValue:
			dec, err := escape.Unquote(mem.B(acc.buf))
			if err != nil {
				return &EscapeError{
					Location: at.Loc.First,
					Offset:   at.Loc.Pos,
					Message:  err.Error(),
					err:      err,
				}
			}
			return b.complete(ast.String(dec))
		}
	case *listAcc:
		switch kind {
		case grammar.ArrayValue:
			if acc.vals == nil {
				return b.complete(ast.Array{})
			}
			return b.complete(ast.Array(acc.vals))
		case grammar.ObjectValue:
			obj, err := foldObject(acc.vals)
			if err != nil {
				return err
			}
			return b.complete(obj)
		}
	}
	return fmt.Errorf("finish %v: top of stack is not an accumulator for it", kind)
}

// complete pushes the finished value v and, if it is nested inside another
// value, moves it into that value.
func (b *builder) complete(v ast.Value) error {
	b.push(done{v})
	if len(b.stk) == 1 {
		return nil
	}
	b.pop()
	list, ok := b.top().(*listAcc)
	if !ok {
		return fmt.Errorf("cannot add %v to %T", v.Kind(), b.top())
	}
	list.vals = append(list.vals, v)
	return nil
}

// result returns the finished value, which must be the only entry.
func (b *builder) result() (ast.Value, error) {
	if len(b.stk) != 1 {
		return nil, fmt.Errorf("incomplete value: %d entries on the value stack", len(b.stk))
	}
	d, ok := b.stk[0].(done)
	if !ok {
		return nil, errors.New("incomplete value")
	}
	return d.Value, nil
}

// numberValue converts the text of a number literal. A literal with neither a
// fraction nor an exponent is an Int, unless it is out of range for int64.
func numberValue(text string) (ast.Value, error) {
	if !strings.ContainsAny(text, ".eE") {
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ast.Int(z), nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return ast.Float(f), nil
}

// foldObject converts a flat list of alternating keys and values into an
// object. A later duplicate key replaces an earlier one.
func foldObject(vals []ast.Value) (ast.Object, error) {
	if len(vals)%2 != 0 {
		return nil, fmt.Errorf("object has %d keys and values", len(vals))
	}
	obj := make(ast.Object, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		key, ok := vals[i].(ast.String)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not string", vals[i].Kind())
		}
		obj[string(key)] = vals[i+1]
	}
	return obj, nil
}
