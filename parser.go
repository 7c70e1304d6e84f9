// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/creachadair/jpda/ast"
	"github.com/creachadair/jpda/grammar"
	"github.com/creachadair/jpda/lexer"
)

// An automaton is the state of a single parse: the token sequence, the
// position of the lookahead, the symbol stack, and the value builder.
// Parses do not share state, so any number may run concurrently.
type automaton struct {
	toks []lexer.Token
	pos  int
	stk  []grammar.Symbol // top is the last element
	vals builder
	log  *slog.Logger

	accepted bool
	steps    int
}

func newAutomaton(toks []lexer.Token, log *slog.Logger) *automaton {
	if log != nil && !log.Enabled(context.Background(), slog.LevelInfo) {
		log = nil // nothing would be recorded
	}
	return &automaton{toks: toks, stk: grammar.Start(), log: log}
}

// lookahead returns the current token. Once the input is exhausted, this is
// the End token.
func (a *automaton) lookahead() lexer.Token {
	if a.pos < len(a.toks) {
		return a.toks[a.pos]
	}
	return a.toks[len(a.toks)-1]
}

func (a *automaton) pop() grammar.Symbol {
	top := a.stk[len(a.stk)-1]
	a.stk = a.stk[:len(a.stk)-1]
	return top
}

// run steps the automaton until the symbol stack is empty or an error occurs.
func (a *automaton) run() (ast.Value, error) {
	for len(a.stk) > 0 {
		if err := a.step(); err != nil {
			return nil, err
		}
	}
	if !a.accepted {
		return nil, errors.New("symbol stack exhausted before end of input")
	}
	v, err := a.vals.result()
	if err != nil {
		return nil, err
	}
	if a.log != nil {
		a.log.Info("accepted",
			slog.Int("tokens", len(a.toks)),
			slog.Int("steps", a.steps),
			slog.String("kind", v.Kind().String()),
		)
	}
	return v, nil
}

// step pops one symbol and processes it against the lookahead.
func (a *automaton) step() error {
	sym := a.pop()
	tok := a.lookahead()
	a.steps++
	if a.log != nil {
		a.log.Debug("step",
			slog.Int("n", a.steps),
			slog.String("symbol", sym.String()),
			slog.String("token", tok.String()),
			slog.String("at", tok.Loc.First.String()),
			slog.Int("depth", len(a.stk)),
		)
	}

	switch s := sym.(type) {
	case grammar.Action:
		return a.vals.apply(s, tok)

	case grammar.Terminal:
		tok = grammar.Reclassify(s, tok)
		if !grammar.Matches(s, tok) {
			return a.unexpected(s, tok)
		}
		a.vals.consume(tok)
		if tok.Kind == lexer.End {
			a.accepted = true
		}
		a.pos++
		return nil

	case grammar.NonTerminal:
		tok = grammar.Reclassify(s, tok)
		rule, ok := grammar.Lookup(s, tok)
		if !ok {
			return a.noProduction(s, tok)
		}
		rhs := grammar.RHS(rule)
		for i := len(rhs) - 1; i >= 0; i-- {
			a.stk = append(a.stk, rhs[i])
		}
		return nil
	}
	panic(fmt.Sprintf("unexpected symbol %T on the stack", sym))
}

func (a *automaton) unexpected(want grammar.Terminal, tok lexer.Token) error {
	if grammar.InEscape(want) {
		return escapeError(want, tok, ErrUnexpectedTerminal)
	}
	return &SyntaxError{
		Location: tok.Loc.First,
		Offset:   tok.Loc.Pos,
		Expected: want.String(),
		Got:      tok.String(),
		Message:  fmt.Sprintf("expected %v, got %v", want, tok),
		err:      ErrUnexpectedTerminal,
	}
}

func (a *automaton) noProduction(nt grammar.NonTerminal, tok lexer.Token) error {
	if grammar.InEscape(nt) {
		return escapeError(nt, tok, ErrNoProduction)
	}
	want := strings.Join(grammar.Expected(nt), ", ")
	return &SyntaxError{
		Location: tok.Loc.First,
		Offset:   tok.Loc.Pos,
		Expected: want,
		Got:      tok.String(),
		Message:  fmt.Sprintf("unexpected %v in %v, want one of %s", tok, nt, want),
		err:      ErrNoProduction,
	}
}

func escapeError(sym grammar.Symbol, tok lexer.Token, cause error) error {
	msg := fmt.Sprintf("invalid escape character %v", tok)
	if tok.Kind == lexer.End {
		msg = "incomplete escape sequence"
	} else if t, ok := sym.(grammar.Terminal); ok && t.Kind == lexer.Hex {
		msg = fmt.Sprintf("invalid hex digit %v in Unicode escape", tok)
	}
	return &EscapeError{
		Location: tok.Loc.First,
		Offset:   tok.Loc.Pos,
		Message:  msg,
		err:      cause,
	}
}
