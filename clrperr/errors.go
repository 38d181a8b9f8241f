// Package clrperr defines the error taxonomy shared by the clr and regex
// packages. Every type here implements error except GrammarConflict, which
// is a diagnostic: it is reported through a sink, never returned, because
// the generator keeps going after resolving the conflict.
package clrperr

import "fmt"

// GrammarSyntax is returned when grammar text cannot be parsed into a
// Grammar: a production is missing its colon or left-hand side, or a symbol
// is empty outside of the epsilon marker "@".
type GrammarSyntax struct {
	// Line is the offending production text, trimmed of surrounding
	// whitespace.
	Line string

	// Reason describes what was wrong with Line.
	Reason string
}

func (e *GrammarSyntax) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("grammar syntax error: %s", e.Reason)
	}
	return fmt.Sprintf("grammar syntax error in %q: %s", e.Line, e.Reason)
}

// GrammarConflict is a non-fatal diagnostic emitted while the action/goto
// table is being built. It is never returned as an error; it is handed to
// whatever sink the caller configured and generation continues.
type GrammarConflict struct {
	// State is the id of the state in which the conflict occurred.
	State int

	// Symbol is the lookahead terminal on which the conflict occurred.
	Symbol string

	// Kind is "shift/reduce" or "reduce/reduce".
	Kind string

	// Resolution describes which action was kept.
	Resolution string
}

func (c GrammarConflict) String() string {
	return fmt.Sprintf("state %d, symbol %s: %s conflict, resolved in favor of %s", c.State, c.Symbol, c.Kind, c.Resolution)
}

// ParseError is returned by the parse driver when no table entry exists for
// the current (state, lookahead) pair.
type ParseError struct {
	State int
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no transition in table for state %d on token %q", e.State, e.Token)
}

// DispatchRequired is returned by the parse driver in dispatch mode (a
// non-nil dispatch table) when the table has no reducer for the LHS of a
// production being reduced.
type DispatchRequired struct{}

func (e *DispatchRequired) Error() string {
	return "dispatch required to build a result without a raw parse tree"
}

// RegexSyntax is returned when a regular expression's token stream cannot be
// assembled into a syntax tree.
type RegexSyntax struct {
	Pos    int
	Reason string
}

func (e *RegexSyntax) Error() string {
	return fmt.Sprintf("regex syntax error at position %d: %s", e.Pos, e.Reason)
}
