package clr

import (
	"strconv"

	"github.com/dekarrin/clrp/clrperr"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Dispatch maps a non-terminal name to a reducer invoked when a production
// with that LHS is reduced, in semantic-dispatch mode (§4.6). The reducer
// receives the flattened list of its children and returns whatever value
// the caller wants attached to the node stack in its place.
type Dispatch map[string]func([]interface{}) interface{}

// ParseNode is the raw-tree representation of a reduced production: Symbol
// is the LHS, Children holds whatever was on the node stack for each RHS
// position, in source order (§4.6).
type ParseNode struct {
	Symbol   string
	Children []interface{}
}

// Driver runs the shift/reduce/accept interpreter of §4.6 against a built
// ParseTable. It is otherwise stateless between calls to Run; a Driver may
// be reused for any number of token streams.
type Driver struct {
	table *ParseTable
	trace func(string)
}

// NewDriver wraps a built table for driving.
func NewDriver(table *ParseTable) *Driver {
	return &Driver{table: table}
}

// Trace registers a listener invoked with a human-readable description of
// every shift, reduce, goto, and accept step. It never influences the parse
// outcome, matching the observability-only trace hook in the teacher's
// lrParser (internal/ictiobus/parse/lr.go RegisterTraceListener).
func (d *Driver) Trace(fn func(string)) {
	d.trace = fn
}

func (d *Driver) notify(msg string) {
	if d.trace != nil {
		d.trace(msg)
	}
}

// Run drives tokens (a terminal-name sequence, without a trailing "$") to
// completion. If dispatch is nil, the result is a raw parse tree of
// *ParseNode and string leaves; otherwise every non-epsilon reduction is
// resolved through dispatch and the result is whatever the top-level
// reducer returned. An epsilon reduction never calls a reducer: in both
// modes it pushes an empty []interface{} onto the node stack.
//
// On success it returns the final node stack contents, per §4.6 ("return
// the node stack"); for a well-formed grammar this holds exactly the one
// value built for the grammar's start symbol (the augmented ".start"
// production is accepted, never reduced).
func (d *Driver) Run(tokens []string, dispatch Dispatch) ([]interface{}, error) {
	states := arraystack.New()
	symbols := arraystack.New()
	nodes := arraystack.New()

	states.Push(d.table.Initial)

	lookaheadAt := func(i int) string {
		if i < len(tokens) {
			return tokens[i]
		}
		return endOfInput
	}

	i := 0
	for {
		topState, _ := states.Peek()
		s := topState.(int)
		a := lookaheadAt(i)

		action, ok := d.table.Actions[s][a]
		if !ok {
			return nil, &clrperr.ParseError{State: s, Token: a}
		}

		switch action.Kind {
		case ActionShift:
			d.notify(shiftTrace(s, a, action.Target))
			symbols.Push(a)
			states.Push(action.Target)
			nodes.Push(a)
			i++

		case ActionReduce:
			d.notify(reduceTrace(s, action))
			var result interface{}
			if len(action.RHS) == 1 && action.RHS[0] == epsilon {
				result = []interface{}{}
			} else {
				children := make([]interface{}, len(action.RHS))
				for k := len(action.RHS) - 1; k >= 0; k-- {
					states.Pop()
					symbols.Pop()
					v, _ := nodes.Pop()
					children[k] = v
				}
				if dispatch != nil {
					reducer, has := dispatch[action.LHS]
					if !has {
						return nil, &clrperr.DispatchRequired{}
					}
					result = reducer(flatten(children))
				} else {
					result = &ParseNode{Symbol: action.LHS, Children: children}
				}
			}

			gotoTop, _ := states.Peek()
			sPrime := gotoTop.(int)
			target := d.table.Gotos[sPrime][action.LHS]
			d.notify(gotoTrace(sPrime, action.LHS, target))

			symbols.Push(action.LHS)
			states.Push(target)
			nodes.Push(result)

		case ActionAccept:
			// Accept entries are keyed only on endOfInput, so this case is
			// only ever reached with i == len(tokens). Trailing garbage
			// after a complete parse instead fails earlier, as a
			// ParseError: the completed state's row has no entry for a
			// non-"$" lookahead, matching the Python reference, which
			// raises its own ParseError here rather than asserting.
			d.notify("accept")
			return nodes.Values(), nil
		}
	}
}

func shiftTrace(s int, a string, target int) string {
	return "shift " + a + " from state " + strconv.Itoa(s) + ", goto state " + strconv.Itoa(target)
}

func reduceTrace(s int, action Action) string {
	return "in state " + strconv.Itoa(s) + ", reduce " + action.LHS + " -> " + rhsString(action.RHS)
}

func gotoTrace(s int, symbol string, target int) string {
	return "in state " + strconv.Itoa(s) + ", goto " + symbol + " -> state " + strconv.Itoa(target)
}

// flatten recursively collapses nested sequences (produced by epsilon
// reductions or list-shaped non-terminals) into one ordered sequence,
// preserving the depth-first, left-to-right order of scalar elements
// (§4.6 "Flattening").
func flatten(children []interface{}) []interface{} {
	out := make([]interface{}, 0, len(children))
	for _, c := range children {
		if seq, ok := c.([]interface{}); ok {
			out = append(out, flatten(seq)...)
			continue
		}
		out = append(out, c)
	}
	return out
}
