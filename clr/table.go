package clr

import (
	"github.com/dekarrin/clrp/clrperr"
	"github.com/emirpasic/gods/sets/hashset"
)

// collection is the canonical collection of CLR(1) states plus the
// transition function between them (§4.4).
type collection struct {
	states      []*state
	byID        map[int]*state
	transitions map[int]map[string]int // state id -> symbol -> target state id
	initial     int
}

// buildCanonicalCollection constructs the canonical collection starting
// from the single kernel item ".start -> . start, {$}", forking and
// deduplicating states by their closed item-set signature until a
// fixpoint is reached (§4.4). Termination is guaranteed because lookaheads
// are drawn from a finite terminal set plus "$", productions are finite,
// and item quadruples are therefore bounded.
func buildCanonicalCollection(g *Grammar, fs *firstSets) *collection {
	initialLA := hashset.New()
	initialLA.Add(endOfInput)
	initialKernel := []*item{newItem(augmentedStart, []string{g.StartSymbol()}, 0, initialLA)}

	c := &collection{
		byID:        map[int]*state{},
		transitions: map[int]map[string]int{},
	}

	bySignature := map[string]int{}
	nextID := 0

	s0 := newState(nextID, initialKernel, g, fs)
	bySignature[s0.signature()] = s0.id
	c.states = append(c.states, s0)
	c.byID[s0.id] = s0
	c.initial = s0.id
	nextID++

	queue := []*state{s0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		forks := cur.fork()
		if len(forks) > 0 {
			c.transitions[cur.id] = map[string]int{}
		}
		for _, fk := range forks {
			candidate := newState(nextID, fk.items, g, fs)
			sig := candidate.signature()

			targetID, known := bySignature[sig]
			if !known {
				targetID = candidate.id
				bySignature[sig] = targetID
				c.states = append(c.states, candidate)
				c.byID[targetID] = candidate
				nextID++
				queue = append(queue, candidate)
			}

			c.transitions[cur.id][fk.symbol] = targetID
		}
	}

	return c
}

// ParseTable is the finished action/goto table (§3, §4.5): a mapping
// (state, symbol) -> Action for terminals (including "$"), and
// (state, symbol) -> state id for non-terminals.
type ParseTable struct {
	Actions map[int]map[string]Action
	Gotos   map[int]map[string]int
	Initial int
}

// buildTable runs the two passes of §4.5 over every state in the canonical
// collection: shifts/gotos first, then reductions/accept, resolving
// conflicts per the policy in resolveConflict. onConflict, if non-nil, is
// invoked once per resolved conflict.
func buildTable(g *Grammar, c *collection, onConflict func(clrperr.GrammarConflict)) *ParseTable {
	t := &ParseTable{
		Actions: map[int]map[string]Action{},
		Gotos:   map[int]map[string]int{},
		Initial: c.initial,
	}

	for _, s := range c.states {
		t.Actions[s.id] = map[string]Action{}
		t.Gotos[s.id] = map[string]int{}
	}

	// Pass 1: shifts and gotos.
	for _, s := range c.states {
		for _, it := range s.orderedItems() {
			if it.isFinal() {
				continue
			}
			sym := it.nextSymbol()
			target := c.transitions[s.id][sym]
			if isTerminal(sym) {
				t.Actions[s.id][sym] = Action{Kind: ActionShift, Target: target}
			} else {
				t.Gotos[s.id][sym] = target
			}
		}
	}

	// Pass 2: reductions and accept.
	for _, s := range c.states {
		for _, it := range s.orderedItems() {
			if !it.isFinal() {
				continue
			}
			if it.lhs == augmentedStart {
				t.Actions[s.id][endOfInput] = Action{Kind: ActionAccept}
				continue
			}
			candidate := Action{Kind: ActionReduce, LHS: it.lhs, RHS: it.rhs}
			for _, la := range it.lookaheadSorted() {
				existing, ok := t.Actions[s.id][la]
				var existingPtr *Action
				if ok {
					existingPtr = &existing
				}
				t.Actions[s.id][la] = resolveConflict(existingPtr, candidate, g, s.id, la, onConflict)
			}
		}
	}

	return t
}
