package clr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
)

// item is a CLR(1) item: a dotted production plus a lookahead set (§3). Two
// items are equal iff lhs, rhs, dot, and the lookahead set all match; key()
// is the structural hash used for that comparison and for indexing items in
// a state.
type item struct {
	lhs       string
	rhs       []string
	dot       int
	lookahead *hashset.Set
}

// newItem constructs an item, initializing the dot past an epsilon RHS so
// that such an item starts out already final, per §3.
func newItem(lhs string, rhs []string, dot int, lookahead *hashset.Set) *item {
	if len(rhs) == 1 && rhs[0] == epsilon {
		dot = 1
	}
	return &item{lhs: lhs, rhs: rhs, dot: dot, lookahead: lookahead}
}

func (it *item) isEmptyProduction() bool {
	return len(it.rhs) == 1 && it.rhs[0] == epsilon
}

// isFinal reports whether the dot has reached the end of the RHS (or past
// the epsilon marker), making the item reducible.
func (it *item) isFinal() bool {
	if it.isEmptyProduction() {
		return true
	}
	return it.dot == len(it.rhs)
}

// nextSymbol returns the symbol immediately to the right of the dot. Only
// valid when !isFinal().
func (it *item) nextSymbol() string {
	return it.rhs[it.dot]
}

// advance returns a copy of the item with the dot moved one position to the
// right, sharing the same lookahead set (lookahead sets are frozen once an
// item is constructed; see Ownership and lifecycle in §3).
func (it *item) advance() *item {
	return &item{lhs: it.lhs, rhs: it.rhs, dot: it.dot + 1, lookahead: it.lookahead}
}

type itemHashKey struct {
	LHS string
	RHS []string
	Dot int
	LA  []string
}

// key returns a stable structural-hash signature of the item, used both to
// test item equality (§3: "Two items are equal iff all four components
// match") and to index items within a state.
func (it *item) key() string {
	la := it.lookahead.Values()
	las := make([]string, len(la))
	for i, v := range la {
		las[i] = v.(string)
	}
	sort.Strings(las)

	h, err := structhash.Hash(itemHashKey{LHS: it.lhs, RHS: it.rhs, Dot: it.dot, LA: las}, 1)
	if err != nil {
		// structhash only fails on unhashable types; itemHashKey is composed
		// entirely of strings, slices of strings, and an int, so this is
		// unreachable in practice.
		panic(fmt.Sprintf("clr: failed to hash item: %v", err))
	}
	return h
}

func (it *item) lookaheadSorted() []string {
	la := it.lookahead.Values()
	las := make([]string, len(la))
	for i, v := range la {
		las[i] = v.(string)
	}
	sort.Strings(las)
	return las
}

// dump renders the item with a dot marker and its lookahead set sorted
// bytewise, e.g. "expr -> expr • PLUS term, {$, PLUS}", matching the diagnostic format of dump_states (§6).
func (it *item) dump() string {
	rhs := make([]string, 0, len(it.rhs)+1)
	for i, s := range it.rhs {
		if it.isEmptyProduction() {
			rhs = append(rhs, "•")
			break
		}
		if i == it.dot {
			rhs = append(rhs, "•")
		}
		if s == epsilon {
			rhs = append(rhs, "@")
		} else {
			rhs = append(rhs, s)
		}
	}
	if !it.isEmptyProduction() && it.dot == len(it.rhs) {
		rhs = append(rhs, "•")
	}
	return fmt.Sprintf("%s -> %s, {%s}", it.lhs, strings.Join(rhs, " "), strings.Join(it.lookaheadSorted(), ", "))
}
