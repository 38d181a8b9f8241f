package regex

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// dfaState is a DFA state per §3: a composition (set of leaf positions)
// plus an integer id. Equality ignores id and compares compositions only;
// compositionSignature is what's actually used to test that.
type dfaState struct {
	id          int
	composition map[int]struct{}
	transitions map[int]int // byte value (or sentinelChar, never populated) -> target state id
}

func compositionSignature(composition map[int]struct{}) string {
	positions := make([]int, 0, len(composition))
	for p := range composition {
		positions = append(positions, p)
	}
	sort.Ints(positions)

	h, err := structhash.Hash(positions, 1)
	if err != nil {
		// structhash only fails on unhashable types; []int is always
		// hashable, so this is unreachable in practice.
		panic(fmt.Sprintf("regex: failed to hash composition: %v", err))
	}
	return h
}

// dfa is the finished automaton: every state reachable from the initial
// state, plus which leaf position marks acceptance.
type dfa struct {
	states     []*dfaState
	byID       map[int]*dfaState
	initial    int
	finalLeaf  int
}

func (d *dfa) isAccepting(s *dfaState) bool {
	_, ok := s.composition[d.finalLeaf]
	return ok
}

// buildDFA runs the worklist construction of §4.8: starting from
// root.firstpos, for each unmarked state and each letter in the alphabet
// actually introduced by the AST, union the followpos of every leaf in the
// composition that matches that letter; allocate or reuse a state for the
// result and record the transition.
func buildDFA(root node, b *builder, finalLeaf int) *dfa {
	d := &dfa{byID: map[int]*dfaState{}, finalLeaf: finalLeaf}

	bySignature := map[string]int{}
	nextID := 0

	alphabet := make([]int, 0, len(b.alphabet))
	for c := range b.alphabet {
		alphabet = append(alphabet, c)
	}
	sort.Ints(alphabet)

	initial := &dfaState{id: nextID, composition: root.firstPos(), transitions: map[int]int{}}
	bySignature[compositionSignature(initial.composition)] = initial.id
	d.states = append(d.states, initial)
	d.byID[initial.id] = initial
	d.initial = initial.id
	nextID++

	worklist := arraystack.New()
	worklist.Push(initial)

	for !worklist.Empty() {
		v, _ := worklist.Pop()
		s := v.(*dfaState)

		for _, letter := range alphabet {
			union := map[int]struct{}{}
			for pos := range s.composition {
				leaf, ok := b.leaves[pos]
				if !ok || leaf.char != letter {
					continue
				}
				for fp := range b.follow.of(pos) {
					union[fp] = struct{}{}
				}
			}
			if len(union) == 0 {
				continue
			}

			sig := compositionSignature(union)
			targetID, known := bySignature[sig]
			if !known {
				target := &dfaState{id: nextID, composition: union, transitions: map[int]int{}}
				targetID = target.id
				bySignature[sig] = targetID
				d.states = append(d.states, target)
				d.byID[targetID] = target
				nextID++
				worklist.Push(target)
			}
			s.transitions[letter] = targetID
		}
	}

	return d
}
