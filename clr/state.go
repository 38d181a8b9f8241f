package clr

// state is a CLR(1) state: a set of items plus an integer id (§3). Two
// states are equal iff their item sets are equal, order-insensitive; see
// signature() for how that's tested.
type state struct {
	id    int
	items map[string]*item // keyed by item.key()
	order []string         // insertion order, for deterministic dump output
}

func newState(id int, kernel []*item, g *Grammar, fs *firstSets) *state {
	s := &state{id: id, items: map[string]*item{}}
	for _, it := range kernel {
		s.add(it)
	}
	s.close(g, fs)
	return s
}

func (s *state) add(it *item) bool {
	k := it.key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = it
	s.order = append(s.order, k)
	return true
}

func (s *state) orderedItems() []*item {
	out := make([]*item, len(s.order))
	for i, k := range s.order {
		out[i] = s.items[k]
	}
	return out
}

// close computes the closure of the state's working item set in place,
// applying the rule in §4.3 until a fixpoint is reached: whenever an item
// (A -> alpha . B beta, L) is present and B is a non-terminal, for every
// production B -> gamma add (B -> . gamma, FIRST(beta L)).
func (s *state) close(g *Grammar, fs *firstSets) {
	frontier := s.orderedItems()
	for len(frontier) > 0 {
		var next []*item
		for _, it := range frontier {
			if it.isFinal() {
				continue
			}
			b := it.nextSymbol()
			if !isNonTerminal(b) {
				continue
			}

			beta := it.rhs[it.dot+1:]
			la := firstOfSequenceWithLookahead(fs, beta, it.lookahead)

			for _, prod := range g.Alternatives(b) {
				newItem := newItem(prod.LHS, prod.RHS, 0, la)
				if s.add(newItem) {
					next = append(next, newItem)
				}
			}
		}
		frontier = next
	}
}

// forkKernel is the not-yet-closed kernel produced by advancing the dot
// past symbol in every non-final item of s that has symbol to its right.
type forkKernel struct {
	symbol string
	items  []*item
}

// fork partitions the state's non-final items by the symbol immediately
// right of the dot and advances the dot in each, producing one kernel per
// distinct symbol (§4.4 step 1). Kernels are returned in a deterministic
// order (first-occurrence of the symbol among the state's items).
func (s *state) fork() []forkKernel {
	bySymbol := map[string][]*item{}
	var order []string

	for _, it := range s.orderedItems() {
		if it.isFinal() {
			continue
		}
		sym := it.nextSymbol()
		if _, seen := bySymbol[sym]; !seen {
			order = append(order, sym)
		}
		bySymbol[sym] = append(bySymbol[sym], it.advance())
	}

	out := make([]forkKernel, 0, len(order))
	for _, sym := range order {
		out = append(out, forkKernel{symbol: sym, items: bySymbol[sym]})
	}
	return out
}

// signature returns an order-insensitive structural signature for the
// state's full (closed) item set, used to test state equality during
// canonical-collection construction (§4.4 step 2, §8 property 3).
func (s *state) signature() string {
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return setSignature(keys)
}
