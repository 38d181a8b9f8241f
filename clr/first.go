package clr

import "github.com/emirpasic/gods/sets/hashset"

// firstSets holds the FIRST set of every terminal and non-terminal in a
// Grammar. Epsilon membership is represented by the presence of the
// sentinel empty string inside the set, exactly as a real symbol would be
// (§3: "FIRST set ... the set of terminals (and possibly ε)").
type firstSets struct {
	sets map[string]*hashset.Set
}

func (fs *firstSets) of(sym string) *hashset.Set {
	if s, ok := fs.sets[sym]; ok {
		return s
	}
	// Every RHS terminal and every non-terminal with productions already has
	// an entry; the only symbols that reach here are non-terminals used on
	// some RHS without productions of their own, and they get the trivial
	// FIRST set {sym}.
	s := hashset.New()
	s.Add(sym)
	fs.sets[sym] = s
	return s
}

// computeFirstSets runs the fixpoint iteration of §4.2. FIRST never shrinks
// during computation; iteration terminates when a full pass changes
// nothing.
func computeFirstSets(g *Grammar) *firstSets {
	fs := &firstSets{sets: map[string]*hashset.Set{}}

	for _, t := range g.Terminals() {
		s := hashset.New()
		s.Add(t)
		fs.sets[t] = s
	}
	for _, nt := range g.NonTerminalsInOrder() {
		fs.sets[nt] = hashset.New()
	}

	for {
		changed := false
		for _, nt := range g.NonTerminalsInOrder() {
			for _, prod := range g.Alternatives(nt) {
				if addProductionFirst(fs, nt, prod.RHS) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return fs
}

// addProductionFirst applies one pass of the per-production rule in §4.2 to
// FIRST[lhs], returning whether anything changed.
func addProductionFirst(fs *firstSets, lhs string, rhs []string) bool {
	entry := fs.sets[lhs]
	changed := false
	add := func(sym string) {
		if !entry.Contains(sym) {
			entry.Add(sym)
			changed = true
		}
	}

	if len(rhs) == 0 || rhs[0] == epsilon {
		add(epsilon)
		return changed
	}

	if isTerminal(rhs[0]) {
		add(rhs[0])
		return changed
	}

	for _, sym := range rhs {
		if isTerminal(sym) {
			add(sym)
			return changed
		}
		symFirst := fs.of(sym)
		for _, v := range symFirst.Values() {
			s := v.(string)
			if s != epsilon {
				add(s)
			}
		}
		if !symFirst.Contains(epsilon) {
			return changed
		}
	}
	add(epsilon)
	return changed
}

// firstOfSequenceWithLookahead computes FIRST(beta L), where beta is the
// portion of a production's RHS after a dotted non-terminal and L is the
// current item's full lookahead set, per the closure rule in §4.3: "for
// each b in FIRST(beta L) (treating the lookahead as a one-token suffix
// when beta is nullable)". Concretely: scan beta left to right accumulating
// FIRST minus epsilon until a non-nullable symbol is found; if the whole of
// beta is nullable (including the empty case), union in all of L.
func firstOfSequenceWithLookahead(fs *firstSets, beta []string, lookahead *hashset.Set) *hashset.Set {
	result := hashset.New()
	fullyNullable := true

	for _, sym := range beta {
		symFirst := fs.of(sym)
		for _, v := range symFirst.Values() {
			s := v.(string)
			if s != epsilon {
				result.Add(s)
			}
		}
		if !symFirst.Contains(epsilon) {
			fullyNullable = false
			break
		}
	}

	if fullyNullable {
		for _, v := range lookahead.Values() {
			result.Add(v.(string))
		}
	}

	return result
}
