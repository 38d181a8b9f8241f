package regex

// Match is a single scan result: Span is the half-open [start, end) byte
// range within the scanned string, Text is the corresponding substring.
type Match struct {
	Span [2]int
	Text string
}

// Check reports whether s is accepted by following transitions from the
// initial state one byte at a time, failing immediately on a missing
// transition (§4.9).
func (r *Regexp) Check(s string) bool {
	state := r.dfa.byID[r.dfa.initial]
	for i := 0; i < len(s); i++ {
		target, ok := state.transitions[int(s[i])]
		if !ok {
			return false
		}
		state = r.dfa.byID[target]
	}
	return r.dfa.isAccepting(state)
}

// FullMatch reports whether s is accepted in its entirety, returning a
// Match spanning the whole string on success. An empty string is accepted
// iff the initial state is itself accepting (§9 open question 3).
func (r *Regexp) FullMatch(s string) (Match, bool) {
	if !r.Check(s) {
		return Match{}, false
	}
	return Match{Span: [2]int{0, len(s)}, Text: s}, true
}

// MatchIter is a synchronous cursor over a single forward sweep of a
// string, per §4.9/§4.10 (scanner states Scanning(dfa-state, last_pos) ->
// Scanning/emit-or-skip -> Done). It performs no I/O, blocking, or
// background work; Next advances the sweep exactly as far as needed to
// produce (or rule out) one more match.
type MatchIter struct {
	re      *Regexp
	s       string
	pos     int
	lastPos int
	state   *dfaState
	done    bool
}

// FindIter returns a cursor that produces each non-overlapping match in s,
// in order, one Next() call at a time.
func (r *Regexp) FindIter(s string) *MatchIter {
	return &MatchIter{re: r, s: s, state: r.dfa.byID[r.dfa.initial]}
}

// Next advances the sweep and returns the next match, or ok=false once the
// sweep is exhausted. The sweep is greedy-left and emits the longest run
// ending at the first transition failure; it is not globally longest-match
// across ambiguous splits, matching the original findall/finditer.
func (m *MatchIter) Next() (Match, bool) {
	if m.done {
		return Match{}, false
	}

	for m.pos < len(m.s) {
		target, ok := m.state.transitions[int(m.s[m.pos])]
		if ok {
			m.state = m.re.dfa.byID[target]
			m.pos++
			continue
		}

		// Transition failure: the byte at pos is dropped (it starts no
		// match of its own here) and scanning resumes at pos+1 from the
		// initial state, exactly as in the original.
		accepting := m.re.dfa.isAccepting(m.state)
		start := m.lastPos
		end := m.pos
		m.state = m.re.dfa.byID[m.re.dfa.initial]
		m.lastPos = m.pos + 1
		m.pos++

		if accepting && start != end {
			return Match{Span: [2]int{start, end}, Text: m.s[start:end]}, true
		}
	}

	m.done = true
	if m.re.dfa.isAccepting(m.state) && m.lastPos != len(m.s) {
		return Match{Span: [2]int{m.lastPos, len(m.s)}, Text: m.s[m.lastPos:]}, true
	}
	return Match{}, false
}

// FindAll materializes every non-overlapping match in s, in order, by
// draining a MatchIter (§4.9).
func (r *Regexp) FindAll(s string) []Match {
	var out []Match
	it := r.FindIter(s)
	for {
		m, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}
