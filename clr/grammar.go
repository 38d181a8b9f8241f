package clr

import (
	"strings"

	"github.com/dekarrin/clrp/clrperr"
)

// Production is an ordered pair (LHS, RHS) with a stable integer Number
// assigned in grammar-file order. The augmented production ".start -> start"
// is assigned Number -1 and is not part of the user-visible grammar.
//
// An epsilon production is represented with RHS == []string{""} (length 1,
// holding the epsilon marker), matching the Data Model in §3.
type Production struct {
	Number int
	LHS    string
	RHS    []string
}

// IsEmpty reports whether this production's RHS is the epsilon marker.
func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 1 && p.RHS[0] == epsilon
}

// Len returns the number of symbols on the RHS, treating an epsilon
// production as length 0 for dot-position bookkeeping purposes even though
// its RHS slice has length 1.
func (p *Production) Len() int {
	if p.IsEmpty() {
		return 0
	}
	return len(p.RHS)
}

func (p *Production) String() string {
	rhs := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		if s == epsilon {
			rhs[i] = "@"
		} else {
			rhs[i] = s
		}
	}
	return p.LHS + " -> " + strings.Join(rhs, " ")
}

// Grammar is an immutable mapping from non-terminal to its ordered list of
// alternative productions, plus the bookkeeping needed to number and
// classify symbols (§3).
type Grammar struct {
	start          string
	alternatives   map[string][]*Production
	order          []string // non-terminals in first-seen (grammar-file) order
	allProductions []*Production
	augmented      *Production
	terminals      map[string]struct{}
	termOrder      []string
	prodNumbers    map[string]int // "LHS\x00RHS..." -> Number, for conflict tie-breaking lookups
}

// StartSymbol returns the grammar's (non-augmented) start symbol.
func (g *Grammar) StartSymbol() string { return g.start }

// NonTerminalsInOrder returns the non-terminals in the order their first
// alternative appeared in the source text.
func (g *Grammar) NonTerminalsInOrder() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Alternatives returns the ordered alternative productions for a
// non-terminal. The returned slice must not be mutated.
func (g *Grammar) Alternatives(nonTerminal string) []*Production {
	return g.alternatives[nonTerminal]
}

// Terminals returns every terminal symbol that appears on some RHS, in
// first-seen order.
func (g *Grammar) Terminals() []string {
	out := make([]string, len(g.termOrder))
	copy(out, g.termOrder)
	return out
}

// Augmented returns the synthetic ".start -> start" production, Number -1.
func (g *Grammar) Augmented() *Production { return g.augmented }

// AllProductions returns every user production (not the augmented one) in
// grammar-file order, i.e. ordered by Number starting at 0.
func (g *Grammar) AllProductions() []*Production {
	out := make([]*Production, len(g.allProductions))
	copy(out, g.allProductions)
	return out
}

// ProductionNumber returns the stable number assigned to a (lhs, rhs) pair,
// used by conflict resolution to break ties in favor of the earlier
// production (§4.5). It is also exposed to external emitters that need to
// reproduce the grammar-file production ordering.
func (g *Grammar) ProductionNumber(lhs string, rhs []string) (int, bool) {
	n, ok := g.prodNumbers[prodKey(lhs, rhs)]
	return n, ok
}

func prodKey(lhs string, rhs []string) string {
	return lhs + "\x00" + strings.Join(rhs, "\x00")
}

// BuildGrammar ingests grammar text per §4.1 and returns an immutable
// Grammar with the augmented start production attached.
//
// Productions are terminated by ".". Within a production, "lhs : alt1 |
// alt2 | ... | altN", each alternative a whitespace-separated symbol
// sequence, "@" denoting epsilon. Trailing newlines are ignored.
func BuildGrammar(text string, start string) (*Grammar, error) {
	g := &Grammar{
		start:        start,
		alternatives: map[string][]*Production{},
		terminals:    map[string]struct{}{},
		prodNumbers:  map[string]int{},
	}

	lines := strings.Split(strings.ReplaceAll(text, "\n", ""), ".")
	number := 0
	for _, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, &clrperr.GrammarSyntax{Line: line, Reason: "production has no ':' separating lhs from alternatives"}
		}
		lhs := strings.TrimSpace(parts[0])
		if lhs == "" {
			return nil, &clrperr.GrammarSyntax{Line: line, Reason: "production has an empty lhs"}
		}

		if _, seen := g.alternatives[lhs]; !seen {
			g.order = append(g.order, lhs)
			g.alternatives[lhs] = nil
		}

		for _, altText := range strings.Split(parts[1], "|") {
			fields := strings.Fields(altText)
			if len(fields) == 0 {
				return nil, &clrperr.GrammarSyntax{Line: line, Reason: "alternative has no symbols (use '@' for epsilon)"}
			}

			rhs := make([]string, 0, len(fields))
			for _, f := range fields {
				if f == "@" {
					if len(fields) != 1 {
						return nil, &clrperr.GrammarSyntax{Line: line, Reason: "'@' must be the only symbol in its alternative"}
					}
					rhs = append(rhs, epsilon)
					continue
				}
				rhs = append(rhs, f)
			}

			prod := &Production{Number: number, LHS: lhs, RHS: rhs}
			g.alternatives[lhs] = append(g.alternatives[lhs], prod)
			g.allProductions = append(g.allProductions, prod)
			g.prodNumbers[prodKey(lhs, rhs)] = number
			number++

			for _, sym := range rhs {
				if isTerminal(sym) {
					if _, known := g.terminals[sym]; !known {
						g.terminals[sym] = struct{}{}
						g.termOrder = append(g.termOrder, sym)
					}
				}
			}
		}
	}

	g.augmented = &Production{Number: -1, LHS: augmentedStart, RHS: []string{start}}
	g.prodNumbers[prodKey(augmentedStart, []string{start})] = -1

	return g, nil
}
