package clr

import (
	"fmt"
	"io"
	"sort"

	"github.com/dekarrin/clrp/clrperr"
	"github.com/google/uuid"
)

// Parser is the built artifact of the generator: a Grammar, its FIRST sets,
// the canonical collection, and the resolved action/goto table, plus a
// build identity used to tell separate generations of the same grammar
// apart in logs and dumps.
type Parser struct {
	ID     uuid.UUID
	Config GeneratorConfig

	grammar    *Grammar
	first      *firstSets
	collection *collection
	table      *ParseTable
	conflicts  []clrperr.GrammarConflict
}

// Grammar returns the ingested grammar backing this Parser.
func (p *Parser) Grammar() *Grammar { return p.grammar }

// Table returns the built action/goto table.
func (p *Parser) Table() *ParseTable { return p.table }

// Conflicts returns every GrammarConflict diagnostic resolved while
// building the table, in resolution order.
func (p *Parser) Conflicts() []clrperr.GrammarConflict {
	out := make([]clrperr.GrammarConflict, len(p.conflicts))
	copy(out, p.conflicts)
	return out
}

// Build ingests grammarText per §4.1, computes FIRST sets (§4.2), builds
// the canonical LR(1) collection (§4.4), and resolves the action/goto table
// (§4.5), producing a Parser ready to drive token streams.
func Build(grammarText string, start string, cfg GeneratorConfig) (*Parser, error) {
	g, err := BuildGrammar(grammarText, start)
	if err != nil {
		return nil, err
	}

	fs := computeFirstSets(g)
	coll := buildCanonicalCollection(g, fs)

	p := &Parser{
		ID:         uuid.New(),
		Config:     cfg,
		grammar:    g,
		first:      fs,
		collection: coll,
	}

	onConflict := func(c clrperr.GrammarConflict) {
		p.conflicts = append(p.conflicts, c)
		if cfg.ReportConflicts {
			fmt.Fprintln(cfg.sink(), c.String())
		}
	}

	p.table = buildTable(g, coll, onConflict)
	return p, nil
}

// NewDriver returns a fresh Driver bound to this Parser's table.
func (p *Parser) NewDriver() *Driver {
	return NewDriver(p.table)
}

// Parse drives tokens through this Parser's table in one call, a
// convenience wrapper around NewDriver().Run for callers that don't need a
// persistent Driver (e.g. to register a Trace listener).
func (p *Parser) Parse(tokens []string, dispatch Dispatch) ([]interface{}, error) {
	return p.NewDriver().Run(tokens, dispatch)
}

// Emit serializes the finished (state-id, symbol) -> Action table into its
// machine-readable string form (§6: "emit(sink) -> serialize the finished
// table via an external template; the core's responsibility ends at
// producing the table's string form"). One entry is written per line, keyed
// like the table itself and sorted by state then symbol for determinism;
// an Action renders via its constructor form (Shift/Reduce/Accept) and a
// goto entry renders as the bare target state id. Building the template
// that would turn this into a runnable parser is the caller's concern, not
// the generator's, per §6 and §5's "core ends at the table" boundary.
//
// Grounded on the Python reference's Parser.make_table, which walks the
// same (state, symbol) -> value dict and defers to each Action's own
// make().
func (p *Parser) Emit(sink io.Writer) error {
	states := make([]int, 0, len(p.table.Actions)+len(p.table.Gotos))
	seen := make(map[int]struct{})
	addState := func(s int) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			states = append(states, s)
		}
	}
	for s := range p.table.Actions {
		addState(s)
	}
	for s := range p.table.Gotos {
		addState(s)
	}
	sort.Ints(states)

	for _, s := range states {
		symbols := make([]string, 0, len(p.table.Actions[s])+len(p.table.Gotos[s]))
		for sym := range p.table.Actions[s] {
			symbols = append(symbols, sym)
		}
		for sym := range p.table.Gotos[s] {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)

		for _, sym := range symbols {
			if a, ok := p.table.Actions[s][sym]; ok {
				if _, err := fmt.Fprintf(sink, "(%d, %q): %s,\n", s, sym, a.machine()); err != nil {
					return err
				}
				continue
			}
			target := p.table.Gotos[s][sym]
			if _, err := fmt.Fprintf(sink, "(%d, %q): %d,\n", s, sym, target); err != nil {
				return err
			}
		}
	}
	return nil
}
