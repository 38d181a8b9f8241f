package clr

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/pterm/pterm"
)

// DumpStates renders every state's closed item set, one block per state,
// matching the original's dump_states diagnostic view.
func (p *Parser) DumpStates() string {
	out := ""
	header := fmt.Sprintf("CLR(1) states (build %s)", p.ID)
	if p.Config.Colorize {
		out += pterm.DefaultHeader.Sprint(header) + "\n"
	} else {
		out += header + "\n"
	}

	for _, s := range p.collection.states {
		label := fmt.Sprintf("state %d", s.id)
		if p.Config.Colorize {
			out += pterm.Bold.Sprint(label) + "\n"
		} else {
			out += label + "\n"
		}
		for _, it := range s.orderedItems() {
			out += "  " + it.dump() + "\n"
		}
	}
	return out
}

// DumpTable renders the action/goto table as a column grid, terminals then
// non-terminals, via rosed.InsertTableOpts the same way the teacher's
// canonicalLR1Table.String renders its own table.
func (p *Parser) DumpTable() string {
	terms := append(append([]string{}, p.grammar.Terminals()...), endOfInput)
	nonTerms := p.grammar.NonTerminalsInOrder()

	stateIDs := make([]int, 0, len(p.collection.states))
	for _, s := range p.collection.states {
		stateIDs = append(stateIDs, s.id)
	}
	sort.Ints(stateIDs)

	header := append([]string{"state", "|"}, terms...)
	header = append(header, "|")
	header = append(header, nonTerms...)

	data := [][]string{header}
	for _, id := range stateIDs {
		row := []string{fmt.Sprintf("%d", id), "|"}
		for _, t := range terms {
			cell := ""
			if act, ok := p.table.Actions[id][t]; ok {
				switch act.Kind {
				case ActionShift:
					cell = fmt.Sprintf("s%d", act.Target)
				case ActionReduce:
					cell = fmt.Sprintf("r%s -> %s", act.LHS, rhsString(act.RHS))
				case ActionAccept:
					cell = "acc"
				}
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			cell := ""
			if target, ok := p.table.Gotos[id][nt]; ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	warnings := ""
	if p.Config.ReportConflicts && len(p.conflicts) > 0 {
		for _, c := range p.conflicts {
			if p.Config.Colorize {
				warnings += pterm.Warning.Sprint(c.String()) + "\n"
			} else {
				warnings += c.String() + "\n"
			}
		}
	}

	table := rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	return warnings + table
}
