package regex

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
)

// DumpStates renders every DFA state's composition and its transition
// table, matching the original's dump_states diagnostic view.
func (r *Regexp) DumpStates(colorize bool) string {
	out := ""
	header := fmt.Sprintf("DFA states for /%s/ (build %s)", r.Source, r.ID)
	if colorize {
		out += pterm.DefaultHeader.Sprint(header) + "\n"
	} else {
		out += header + "\n"
	}

	ids := make([]int, 0, len(r.dfa.states))
	for id := range r.dfa.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		s := r.dfa.byID[id]
		label := fmt.Sprintf("state %d: composition=%s%s", id, formatComposition(s.composition), acceptSuffix(r, s))
		if colorize {
			out += pterm.Bold.Sprint(label) + "\n"
		} else {
			out += label + "\n"
		}

		letters := make([]int, 0, len(s.transitions))
		for l := range s.transitions {
			letters = append(letters, l)
		}
		sort.Ints(letters)
		for _, l := range letters {
			out += fmt.Sprintf("  goto state %d upon %s\n", s.transitions[l], formatLetter(l))
		}
	}
	return out
}

func acceptSuffix(r *Regexp, s *dfaState) string {
	if r.dfa.isAccepting(s) {
		return " (accepting)"
	}
	return ""
}

func formatComposition(composition map[int]struct{}) string {
	positions := make([]int, 0, len(composition))
	for p := range composition {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return fmt.Sprintf("%v", positions)
}

func formatLetter(l int) string {
	if l >= 32 && l < 127 {
		return fmt.Sprintf("%q", byte(l))
	}
	return fmt.Sprintf("0x%02x", l)
}
