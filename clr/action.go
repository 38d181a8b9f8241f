package clr

import (
	"fmt"

	"github.com/dekarrin/clrp/clrperr"
)

// ActionKind tags the variant held by an Action (§3).
type ActionKind int

const (
	ActionShift ActionKind = iota
	ActionReduce
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is a tagged variant: Shift(target state), Reduce(lhs, rhs), or
// Accept. A goto entry is stored separately in the table as a plain state
// id, not as an Action (§3).
type Action struct {
	Kind ActionKind

	// Target is the state to shift to. Valid only when Kind == ActionShift.
	Target int

	// LHS and RHS identify the production to reduce by. Valid only when
	// Kind == ActionReduce.
	LHS string
	RHS []string
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift and goto state %d", a.Target)
	case ActionReduce:
		return fmt.Sprintf("reduce %s -> %s", a.LHS, rhsString(a.RHS))
	case ActionAccept:
		return "accept"
	default:
		return "?"
	}
}

// machine renders the action in the machine-readable constructor form used
// by Emit, mirroring the Python reference's Shift/Reduce/Accept.make().
func (a Action) machine() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("Shift(%d)", a.Target)
	case ActionReduce:
		return fmt.Sprintf("Reduce(%q, %s)", a.LHS, rhsList(a.RHS))
	case ActionAccept:
		return "Accept()"
	default:
		return "?"
	}
}

func rhsList(rhs []string) string {
	out := "["
	for i, s := range rhs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", s)
	}
	return out + "]"
}

func rhsString(rhs []string) string {
	if len(rhs) == 1 && rhs[0] == epsilon {
		return "@"
	}
	out := ""
	for i, s := range rhs {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}

// resolveConflict applies the policy of §4.5: an empty slot takes the new
// action; an existing Shift beats a new Reduce; between two Reduces, the
// earlier-numbered production wins. It reports a GrammarConflict diagnostic
// whenever the slot was already occupied.
func resolveConflict(existing *Action, candidate Action, g *Grammar, state int, symbol string, onConflict func(clrperr.GrammarConflict)) Action {
	if existing == nil {
		return candidate
	}

	if existing.Kind == ActionShift {
		if onConflict != nil {
			onConflict(clrperr.GrammarConflict{
				State:      state,
				Symbol:     symbol,
				Kind:       "shift/reduce",
				Resolution: existing.String(),
			})
		}
		return *existing
	}

	// existing.Kind == ActionReduce (Shift/Shift and Accept/* collisions
	// cannot arise with this construction order; see §4.5).
	existingNum, _ := g.ProductionNumber(existing.LHS, existing.RHS)
	candidateNum, _ := g.ProductionNumber(candidate.LHS, candidate.RHS)

	winner := *existing
	if candidateNum < existingNum {
		winner = candidate
	}
	if onConflict != nil {
		onConflict(clrperr.GrammarConflict{
			State:      state,
			Symbol:     symbol,
			Kind:       "reduce/reduce",
			Resolution: winner.String(),
		})
	}
	return winner
}
