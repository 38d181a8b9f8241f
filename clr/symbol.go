package clr

// Symbols are plain strings. Case establishes the terminal/non-terminal
// distinction (§3 of the spec this package implements): a symbol whose
// first byte is an uppercase ASCII letter is a terminal, everything else is
// a non-terminal. "@" in grammar text denotes epsilon and is carried
// internally as the distinguished empty string.

const (
	// epsilon is the distinguished empty-sequence marker. It is never a
	// valid symbol name (ingestion rejects empty symbols outside of "@"),
	// so it is safe to use as a sentinel inside RHS slices and FIRST sets.
	epsilon = ""

	// endOfInput is the reserved end-of-input terminal appended by the
	// parse driver.
	endOfInput = "$"

	// augmentedStart is the reserved augmented start non-terminal.
	augmentedStart = ".start"
)

func isTerminal(sym string) bool {
	if sym == epsilon {
		return false
	}
	c := sym[0]
	return c >= 'A' && c <= 'Z'
}

func isNonTerminal(sym string) bool {
	return sym != epsilon && !isTerminal(sym)
}
