package regex

// alphabetSize is the byte-valued alphabet Σ used by Wildcard and set
// expansions: every byte in [0, 256), resolving the open question of
// whether to stop at 255 (§9 open question 2).
const alphabetSize = 256

// node is a regex AST node: it exposes the annotations every node kind
// computes at construction time (§3) and contributes to a shared followpos
// map keyed by leaf position.
type node interface {
	isNullable() bool
	firstPos() map[int]struct{}
	lastPos() map[int]struct{}
}

// followTable is the shared, mutable followpos map every leaf position
// indexes into. It is threaded through construction and frozen once the
// whole tree is built (§3 "Ownership and lifecycle").
type followTable struct {
	m map[int]map[int]struct{}
}

func newFollowTable() *followTable {
	return &followTable{m: map[int]map[int]struct{}{}}
}

func (f *followTable) of(pos int) map[int]struct{} {
	if s, ok := f.m[pos]; ok {
		return s
	}
	s := map[int]struct{}{}
	f.m[pos] = s
	return s
}

func (f *followTable) augment(positions map[int]struct{}, with map[int]struct{}) {
	for pos := range positions {
		dst := f.of(pos)
		for w := range with {
			dst[w] = struct{}{}
		}
	}
}

func setOf(positions ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

func union(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(a)+len(b))
	for p := range a {
		out[p] = struct{}{}
	}
	for p := range b {
		out[p] = struct{}{}
	}
	return out
}

// sentinelChar marks the synthetic accept leaf appended by wrapping a
// pattern as "(R)#" (§4.7). It is outside the real byte alphabet
// [0, alphabetSize), so no input byte can ever transition into it;
// reaching a DFA state whose composition contains this leaf's position is
// exactly what makes that state accepting.
const sentinelChar = alphabetSize

// basic is a single literal leaf: one byte (or the sentinel) at one
// position.
type basic struct {
	char int
	pos  int
}

func newBasic(char int, pos int) *basic {
	return &basic{char: char, pos: pos}
}

func (b *basic) isNullable() bool           { return false }
func (b *basic) firstPos() map[int]struct{} { return setOf(b.pos) }
func (b *basic) lastPos() map[int]struct{}  { return setOf(b.pos) }

// alt is union: a|b.
type alt struct {
	a, b     node
	nullable bool
	first    map[int]struct{}
	last     map[int]struct{}
}

func newAlt(a, b node) *alt {
	return &alt{
		a: a, b: b,
		nullable: a.isNullable() || b.isNullable(),
		first:    union(a.firstPos(), b.firstPos()),
		last:     union(a.lastPos(), b.lastPos()),
	}
}

func (n *alt) isNullable() bool           { return n.nullable }
func (n *alt) firstPos() map[int]struct{} { return n.first }
func (n *alt) lastPos() map[int]struct{}  { return n.last }

// concat is sequence: ab.
type concat struct {
	a, b     node
	nullable bool
	first    map[int]struct{}
	last     map[int]struct{}
}

func newConcat(ft *followTable, a, b node) *concat {
	n := &concat{a: a, b: b, nullable: a.isNullable() && b.isNullable()}

	if a.isNullable() {
		n.first = union(a.firstPos(), b.firstPos())
	} else {
		n.first = a.firstPos()
	}
	if b.isNullable() {
		n.last = union(a.lastPos(), b.lastPos())
	} else {
		n.last = b.lastPos()
	}

	ft.augment(a.lastPos(), b.firstPos())
	return n
}

func (n *concat) isNullable() bool           { return n.nullable }
func (n *concat) firstPos() map[int]struct{} { return n.first }
func (n *concat) lastPos() map[int]struct{}  { return n.last }

// zeroOrMore is n* : always nullable, positions unchanged, lastpos leaves
// feed back into firstpos.
type zeroOrMore struct {
	child node
	first map[int]struct{}
	last  map[int]struct{}
}

func newZeroOrMore(ft *followTable, child node) *zeroOrMore {
	n := &zeroOrMore{child: child, first: child.firstPos(), last: child.lastPos()}
	ft.augment(n.last, n.first)
	return n
}

func (n *zeroOrMore) isNullable() bool           { return true }
func (n *zeroOrMore) firstPos() map[int]struct{} { return n.first }
func (n *zeroOrMore) lastPos() map[int]struct{}  { return n.last }

// oneOrMore is n+ : nullable iff the child is, otherwise identical wiring
// to zeroOrMore.
type oneOrMore struct {
	child    node
	nullable bool
	first    map[int]struct{}
	last     map[int]struct{}
}

func newOneOrMore(ft *followTable, child node) *oneOrMore {
	n := &oneOrMore{child: child, nullable: child.isNullable(), first: child.firstPos(), last: child.lastPos()}
	ft.augment(n.last, n.first)
	return n
}

func (n *oneOrMore) isNullable() bool           { return n.nullable }
func (n *oneOrMore) firstPos() map[int]struct{} { return n.first }
func (n *oneOrMore) lastPos() map[int]struct{}  { return n.last }

// zeroOrOne is n? : always nullable, positions unchanged, no followpos
// contribution beyond whatever the child already wired up.
type zeroOrOne struct {
	child node
}

func newZeroOrOne(child node) *zeroOrOne {
	return &zeroOrOne{child: child}
}

func (n *zeroOrOne) isNullable() bool           { return true }
func (n *zeroOrOne) firstPos() map[int]struct{} { return n.child.firstPos() }
func (n *zeroOrOne) lastPos() map[int]struct{}  { return n.child.lastPos() }

// leafSet expands into one Basic leaf per selected byte, shared by
// Wildcard, PositiveSet, and NegativeSet. posCounter is advanced by one per
// leaf allocated.
type leafSet struct {
	leaves map[int]*basic
	first  map[int]struct{}
	last   map[int]struct{}
}

func newLeafSet(posCounter *int, chars []int) *leafSet {
	n := &leafSet{leaves: map[int]*basic{}, first: map[int]struct{}{}, last: map[int]struct{}{}}
	for _, c := range chars {
		b := newBasic(c, *posCounter)
		n.leaves[*posCounter] = b
		n.first[*posCounter] = struct{}{}
		n.last[*posCounter] = struct{}{}
		*posCounter++
	}
	return n
}

func (n *leafSet) isNullable() bool           { return false }
func (n *leafSet) firstPos() map[int]struct{} { return n.first }
func (n *leafSet) lastPos() map[int]struct{}  { return n.last }

// newSentinel allocates the single leaf for the "#" marker appended by
// wrapping a pattern as "(R)#" (§4.7): its position is the final-state
// marker referenced throughout DFA construction and scanning.
func newSentinel(posCounter *int) *basic {
	b := newBasic(sentinelChar, *posCounter)
	*posCounter++
	return b
}

// newWildcard expands "." into one Basic leaf per byte in [0, alphabetSize).
func newWildcard(posCounter *int) *leafSet {
	chars := make([]int, alphabetSize)
	for i := range chars {
		chars[i] = i
	}
	return newLeafSet(posCounter, chars)
}

// newPositiveSet expands a bracket expression's literals and a-z style
// ranges into one Basic leaf per matched byte, in the order the items were
// written.
func newPositiveSet(posCounter *int, bytes []byte) *leafSet {
	chars := make([]int, len(bytes))
	for i, b := range bytes {
		chars[i] = int(b)
	}
	return newLeafSet(posCounter, chars)
}

// newNegativeSet expands "[^...]" into one Basic leaf per byte in
// [0, alphabetSize) that is NOT named by the bracket's items, resolving the
// open question of what "complement" means here (§9 open question 1): the
// true complement over Σ = [0, 256), not merely "not one of the listed
// ranges restricted to some narrower domain".
func newNegativeSet(posCounter *int, excluded []byte) *leafSet {
	excludedSet := make(map[byte]struct{}, len(excluded))
	for _, b := range excluded {
		excludedSet[b] = struct{}{}
	}
	var chars []int
	for i := 0; i < alphabetSize; i++ {
		b := byte(i)
		if _, skip := excludedSet[b]; !skip {
			chars = append(chars, int(b))
		}
	}
	return newLeafSet(posCounter, chars)
}
