package regex

import (
	"github.com/google/uuid"
)

// builder owns the position counter, the leaf registry, and the shared
// followpos table during AST construction, mirroring the instance state
// RegularExpression keeps in the original (self.pos, self.basic_nodes,
// self.alphabet).
type builder struct {
	pos      int
	leaves   map[int]*basic
	alphabet map[int]struct{}
	follow   *followTable
}

func newBuilder() *builder {
	return &builder{
		pos:      1,
		leaves:   map[int]*basic{},
		alphabet: map[int]struct{}{},
		follow:   newFollowTable(),
	}
}

func (b *builder) register(leaf *basic) {
	b.leaves[leaf.pos] = leaf
	if leaf.char != sentinelChar {
		b.alphabet[leaf.char] = struct{}{}
	}
}

func (b *builder) registerSet(ls *leafSet) {
	for _, leaf := range ls.leaves {
		b.register(leaf)
	}
}

func (b *builder) newChar(c byte) *basic {
	leaf := newBasic(int(c), b.pos)
	b.pos++
	b.register(leaf)
	return leaf
}

func (b *builder) newSentinelLeaf() *basic {
	leaf := newSentinel(&b.pos)
	b.register(leaf)
	return leaf
}

func (b *builder) newWildcardNode() *leafSet {
	ls := newWildcard(&b.pos)
	b.registerSet(ls)
	return ls
}

func (b *builder) newPositiveSetNode(bytes []byte) *leafSet {
	ls := newPositiveSet(&b.pos, bytes)
	b.registerSet(ls)
	return ls
}

func (b *builder) newNegativeSetNode(excluded []byte) *leafSet {
	ls := newNegativeSet(&b.pos, excluded)
	b.registerSet(ls)
	return ls
}

func (b *builder) newConcatNode(a, c node) *concat {
	return newConcat(b.follow, a, c)
}

func (b *builder) newZeroOrMoreNode(n node) *zeroOrMore {
	return newZeroOrMore(b.follow, n)
}

func (b *builder) newOneOrMoreNode(n node) *oneOrMore {
	return newOneOrMore(b.follow, n)
}

// Regexp is a compiled regular expression: its AST has been reduced to a
// DFA and the original tree is no longer needed for scanning.
type Regexp struct {
	ID      uuid.UUID
	Source  string
	dfa     *dfa
	builder *builder
}

// Compile builds a Regexp from pattern using the default Lexer. Use
// CompileWithTokenizer to supply a different Tokenizer.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithTokenizer(pattern, Lexer{})
}

// CompileWithTokenizer builds a Regexp from pattern's token sequence,
// wrapping the pattern as "(pattern)#" so a sentinel leaf marks acceptance
// (§4.7), then running AST construction and DFA construction (§4.8).
func CompileWithTokenizer(pattern string, tok Tokenizer) (*Regexp, error) {
	wrapped := "(" + pattern + ")"
	tokens := tok.Lex(wrapped)

	b := newBuilder()
	p := &astParser{tokens: tokens, pos: 0, build: b}

	root, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.pos != len(tokens) {
		return nil, syntaxErr(p.pos, "trailing input after pattern")
	}

	sentinel := b.newSentinelLeaf()
	full := b.newConcatNode(root, sentinel)

	d := buildDFA(full, b, sentinel.pos)

	return &Regexp{
		ID:      uuid.New(),
		Source:  pattern,
		dfa:     d,
		builder: b,
	}, nil
}
