package clr

import (
	"testing"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFirstSets(t *testing.T) {
	assert := assert.New(t)

	g, err := BuildGrammar(`
		expr : term expr_tail .
		expr_tail : Plus term expr_tail | @ .
		term : Id .
	`, "expr")
	require.NoError(t, err)

	fs := computeFirstSets(g)

	assert.True(fs.of("expr").Contains("Id"))
	assert.True(fs.of("term").Contains("Id"))
	assert.True(fs.of("expr_tail").Contains("Plus"))
	assert.True(fs.of("expr_tail").Contains(epsilon))
	assert.False(fs.of("expr").Contains(epsilon), "expr always starts with a term, never nullable")
}

func TestFirstOfSequenceWithLookahead_NonNullableBeta(t *testing.T) {
	assert := assert.New(t)

	g, err := BuildGrammar(`s : A b C . b : B .`, "s")
	require.NoError(t, err)
	fs := computeFirstSets(g)

	lookahead := hashset.New()
	lookahead.Add("$")

	result := firstOfSequenceWithLookahead(fs, []string{"C"}, lookahead)
	assert.True(result.Contains("C"))
	assert.False(result.Contains("$"), "beta is non-nullable, so the lookahead set must not leak in")
}

func TestFirstOfSequenceWithLookahead_NullableBeta(t *testing.T) {
	assert := assert.New(t)

	g, err := BuildGrammar(`s : A b . b : B | @ .`, "s")
	require.NoError(t, err)
	fs := computeFirstSets(g)

	lookahead := hashset.New()
	lookahead.Add("$")
	lookahead.Add("Plus")

	// beta is empty here (b is the rightmost symbol of its production), so
	// the whole lookahead set must be unioned in.
	result := firstOfSequenceWithLookahead(fs, []string{}, lookahead)
	assert.True(result.Contains("$"))
	assert.True(result.Contains("Plus"))
}
