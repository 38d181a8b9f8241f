package clr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrammar_Basic(t *testing.T) {
	assert := assert.New(t)

	g, err := BuildGrammar(`
		expr : expr Plus term | term .
		term : Id .
	`, "expr")
	require.NoError(t, err)

	assert.Equal("expr", g.StartSymbol())
	assert.ElementsMatch([]string{"expr", "term"}, g.NonTerminalsInOrder())
	assert.ElementsMatch([]string{"Plus", "Id"}, g.Terminals())

	exprAlts := g.Alternatives("expr")
	require.Len(t, exprAlts, 2)
	assert.Equal(0, exprAlts[0].Number)
	assert.Equal([]string{"expr", "Plus", "term"}, exprAlts[0].RHS)
	assert.Equal(1, exprAlts[1].Number)

	aug := g.Augmented()
	assert.Equal(-1, aug.Number)
	assert.Equal(".start", aug.LHS)
	assert.Equal([]string{"expr"}, aug.RHS)
}

func TestBuildGrammar_Epsilon(t *testing.T) {
	assert := assert.New(t)

	g, err := BuildGrammar(`list : item list | @ . item : Id .`, "list")
	require.NoError(t, err)

	listAlts := g.Alternatives("list")
	require.Len(t, listAlts, 2)
	assert.True(listAlts[1].IsEmpty())
	assert.Equal(0, listAlts[1].Len())
}

func TestBuildGrammar_SyntaxErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := BuildGrammar(`expr expr Plus term .`, "expr")
	assert.Error(err)

	_, err = BuildGrammar(`: expr Plus term .`, "expr")
	assert.Error(err)

	_, err = BuildGrammar(`expr : Id Plus @ .`, "expr")
	assert.Error(err, "'@' must be the sole symbol in its alternative")
}

func TestIsTerminal(t *testing.T) {
	assert := assert.New(t)
	assert.True(isTerminal("Id"))
	assert.True(isTerminal("Plus"))
	assert.False(isTerminal("expr"))
	assert.False(isTerminal(epsilon))
}
