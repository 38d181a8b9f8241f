package clr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: arithmetic grammar, accepts and builds the expected shape of tree.
func TestBuild_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	p, err := Build(`
		expr : expr Plus term | term .
		term : term Star factor | factor .
		factor : LParen expr RParen | Num .
	`, "expr", GeneratorConfig{})
	require.NoError(t, err)
	assert.Empty(p.Conflicts(), "unambiguous grammar should resolve with no conflicts")

	result, err := p.Parse([]string{"Num", "Plus", "Num", "Star", "Num"}, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)

	top, ok := result[0].(*ParseNode)
	require.True(t, ok)
	assert.Equal("expr", top.Symbol)

	// expr -> expr Plus term, with the right operand term -> term Star factor.
	require.Len(t, top.Children, 3)
	assert.Equal("Plus", top.Children[1])
	right, ok := top.Children[2].(*ParseNode)
	require.True(t, ok)
	assert.Equal("term", right.Symbol)
	require.Len(t, right.Children, 3)
	assert.Equal("Star", right.Children[1])
}

// S2: epsilon-production list grammar; "X X" must be accepted, leaving a
// single value on the node stack.
func TestBuild_EpsilonList(t *testing.T) {
	p, err := Build(`
		list : items .
		items : items item | @ .
		item : X .
	`, "list", GeneratorConfig{})
	require.NoError(t, err)

	result, err := p.Parse([]string{"X", "X"}, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
}

// S3: dangling-else style grammar forces a shift/reduce conflict; the
// generator must resolve in favor of shift, emit one diagnostic, and still
// accept matching input.
func TestBuild_ShiftReduceConflict(t *testing.T) {
	assert := assert.New(t)

	p, err := Build(`stmt : If stmt Else stmt | If stmt | Other .`, "stmt", GeneratorConfig{})
	require.NoError(t, err)

	conflicts := p.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal("shift/reduce", conflicts[0].Kind)

	_, err = p.Parse([]string{"If", "Other"}, nil)
	assert.NoError(err)

	_, err = p.Parse([]string{"If", "If", "Other", "Else", "Other"}, nil)
	assert.NoError(err)
}

// S4: two productions reduce to identical cores in the same state; the
// earlier-listed production wins, with one diagnostic emitted.
func TestBuild_ReduceReduceConflict(t *testing.T) {
	assert := assert.New(t)

	p, err := Build(`
		s : a | b .
		a : X .
		b : X .
	`, "s", GeneratorConfig{})
	require.NoError(t, err)

	conflicts := p.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal("reduce/reduce", conflicts[0].Kind)

	result, err := p.Parse([]string{"X"}, nil)
	require.NoError(t, err)
	top := result[0].(*ParseNode)
	assert.Equal("a", top.Children[0].(*ParseNode).Symbol, "earlier production (a -> X) must win")
}

// S5: trailing garbage after what would otherwise be a complete parse must
// fail, not silently succeed. The completed state's row has no entry for a
// non-"$" lookahead, so this surfaces as the same ParseError a bad token
// anywhere else would (the Python reference raises its own ParseError here
// too, never a bespoke "garbage" exception).
func TestBuild_GarbageAfterAccept(t *testing.T) {
	p, err := Build(`s : A .`, "s", GeneratorConfig{})
	require.NoError(t, err)

	_, err = p.Parse([]string{"A", "A"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transition in table")
}

// Conflict determinism (Testable Property 6): regenerating the table from
// the same grammar text produces the same resolved actions.
func TestBuild_Deterministic(t *testing.T) {
	assert := assert.New(t)

	grammarText := `expr : expr Plus term | term . term : Id .`

	p1, err := Build(grammarText, "expr", GeneratorConfig{})
	require.NoError(t, err)
	p2, err := Build(grammarText, "expr", GeneratorConfig{})
	require.NoError(t, err)

	assert.Equal(len(p1.Table().Actions), len(p2.Table().Actions))
	for s, row := range p1.Table().Actions {
		for sym, act := range row {
			assert.Equal(act.String(), p2.Table().Actions[s][sym].String())
		}
	}
}

// §6: Emit produces the machine-readable table form, distinct from the
// human-readable DumpTable/DumpStates diagnostics.
func TestBuild_Emit(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p, err := Build(`expr : expr Plus term | term . term : Num .`, "expr", GeneratorConfig{})
	require.NoError(err)

	var sb strings.Builder
	require.NoError(p.Emit(&sb))

	out := sb.String()
	assert.NotEmpty(out)
	assert.Contains(out, "Shift(")
	assert.Contains(out, "Reduce(")
	assert.Contains(out, "Accept()")
	assert.Contains(out, `"Num"`)

	// deterministic: emitting the same table twice produces the same text.
	var sb2 strings.Builder
	require.NoError(p.Emit(&sb2))
	assert.Equal(out, sb2.String())
}

func TestDriver_DispatchMode(t *testing.T) {
	assert := assert.New(t)

	p, err := Build(`expr : expr Plus term | term . term : Num .`, "expr", GeneratorConfig{})
	require.NoError(t, err)

	dispatch := Dispatch{
		"expr": func(children []interface{}) interface{} {
			if len(children) == 1 {
				return children[0]
			}
			return children[0].(int) + children[2].(int)
		},
		"term": func(children []interface{}) interface{} {
			return 1
		},
	}

	result, err := p.Parse([]string{"Num", "Plus", "Num", "Plus", "Num"}, dispatch)
	require.NoError(t, err)
	assert.Equal(3, result[0])
}
