package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6: pattern a(b|c)*d against "abcbd xx ad" finds "abcbd" at [0,5) and
// "ad" at [9,11).
func TestFindAll_S6(t *testing.T) {
	assert := assert.New(t)

	re, err := Compile("a(b|c)*d")
	require.NoError(t, err)

	matches := re.FindAll("abcbd xx ad")
	require.Len(t, matches, 2)

	assert.Equal([2]int{0, 5}, matches[0].Span)
	assert.Equal("abcbd", matches[0].Text)
	assert.Equal([2]int{9, 11}, matches[1].Span)
	assert.Equal("ad", matches[1].Text)
}

func TestCheck_Basic(t *testing.T) {
	assert := assert.New(t)

	re, err := Compile("a(b|c)*d")
	require.NoError(t, err)

	assert.True(re.Check("ad"))
	assert.True(re.Check("abcbcbcd"))
	assert.False(re.Check("abc"))
	assert.False(re.Check("x"))
}

func TestFullMatch(t *testing.T) {
	assert := assert.New(t)

	re, err := Compile("ab+")
	require.NoError(t, err)

	m, ok := re.FullMatch("abbb")
	require.True(t, ok)
	assert.Equal("abbb", m.Text)

	_, ok = re.FullMatch("xabbb")
	assert.False(ok)
}

// §9 open question 3: fullmatch("") accepts iff the initial state is
// itself accepting.
func TestFullMatch_EmptyString(t *testing.T) {
	assert := assert.New(t)

	nullable, err := Compile("a*")
	require.NoError(t, err)
	_, ok := nullable.FullMatch("")
	assert.True(ok, "a* accepts the empty string")

	notNullable, err := Compile("a+")
	require.NoError(t, err)
	_, ok = notNullable.FullMatch("")
	assert.False(ok, "a+ does not accept the empty string")
}

func TestWildcardAndSets(t *testing.T) {
	assert := assert.New(t)

	dot, err := Compile("a.c")
	require.NoError(t, err)
	assert.True(dot.Check("abc"))
	assert.True(dot.Check("azc"))
	assert.False(dot.Check("ac"))

	set, err := Compile("[a-c]+")
	require.NoError(t, err)
	assert.True(set.Check("abccba"))
	assert.False(set.Check("abcd"))

	neg, err := Compile("[^a-c]+")
	require.NoError(t, err)
	assert.True(neg.Check("xyz"))
	assert.False(neg.Check("xyzc"))
}

func TestEscapeSequences(t *testing.T) {
	assert := assert.New(t)

	re, err := Compile(`a\sb`)
	require.NoError(t, err)
	assert.True(re.Check("a b"))

	lit, err := Compile(`a\*b`)
	require.NoError(t, err)
	assert.True(lit.Check("a*b"))
	assert.False(lit.Check("aab"))
}

func TestFindIter_MatchesSequentially(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	re, err := Compile("a+")
	require.NoError(err)

	it := re.FindIter("aa b aaa")
	m1, ok := it.Next()
	require.True(ok)
	assert.Equal("aa", m1.Text)

	m2, ok := it.Next()
	require.True(ok)
	assert.Equal("aaa", m2.Text)

	_, ok = it.Next()
	assert.False(ok)
}
