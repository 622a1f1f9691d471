package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForName(t *testing.T) {
	require.Equal(t, "fzf", ForName("fzf").Name())
	require.Equal(t, "sahilm", ForName("sahilm").Name())
	require.Equal(t, "fzf", ForName("").Name(), "empty name defaults to fzf")
	require.Equal(t, "fzf", ForName("nonsense").Name(), "unknown name falls back to fzf")
}

func TestFzfSubstringMatch(t *testing.T) {
	session := NewFzf().NewSession("bar")

	score, ok := session.Score("foo bar")
	require.True(t, ok, "substring should match")
	require.Positive(t, score)

	_, ok = session.Score("hello world")
	require.False(t, ok, "unrelated text should not match")
}

func TestFzfNonContiguousMatch(t *testing.T) {
	session := NewFzf().NewSession("plk")

	score, ok := session.Score("pooling leak")
	require.True(t, ok, "scattered pattern runes should still match")
	require.Positive(t, score)
}

func TestFzfSmartCase(t *testing.T) {
	lower := NewFzf().NewSession("pooling")
	_, ok := lower.Score("Fix Connection Pooling")
	require.True(t, ok, "lower-case pattern matches any case")

	upper := NewFzf().NewSession("Pooling")
	_, ok = upper.Score("Fix Connection Pooling")
	require.True(t, ok, "upper-case pattern matches exact case")

	_, ok = upper.Score("fix connection pooling")
	require.False(t, ok, "upper-case pattern is case sensitive")
}

func TestFzfPositionsAscendingAndInRange(t *testing.T) {
	session := NewFzf().NewSession("bar")

	text := "foo bar baz"
	positions := session.Positions(text)
	require.NotEmpty(t, positions, "scored match should produce positions")

	runes := []rune(text)
	for i, p := range positions {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, len(runes), "position must index into the line")
		if i > 0 {
			require.Greater(t, p, positions[i-1], "positions must be ascending")
		}
	}
}

func TestFzfPositionsCoverContiguousMatch(t *testing.T) {
	session := NewFzf().NewSession("bar")

	positions := session.Positions("foo bar")
	require.Equal(t, []int{4, 5, 6}, positions, "contiguous match covers its substring")
}

func TestFzfEmptyPattern(t *testing.T) {
	session := NewFzf().NewSession("")

	_, ok := session.Score("anything")
	require.False(t, ok, "empty pattern matches nothing")
	require.Nil(t, session.Positions("anything"))
}

func TestFzfScoreDeterministic(t *testing.T) {
	a := NewFzf().NewSession("bar")
	b := NewFzf().NewSession("bar")

	for _, text := range []string{"foo bar", "barfoo", "bar baz bar"} {
		scoreA, okA := a.Score(text)
		scoreB, okB := b.Score(text)
		require.Equal(t, okA, okB, "match decision must be deterministic for %q", text)
		require.Equal(t, scoreA, scoreB, "score must be deterministic for %q", text)
	}
}

func TestSahilmBasicMatch(t *testing.T) {
	session := NewSahilm().NewSession("app")

	_, ok := session.Score("application")
	require.True(t, ok)

	_, ok = session.Score("banana")
	require.False(t, ok)
}

func TestSahilmPositionsInRange(t *testing.T) {
	session := NewSahilm().NewSession("hw")

	text := "hello world"
	positions := session.Positions(text)
	require.NotEmpty(t, positions)

	runes := []rune(text)
	for _, p := range positions {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, len(runes))
	}
}

func TestSahilmEmptyPattern(t *testing.T) {
	session := NewSahilm().NewSession("")

	_, ok := session.Score("anything")
	require.False(t, ok, "empty pattern matches nothing")
}

func TestBytesToRuneOffsets(t *testing.T) {
	// "héllo" — é is two bytes, so byte offset 3 is rune offset 2
	text := "héllo"
	require.Equal(t, []int{0, 2}, bytesToRuneOffsets(text, []int{0, 3}))
	require.Empty(t, bytesToRuneOffsets(text, []int{2}),
		"offsets inside a multi-byte rune are dropped")
}
