package pack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytepress/pack"
	"github.com/bytepress/pack/window"
)

// bruteSearcher returns every match at every distance, up to maxDistance.
type bruteSearcher struct {
	src         []byte
	maxDistance int
}

func (b bruteSearcher) Search(dst []pack.AbsoluteMatch, pos, min, max int) []pack.AbsoluteMatch {
	for d := 1; d <= b.maxDistance && d <= pos; d++ {
		end := pos
		for end < max && b.src[end] == b.src[end-d] {
			end++
		}
		if end > pos {
			dst = append(dst, pack.AbsoluteMatch{Start: pos, End: end, Match: pos - d})
		}
	}
	return dst
}

func TestGreedyParserMinLength(t *testing.T) {
	require := require.New(t)
	src := []byte("abcXabcYabcdZabcd")
	s := bruteSearcher{src: src, maxDistance: 64}

	p := pack.GreedyParser{MinLength: 4}
	matches := p.Parse(nil, s, 0, len(src))
	// The 3-byte repeats are too short; only "Zabcd" reuses "abcd".
	require.Equal([]pack.Match{
		{Unmatched: 13, Length: 4, Distance: 5},
	}, matches)

	p.MinLength = 3
	matches = p.Parse(nil, s, 0, len(src))
	require.Equal([]pack.Match{
		{Unmatched: 4, Length: 3, Distance: 4},
		{Unmatched: 1, Length: 3, Distance: 4},
		{Unmatched: 2, Length: 4, Distance: 5},
	}, matches)
}

func TestGreedyParserZeroMinLength(t *testing.T) {
	src := []byte("abab")
	var p pack.GreedyParser
	matches := p.Parse(nil, bruteSearcher{src: src, maxDistance: 8}, 0, len(src))
	// "b" at 1 has no earlier "b"; at 2 the two-byte repeat is taken.
	require.Equal(t, []pack.Match{{Unmatched: 2, Length: 2, Distance: 2}}, matches)
}

func TestGreedyParserEmpty(t *testing.T) {
	var p pack.GreedyParser
	require.Empty(t, p.Parse(nil, bruteSearcher{}, 0, 0))
}

func TestTextEncoder(t *testing.T) {
	require := require.New(t)
	src := []byte("ABCABCABC!")

	var mf window.MatchFinder
	matches := mf.FindMatches(nil, src)
	out := pack.TextEncoder{}.Encode(nil, src, matches, true)
	require.Equal("ABC<6,3>!", string(out))
}
