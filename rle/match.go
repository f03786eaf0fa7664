package rle

import "github.com/bytepress/pack"

var _ pack.MatchFinder = MatchFinder{}

// MatchFinder is an implementation of the pack.MatchFinder interface that
// only finds runs. A run of n identical bytes is reported as one unmatched
// byte followed by a match of length n-1 at distance 1.
type MatchFinder struct{}

func (MatchFinder) Reset() {}

// FindMatches looks for runs in src, appends them to dst, and returns dst.
func (MatchFinder) FindMatches(dst []pack.Match, src []byte) []pack.Match {
	nextEmit := 0
	for i := 0; i < len(src); {
		j := i + 1
		for j < len(src) && src[j] == src[i] {
			j++
		}
		if j-i > 1 {
			dst = append(dst, pack.Match{
				Unmatched: i + 1 - nextEmit,
				Length:    j - i - 1,
				Distance:  1,
			})
			nextEmit = j
		}
		i = j
	}

	if nextEmit < len(src) {
		dst = append(dst, pack.Match{
			Unmatched: len(src) - nextEmit,
		})
	}
	return dst
}
