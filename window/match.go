package window

import "github.com/bytepress/pack"

var _ pack.MatchFinder = &MatchFinder{}
var _ pack.Searcher = &MatchFinder{}

// MatchFinder is an implementation of the pack.MatchFinder interface that
// checks every offset in the window at every position and keeps the longest
// match, preferring the smallest offset on ties.
//
// It searches only within the block passed to FindMatches; it keeps no
// history between calls.
type MatchFinder struct {
	// WindowSize is the largest offset to look back for a match.
	// The default is 20.
	WindowSize int

	// MinLength is the length of the shortest match to return.
	// The default is 3.
	MinLength int

	// MaxLength is the length of the longest match to return.
	// The default is 255.
	MaxLength int

	parser pack.GreedyParser
	src    []byte
}

func (f *MatchFinder) Reset() {}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (f *MatchFinder) FindMatches(dst []pack.Match, src []byte) []pack.Match {
	if f.WindowSize == 0 {
		f.WindowSize = WindowSize
	}
	if f.MinLength == 0 {
		f.MinLength = MinMatchLength
	}
	if f.MaxLength == 0 {
		f.MaxLength = MaxMatchLength
	}

	f.src = src
	f.parser.MinLength = f.MinLength
	dst = f.parser.Parse(dst, f, 0, len(src))
	f.src = nil
	return dst
}

// Search appends one match for each offset from 1 up to the window size
// (or pos, if that is smaller), in order of increasing offset. Offsets where
// not even one byte matches are skipped.
func (f *MatchFinder) Search(dst []pack.AbsoluteMatch, pos, min, max int) []pack.AbsoluteMatch {
	src := f.src

	window := f.WindowSize
	if window > pos {
		window = pos
	}
	limit := max
	if pos+f.MaxLength < limit {
		limit = pos + f.MaxLength
	}

	for offset := 1; offset <= window; offset++ {
		end := pos
		for end < limit && src[end] == src[end-offset] {
			end++
		}
		if end > pos {
			dst = append(dst, pack.AbsoluteMatch{
				Start: pos,
				End:   end,
				Match: pos - offset,
			})
		}
	}
	return dst
}
