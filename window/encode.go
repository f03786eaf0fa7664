package window

import "github.com/bytepress/pack"

var _ pack.Encoder = Encoder{}

// An Encoder implements the pack.Encoder interface, writing in the window
// format. Matches that the format cannot carry (too short, or too far back)
// are written as literals, and matches longer than MaxMatchLength are split.
type Encoder struct{}

func (Encoder) Reset() {}

func (Encoder) Encode(dst []byte, src []byte, matches []pack.Match, lastBlock bool) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = appendLiterals(dst, src[pos:pos+m.Unmatched])
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = appendCopy(dst, src[pos:pos+m.Length], m.Distance)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = appendLiterals(dst, src[pos:])
	}
	return dst
}

func appendLiterals(dst, lit []byte) []byte {
	for _, b := range lit {
		dst = append(dst, TagLiteral, b)
	}
	return dst
}

// appendCopy appends a copy of length len(copied) from distance bytes back.
// copied holds the bytes the copy produces.
func appendCopy(dst, copied []byte, distance int) []byte {
	if distance < 1 || distance > maxDistance {
		return appendLiterals(dst, copied)
	}
	for len(copied) > MaxMatchLength {
		dst = append(dst, TagMatch, byte(distance), MaxMatchLength)
		copied = copied[MaxMatchLength:]
	}
	if len(copied) < MinMatchLength {
		return appendLiterals(dst, copied)
	}
	return append(dst, TagMatch, byte(distance), byte(len(copied)))
}

// AppendToken appends the encoding of t to dst.
func AppendToken(dst []byte, t Token) []byte {
	if t.Kind == MatchToken {
		return append(dst, TagMatch, byte(t.Offset), byte(t.Length))
	}
	return append(dst, TagLiteral, t.Literal)
}
