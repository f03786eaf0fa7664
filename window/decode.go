package window

import "github.com/bytepress/pack"

var _ pack.Decoder = Decoder{}

// A Decoder implements the pack.Decoder interface for the window format.
type Decoder struct{}

func (Decoder) Decode(dst []byte, src []byte) ([]byte, error) {
	// Matches may only reach back into this stream's output.
	base := len(dst)

	for i := 0; i < len(src); {
		t, n, err := readToken(src, i)
		if err != nil {
			return dst, err
		}

		switch t.Kind {
		case LiteralToken:
			dst = append(dst, t.Literal)
		case MatchToken:
			if err := checkOffset(t, len(dst)-base, i); err != nil {
				return dst, err
			}
			// A zero Length is never written by Encoder but is accepted here,
			// and copies nothing.
			// Copy one byte at a time, so that a copy can read bytes it has
			// just written when Offset < Length.
			start := len(dst) - t.Offset
			for j := 0; j < t.Length; j++ {
				dst = append(dst, dst[start+j])
			}
		}
		i += n
	}
	return dst, nil
}
