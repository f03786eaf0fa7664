// Package rle implements run-length encoding.
//
// A stream is a sequence of two-byte pairs: a count from 1 to 255, then the
// byte value repeated count times. Runs longer than 255 bytes take several
// pairs. There is no header, trailer or checksum.
package rle

import (
	"io"

	"github.com/bytepress/pack"
)

// MaxRunLength is the longest run a single pair can describe.
const MaxRunLength = 255

// Compress returns the run-length encoding of src.
func Compress(src []byte) []byte {
	var e Encoder
	matches := MatchFinder{}.FindMatches(nil, src)
	return e.Encode(make([]byte, 0, 2*len(src)), src, matches, true)
}

// Decompress returns the data encoded in src. If src is not a valid stream,
// the error wraps pack.ErrMalformedInput.
func Decompress(src []byte) ([]byte, error) {
	return Decoder{}.Decode(make([]byte, 0, len(src)), src)
}

// NewWriter returns a pack.Writer that writes the run-length encoding of the
// data written to it to w. Runs that cross block boundaries are joined, so
// the output is identical to Compress of the whole stream.
func NewWriter(w io.Writer) *pack.Writer {
	return &pack.Writer{
		Dest:        w,
		MatchFinder: MatchFinder{},
		Encoder:     &Encoder{},
		BlockSize:   1 << 16,
	}
}

// NewReader returns a pack.Reader that decompresses the run-length stream
// read from r.
func NewReader(r io.Reader) *pack.Reader {
	return &pack.Reader{
		Source:  r,
		Decoder: Decoder{},
	}
}
