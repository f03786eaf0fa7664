// Package window implements a small LZ77 format with a fixed 20-byte window.
//
// A stream is a sequence of tokens. A literal is the tag byte 0x00 followed
// by the byte itself. A match is the tag byte 0x01 followed by an offset and
// a length, each one byte: copy length bytes, starting offset bytes back in
// the decompressed output. The copy may overlap the bytes it produces, so
// offset may be smaller than length. There is no header, trailer or
// checksum.
package window

import (
	"io"

	"github.com/bytepress/pack"
)

const (
	// WindowSize is how far back Compress looks for matches.
	WindowSize = 20

	// MinMatchLength is the shortest match Compress emits.
	MinMatchLength = 3

	// MaxMatchLength is the longest match a single token can describe.
	MaxMatchLength = 255

	// MaxOffset is the largest offset Compress emits.
	MaxOffset = WindowSize

	// maxDistance is the largest offset the format can carry.
	maxDistance = 255
)

// Token tags.
const (
	TagLiteral = 0x00
	TagMatch   = 0x01
)

// Compress returns the window encoding of src.
func Compress(src []byte) []byte {
	var mf MatchFinder
	matches := mf.FindMatches(nil, src)
	return Encoder{}.Encode(make([]byte, 0, 2*len(src)), src, matches, true)
}

// Decompress returns the data encoded in src. If src is not a valid stream,
// the error wraps pack.ErrMalformedInput.
func Decompress(src []byte) ([]byte, error) {
	return Decoder{}.Decode(make([]byte, 0, len(src)), src)
}

// NewWriter returns a pack.Writer that writes the window encoding of the
// data written to it to w. The output is only produced when the Writer is
// closed, and is identical to Compress of the whole stream.
func NewWriter(w io.Writer) *pack.Writer {
	return &pack.Writer{
		Dest:        w,
		MatchFinder: &MatchFinder{},
		Encoder:     Encoder{},
	}
}

// NewReader returns a pack.Reader that decompresses the window stream read
// from r.
func NewReader(r io.Reader) *pack.Reader {
	return &pack.Reader{
		Source:  r,
		Decoder: Decoder{},
	}
}
