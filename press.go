// Package pack is a small modular system for byte-stream compression.
//
// Most compressors have two main parts:
//  - Something that looks for repeated sequences of bytes
//  - An encoder for the compressed data format
//
// This package defines interfaces and an intermediate representation
// (the Match) that connect those parts, so that a format's encoder can be
// driven by any MatchFinder. The formats themselves live in subpackages:
// rle (run-length encoding) and window (LZ77 with a small fixed window).
package pack

// A Match is the basic unit of LZ77 compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// An Encoder encodes the data in its final format.
type Encoder interface {
	// Encode appends the encoded format of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}

// A Decoder reverses an Encoder. The whole compressed stream is passed to a
// single call.
type Decoder interface {
	// Decode appends the decompressed contents of src to dst.
	// If src is not a valid stream, the error wraps ErrMalformedInput and
	// the returned slice must not be used.
	Decode(dst []byte, src []byte) ([]byte, error)
}
