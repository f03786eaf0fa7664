package rle

import "github.com/bytepress/pack"

var _ pack.Encoder = &Encoder{}

// An Encoder implements the pack.Encoder interface, writing run-length
// pairs. Any match stream is accepted: matches at distance 1 extend the
// current run, and other matches are expanded from src.
//
// The last run of a block is held back until the next block (or the end of
// the stream), so that runs are never split at block boundaries.
type Encoder struct {
	value byte
	count int // length of the pending run; 0 when there is none
}

func (e *Encoder) Reset() {
	*e = Encoder{}
}

func (e *Encoder) Encode(dst []byte, src []byte, matches []pack.Match, lastBlock bool) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = e.appendBytes(dst, src[pos:pos+m.Unmatched])
			pos += m.Unmatched
		}
		if m.Length > 0 {
			if m.Distance == 1 && e.count > 0 {
				dst = e.extend(dst, m.Length)
			} else {
				dst = e.appendBytes(dst, src[pos:pos+m.Length])
			}
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = e.appendBytes(dst, src[pos:])
	}

	if lastBlock {
		dst = e.flush(dst)
	}
	return dst
}

func (e *Encoder) appendBytes(dst, b []byte) []byte {
	for _, c := range b {
		if e.count > 0 && c != e.value {
			dst = e.flush(dst)
		}
		e.value = c
		dst = e.extend(dst, 1)
	}
	return dst
}

// extend adds n more copies of e.value to the pending run, writing out full
// pairs as the run passes MaxRunLength.
func (e *Encoder) extend(dst []byte, n int) []byte {
	e.count += n
	for e.count > MaxRunLength {
		dst = append(dst, MaxRunLength, e.value)
		e.count -= MaxRunLength
	}
	return dst
}

func (e *Encoder) flush(dst []byte) []byte {
	if e.count > 0 {
		dst = append(dst, byte(e.count), e.value)
		e.count = 0
	}
	return dst
}
