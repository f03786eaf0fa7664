package pack

import (
	"io"

	"github.com/pkg/errors"
)

// A Reader is an io.Reader that decompresses the data from Source with
// Decoder. The compressed formats have no framing, so the whole source is
// read and decoded on the first call to Read.
type Reader struct {
	Source  io.Reader
	Decoder Decoder

	decoded []byte
	pos     int
	err     error
	done    bool
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if !r.done {
		r.done = true
		r.fill()
	}
	if r.pos == len(r.decoded) {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}

	n = copy(p, r.decoded[r.pos:])
	r.pos += n
	return n, nil
}

// Reset discards the Reader's state and prepares it to read a new stream
// from src.
func (r *Reader) Reset(src io.Reader) {
	r.Source = src
	r.decoded = r.decoded[:0]
	r.pos = 0
	r.err = nil
	r.done = false
}

func (r *Reader) fill() {
	compressed, err := io.ReadAll(r.Source)
	if err != nil {
		r.err = errors.Wrap(err, "pack: reading compressed data")
		return
	}

	decoded, err := r.Decoder.Decode(r.decoded[:0], compressed)
	if err != nil {
		// A failed decode leaves partial output that must not be served.
		r.err = err
		return
	}
	r.decoded = decoded
}
