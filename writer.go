package pack

import (
	"io"

	"github.com/pkg/errors"
)

var errClosed = errors.New("pack: use of closed Writer")

// A Writer is an io.WriteCloser that compresses the data written to it with
// a MatchFinder and an Encoder, and writes the result to Dest.
//
// Data is buffered in memory. If BlockSize is greater than zero, each time
// a full block has been buffered it is compressed and written out; otherwise
// the whole stream is compressed as a single block when the Writer is
// closed.
type Writer struct {
	Dest        io.Writer
	MatchFinder MatchFinder
	Encoder     Encoder
	BlockSize   int

	inBuf   []byte
	outBuf  []byte
	matches []Match
	err     error
}

// Write buffers p, compressing and writing any blocks that are complete.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}

	for len(p) > 0 {
		if w.BlockSize <= 0 {
			w.inBuf = append(w.inBuf, p...)
			return n + len(p), nil
		}

		c := w.BlockSize - len(w.inBuf)
		if c > len(p) {
			c = len(p)
		}
		w.inBuf = append(w.inBuf, p[:c]...)
		p = p[c:]
		n += c

		if len(w.inBuf) == w.BlockSize {
			if err := w.encodeBlock(false); err != nil {
				return n, err
			}
		}
	}

	return n, nil
}

// Close compresses whatever is left in the buffer as the last block and
// writes it to Dest. It does not close Dest.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.encodeBlock(true); err != nil {
		return err
	}
	w.err = errClosed
	return nil
}

// Reset discards the Writer's state and prepares it to write a new stream
// to newDest.
func (w *Writer) Reset(newDest io.Writer) {
	w.MatchFinder.Reset()
	w.Encoder.Reset()
	w.err = nil
	w.inBuf = w.inBuf[:0]
	w.outBuf = w.outBuf[:0]
	w.matches = w.matches[:0]
	w.Dest = newDest
}

func (w *Writer) encodeBlock(lastBlock bool) error {
	w.matches = w.MatchFinder.FindMatches(w.matches[:0], w.inBuf)
	w.outBuf = w.Encoder.Encode(w.outBuf[:0], w.inBuf, w.matches, lastBlock)
	w.inBuf = w.inBuf[:0]

	if len(w.outBuf) == 0 {
		return nil
	}
	if _, err := w.Dest.Write(w.outBuf); err != nil {
		w.err = err
		return err
	}
	return nil
}
