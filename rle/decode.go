package rle

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bytepress/pack"
)

var _ pack.Decoder = Decoder{}

// A Decoder implements the pack.Decoder interface for run-length streams.
type Decoder struct{}

func (Decoder) Decode(dst []byte, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return dst, errors.Wrapf(pack.ErrMalformedInput, "rle: odd stream length %d", len(src))
	}

	for i := 0; i < len(src); i += 2 {
		count, value := src[i], src[i+1]
		if count == 0 {
			return dst, errors.Wrapf(pack.ErrMalformedInput, "rle: zero count at offset %d", i)
		}
		for ; count > 0; count-- {
			dst = append(dst, value)
		}
	}
	return dst, nil
}

// A Run is one decoded pair of a run-length stream.
type Run struct {
	Count int
	Value byte
}

func (r Run) String() string {
	return fmt.Sprintf("%d x 0x%02x", r.Count, r.Value)
}

// Runs parses src into its pairs. It applies the same checks as Decompress.
func Runs(src []byte) ([]Run, error) {
	if len(src)%2 != 0 {
		return nil, errors.Wrapf(pack.ErrMalformedInput, "rle: odd stream length %d", len(src))
	}

	runs := make([]Run, 0, len(src)/2)
	for i := 0; i < len(src); i += 2 {
		if src[i] == 0 {
			return nil, errors.Wrapf(pack.ErrMalformedInput, "rle: zero count at offset %d", i)
		}
		runs = append(runs, Run{Count: int(src[i]), Value: src[i+1]})
	}
	return runs, nil
}
