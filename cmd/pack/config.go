package main

import (
	"io"

	"github.com/pkg/errors"

	"github.com/bytepress/pack"
	"github.com/bytepress/pack/rle"
	"github.com/bytepress/pack/window"
)

var errNoScheme = errors.New("please specify compression algorithm (--rle or --lz)")

// config holds the command-line flags.
type config struct {
	RLE     bool
	LZ      bool
	Verify  bool
	Verbose bool
}

type scheme struct {
	name      string
	newWriter func(io.Writer) *pack.Writer
	newReader func(io.Reader) *pack.Reader
}

var (
	rleScheme    = scheme{name: "rle", newWriter: rle.NewWriter, newReader: rle.NewReader}
	windowScheme = scheme{name: "lz", newWriter: window.NewWriter, newReader: window.NewReader}
)

// scheme returns the scheme selected by the flags. Exactly one of --rle and
// --lz must be set.
func (c *config) scheme() (scheme, error) {
	switch {
	case c.RLE && c.LZ:
		return scheme{}, errors.New("--rle and --lz cannot be used together")
	case c.RLE:
		return rleScheme, nil
	case c.LZ:
		return windowScheme, nil
	}
	return scheme{}, errNoScheme
}
