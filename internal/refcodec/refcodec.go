// Package refcodec puts the rle and window schemes side by side with
// widely used third-party compressors, so that their output sizes can be
// compared on the same data.
package refcodec

import (
	"bytes"
	"context"
	"io"
	"sort"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bytepress/pack/rle"
	"github.com/bytepress/pack/window"
)

// A Codec is a named compress/decompress pair over whole buffers.
type Codec struct {
	Name       string
	Compress   func(src []byte) ([]byte, error)
	Decompress func(src []byte) ([]byte, error)
}

// All returns every known codec: rle and lz first, then the reference
// codecs in alphabetical order.
func All() []Codec {
	return []Codec{
		{Name: "rle", Compress: infallible(rle.Compress), Decompress: rle.Decompress},
		{Name: "lz", Compress: infallible(window.Compress), Decompress: window.Decompress},
		{Name: "brotli", Compress: brotliCompress, Decompress: brotliDecompress},
		{Name: "lz4", Compress: lz4Compress, Decompress: lz4Decompress},
		{Name: "s2", Compress: s2Compress, Decompress: s2Decompress},
		{Name: "snappy", Compress: snappyCompress, Decompress: snappyDecompress},
		{Name: "zstd", Compress: zstdCompress, Decompress: zstdDecompress},
	}
}

// Lookup returns the codec called name.
func Lookup(name string) (Codec, bool) {
	for _, c := range All() {
		if c.Name == name {
			return c, true
		}
	}
	return Codec{}, false
}

func infallible(f func([]byte) []byte) func([]byte) ([]byte, error) {
	return func(src []byte) ([]byte, error) {
		return f(src), nil
	}
}

// A Result is the outcome of compressing one buffer with one codec.
type Result struct {
	Name  string
	Size  int     // compressed size in bytes
	Ratio float64 // original size / compressed size; 0 for empty output
}

// Measure compresses data with each codec concurrently, checks that it
// decompresses back to data, and returns the results sorted by size.
func Measure(ctx context.Context, data []byte, codecs []Codec) ([]Result, error) {
	results := make([]Result, len(codecs))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range codecs {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			compressed, err := c.Compress(data)
			if err != nil {
				return errors.Wrapf(err, "%s: compress", c.Name)
			}
			decompressed, err := c.Decompress(compressed)
			if err != nil {
				return errors.Wrapf(err, "%s: decompress", c.Name)
			}
			if !bytes.Equal(decompressed, data) {
				return errors.Errorf("%s: round trip does not reproduce the input", c.Name)
			}

			results[i] = Result{Name: c.Name, Size: len(compressed)}
			if len(compressed) > 0 {
				results[i].Ratio = float64(len(data)) / float64(len(compressed))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Size < results[j].Size
	})
	return results, nil
}

func snappyCompress(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func snappyDecompress(src []byte) ([]byte, error) {
	return snappy.Decode(nil, src)
}

func s2Compress(src []byte) ([]byte, error) {
	return s2.Encode(nil, src), nil
}

func s2Decompress(src []byte) ([]byte, error) {
	return s2.Decode(nil, src)
}

func zstdCompress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

func zstdDecompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}

func lz4Compress(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := lz4.NewWriter(buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4Decompress(src []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
}

func brotliCompress(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := brotli.NewWriterLevel(buf, brotli.DefaultCompression)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliDecompress(src []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(src)))
}
