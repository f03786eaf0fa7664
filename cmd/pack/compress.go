package main

import (
	"io"
	"os"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (a *app) compressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compress(args[0], args[1])
		},
	}
	a.addSchemeFlags(cmd, "compression")
	cmd.Flags().BoolVar(&a.cfg.Verify, "verify", false, "decompress the output and compare checksums")
	return cmd
}

func (a *app) decompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decompress(args[0], args[1])
		},
	}
	a.addSchemeFlags(cmd, "decompression")
	return cmd
}

func (a *app) compress(input, output string) error {
	s, err := a.cfg.scheme()
	if err != nil {
		return err
	}

	checksum := xxHash32.New(0)
	n, err := transform(input, output, func(dst io.Writer, src io.Reader) error {
		w := s.newWriter(dst)
		if _, err := io.Copy(w, io.TeeReader(src, checksum)); err != nil {
			return err
		}
		return w.Close()
	})
	if err != nil {
		return errors.Wrapf(err, "compressing %s", input)
	}

	a.log.WithFields(logrus.Fields{
		"scheme":       s.name,
		"input_bytes":  n.in,
		"output_bytes": n.out,
		"checksum":     checksum.Sum32(),
	}).Debug("compressed")

	if a.cfg.Verify {
		if err := a.verify(s, output, checksum.Sum32()); err != nil {
			return err
		}
	}

	a.log.Infof("compression complete, output written to %s", output)
	return nil
}

func (a *app) decompress(input, output string) error {
	s, err := a.cfg.scheme()
	if err != nil {
		return err
	}

	n, err := transform(input, output, func(dst io.Writer, src io.Reader) error {
		_, err := io.Copy(dst, s.newReader(src))
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "decompressing %s", input)
	}

	a.log.WithFields(logrus.Fields{
		"scheme":       s.name,
		"input_bytes":  n.in,
		"output_bytes": n.out,
	}).Debug("decompressed")

	a.log.Infof("decompression complete, output written to %s", output)
	return nil
}

// verify decompresses the file at path and checks that the result has the
// expected checksum.
func (a *app) verify(s scheme, path string, want uint32) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	h := xxHash32.New(0)
	if _, err := io.Copy(h, s.newReader(f)); err != nil {
		return errors.Wrapf(err, "verify %s", path)
	}
	if got := h.Sum32(); got != want {
		return errors.Errorf("verify %s: checksum %08x, wanted %08x", path, got, want)
	}

	a.log.WithField("checksum", want).Debug("verified")
	return nil
}

type byteCounts struct {
	in, out int64
}

// transform streams the file at input through fn into a new file at output.
// If anything fails, the output file is removed.
func transform(input, output string, fn func(dst io.Writer, src io.Reader) error) (n byteCounts, err error) {
	in, err := os.Open(input)
	if err != nil {
		return n, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return n, err
	}

	src := &countingReader{r: in}
	dst := &countingWriter{w: out}
	err = fn(dst, src)
	err = multierr.Append(err, out.Close())
	if err != nil {
		os.Remove(output)
		return n, err
	}
	return byteCounts{in: src.n, out: dst.n}, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
