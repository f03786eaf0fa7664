package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytepress/pack"
	"github.com/bytepress/pack/rle"
	"github.com/bytepress/pack/window"
)

// run executes the command line args and returns what it wrote to stdout
// and stderr.
func run(args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	root := newRootCommand()
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCompressDecompress(t *testing.T) {
	data := []byte(strings.Repeat("A", 30) + strings.Repeat("B", 30) + "the end\n")

	for _, flag := range []string{"--rle", "--lz"} {
		t.Run(flag, func(t *testing.T) {
			require := require.New(t)
			dir := t.TempDir()
			input := writeTemp(t, "input.txt", data)
			compressed := filepath.Join(dir, "input.pack")
			restored := filepath.Join(dir, "restored.txt")

			_, stderr, err := run("compress", input, compressed, flag, "--verify", "-v")
			require.NoError(err)
			require.Contains(stderr, "compression complete, output written to "+compressed)
			require.Contains(stderr, "verified")

			_, stderr, err = run("decompress", compressed, restored, flag)
			require.NoError(err)
			require.Contains(stderr, "decompression complete")

			got, err := os.ReadFile(restored)
			require.NoError(err)
			require.Equal(data, got)
		})
	}
}

func TestCompressMatchesLibrary(t *testing.T) {
	require := require.New(t)
	data := []byte(strings.Repeat("xyz", 200) + strings.Repeat("\x00", 700))
	input := writeTemp(t, "input.bin", data)
	dir := t.TempDir()

	_, _, err := run("compress", input, filepath.Join(dir, "rle"), "-r")
	require.NoError(err)
	got, err := os.ReadFile(filepath.Join(dir, "rle"))
	require.NoError(err)
	require.Equal(rle.Compress(data), got)

	_, _, err = run("compress", input, filepath.Join(dir, "lz"), "-l")
	require.NoError(err)
	got, err = os.ReadFile(filepath.Join(dir, "lz"))
	require.NoError(err)
	require.Equal(window.Compress(data), got)
}

func TestSchemeRequired(t *testing.T) {
	require := require.New(t)
	input := writeTemp(t, "input.txt", []byte("hello"))
	output := filepath.Join(t.TempDir(), "out")

	_, stderr, err := run("compress", input, output)
	require.ErrorIs(err, errNoScheme)
	require.Contains(stderr, "please specify compression algorithm")
	require.NoFileExists(output)

	_, _, err = run("compress", input, output, "--rle", "--lz")
	require.Error(err)
	require.NoFileExists(output)
}

func TestDecompressMalformed(t *testing.T) {
	require := require.New(t)
	input := writeTemp(t, "bad.pack", []byte{0x01})
	output := filepath.Join(t.TempDir(), "out")

	_, _, err := run("decompress", input, output, "--lz")
	require.ErrorIs(err, pack.ErrMalformedInput)
	require.NoFileExists(output, "a failed decompression must not leave output behind")
}

func TestMissingInput(t *testing.T) {
	_, _, err := run("compress", filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "out"), "--rle")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspect(t *testing.T) {
	require := require.New(t)

	input := writeTemp(t, "abc.lz", window.Compress([]byte("ABCABCABC")))
	stdout, _, err := run("inspect", input, "--lz")
	require.NoError(err)
	require.Equal("     0  literal(0x41)\n     1  literal(0x42)\n     2  literal(0x43)\n     3  match(offset=3, length=6)\n", stdout)

	input = writeTemp(t, "a.rle", rle.Compress([]byte("aaab")))
	stdout, _, err = run("inspect", input, "--rle")
	require.NoError(err)
	require.Equal("     0  3 x 0x61\n     1  1 x 0x62\n", stdout)

	input = writeTemp(t, "odd.rle", []byte{1, 2, 3})
	_, _, err = run("inspect", input, "--rle")
	require.ErrorIs(err, pack.ErrMalformedInput)
}

func TestStats(t *testing.T) {
	require := require.New(t)
	input := writeTemp(t, "input.txt", []byte(strings.Repeat("hello, world. ", 300)))

	stdout, _, err := run("stats", input)
	require.NoError(err)
	for _, name := range []string{"original", "rle", "lz", "snappy", "s2", "zstd", "lz4", "brotli"} {
		require.Contains(stdout, name)
	}
}
