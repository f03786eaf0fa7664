package rle

import (
	"bytes"
	"testing"
)

var benchData = bytes.Repeat(append(bytes.Repeat([]byte{0}, 300), "scanline"...), 500)

func BenchmarkCompress(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compress(benchData)
	}
	b.ReportMetric(float64(len(benchData))/float64(len(Compress(benchData))), "ratio")
}

func BenchmarkDecompress(b *testing.B) {
	compressed := Compress(benchData)
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}
