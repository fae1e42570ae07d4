// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"bytes"
	"errors"
	"math/rand"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/huffpack/internal/derrors"
	"golang.org/x/huffpack/internal/huffman"
)

func makeTestData(n int) []byte {
	b := make([]byte, n)
	r := rand.New(rand.NewSource(1))
	if n > 0 {
		_, _ = r.Read(b)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{'x'}},
		{"single symbol", []byte{5, 5, 5}},
		{"two symbols", []byte("abababbbbbbb")},
		{"text", []byte("the quick brown fox jumps over the lazy dog")},
		{"all bytes", allBytes()},
		{"random", makeTestData(10000)},
	} {
		t.Run(test.name, func(t *testing.T) {
			packed, err := Compress(test.data)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			got, err := Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, test.data) {
				t.Fatalf("mismatch: got %d bytes, want %d", len(got), len(test.data))
			}
		})
	}
}

func allBytes() []byte {
	var b []byte
	for i := 0; i < 256; i++ {
		for j := 0; j <= i%7; j++ {
			b = append(b, byte(i))
		}
	}
	return b
}

func TestLayout(t *testing.T) {
	// Frequencies {1:2, 2:1, 0:1} build the tree (1,(0,2)):
	// codes 1 -> "0", 0 -> "10", 2 -> "11".
	data := []byte{1, 0, 2, 1}
	got, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		2,          // records
		0, 0, 0, 2, // (0,2), number 0
		0, 1, 1, 0, // (1, node 0), number 1
		4, 0, 0, 0, // size
		0b01011000, // "0" "10" "11" "0", padded
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compress(%v) mismatch (-want +got):\n%s", data, diff)
	}
}

func TestEmptyLayout(t *testing.T) {
	got, err := Compress(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0, 0, 0, 0, 0}, got); diff != "" {
		t.Errorf("Compress(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleSymbol(t *testing.T) {
	packed, err := Compress([]byte{'x', 'x', 'x'})
	if err != nil {
		t.Fatal(err)
	}
	h, err := ParseHeader(packed)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := h.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if !tree.IsLeaf() || tree.Symbol != 'x' {
		t.Errorf("tree = %s, want a single leaf %d", tree, 'x')
	}
	if h.Size != 3 {
		t.Errorf("Size = %d, want 3", h.Size)
	}
}

func TestParseHeader(t *testing.T) {
	packed := []byte{1, 0, 3, 0, 2, 44, 1, 0, 0, 0xff}
	got, err := ParseHeader(packed)
	if err != nil {
		t.Fatal(err)
	}
	want := &Header{
		Records:       []huffman.ReadNode{{LeftData: 3, RightData: 2}},
		Size:          300,
		PayloadOffset: 9,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseHeader mismatch (-want +got):\n%s", diff)
	}
}

func TestDecompressErrors(t *testing.T) {
	valid, err := Compress([]byte("hello, world"))
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name   string
		packed []byte
		want   error
	}{
		{"no bytes", nil, derrors.MalformedHeader},
		{"short records", []byte{3, 0, 1, 0, 2}, derrors.MalformedHeader},
		{"short size", []byte{1, 0, 1, 0, 2, 9, 0}, derrors.MalformedHeader},
		{"size without tree", []byte{0, 3, 0, 0, 0}, derrors.MalformedHeader},
		{"bad child type", []byte{1, 5, 1, 0, 2, 1, 0, 0, 0, 0}, derrors.MalformedHeader},
		// Two records, but the root uses only itself.
		{"unused record", []byte{2, 0, 1, 0, 2, 0, 3, 0, 4, 1, 0, 0, 0, 0}, derrors.MalformedHeader},
		{"root points before start", []byte{1, 1, 0, 0, 2, 1, 0, 0, 0, 0}, derrors.MalformedHeader},
		{"missing payload", valid[:len(valid)-2], derrors.TruncatedPayload},
		{"size beyond payload", []byte{1, 0, 3, 0, 2, 0xff, 0xff, 0xff, 0xff, 0}, derrors.TruncatedPayload},
		{"zero size with bad tree", []byte{1, 1, 0, 0, 2, 0, 0, 0, 0}, derrors.MalformedHeader},
		{"zero size with unused record", []byte{2, 0, 1, 0, 2, 0, 3, 0, 4, 0, 0, 0, 0}, derrors.MalformedHeader},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decompress(test.packed)
			if !errors.Is(err, test.want) {
				t.Errorf("Decompress(%v) = %v, want %v", test.packed, err, test.want)
			}
		})
	}
}

func TestDecompressHugeSize(t *testing.T) {
	packed := []byte{1, 0, 3, 0, 2, 0xff, 0xff, 0xff, 0xff, 0}
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	if _, err := Decompress(packed); !errors.Is(err, derrors.TruncatedPayload) {
		t.Fatalf("Decompress = %v, want TruncatedPayload", err)
	}
	runtime.ReadMemStats(&after)
	if grew := after.TotalAlloc - before.TotalAlloc; grew > 1<<20 {
		t.Errorf("Decompress of a %d-byte archive allocated %d bytes", len(packed), grew)
	}
}

func TestDeterministic(t *testing.T) {
	data := makeTestData(1 << 12)
	enc1, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	enc2, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc1, enc2) {
		t.Fatalf("encodings not deterministic")
	}
}

func TestAnalyze(t *testing.T) {
	data := []byte("abracadabra")
	s, err := Analyze(data)
	if err != nil {
		t.Fatal(err)
	}
	packed, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.CompressedSize != len(packed) {
		t.Errorf("CompressedSize = %d, want %d", s.CompressedSize, len(packed))
	}
	if got, want := s.Records, int(packed[0]); got != want {
		t.Errorf("Records = %d, want %d", got, want)
	}
	if diff := cmp.Diff(huffman.FreqTable{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}, s.Freq); diff != "" {
		t.Errorf("Freq mismatch (-want +got):\n%s", diff)
	}
	if s.BitsPerSymbol <= 0 || s.BitsPerSymbol >= 8 {
		t.Errorf("BitsPerSymbol = %v, want in (0, 8)", s.BitsPerSymbol)
	}
	if _, err := Analyze(nil); !errors.Is(err, derrors.EmptyInput) {
		t.Errorf("Analyze(nil) = %v, want EmptyInput", err)
	}
}

func BenchmarkRoundTrip1MiB(b *testing.B) {
	data := makeTestData(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc, err := Compress(data)
		if err != nil {
			b.Fatalf("encode error: %v", err)
		}
		dec, err := Decompress(enc)
		if err != nil {
			b.Fatalf("decode error: %v", err)
		}
		if len(dec) != len(data) {
			b.Fatalf("length mismatch: got %d, want %d", len(dec), len(data))
		}
	}
}
