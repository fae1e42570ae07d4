// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"golang.org/x/huffpack/internal/derrors"
	"golang.org/x/huffpack/internal/huffman"
)

// Stats describes how an input is coded.
type Stats struct {
	Freq          huffman.FreqTable
	Tree          *huffman.Node
	Codes         huffman.CodeTable
	BitsPerSymbol float64
	// Records is the number of tree records in the header.
	Records int
	// CompressedSize is the length of the archive Compress produces.
	CompressedSize int
}

// Analyze returns the Stats for raw, which must not be empty.
func Analyze(raw []byte) (_ *Stats, err error) {
	defer derrors.Wrap(&err, "Analyze(%d bytes)", len(raw))

	freq := huffman.MakeFreqTable(raw)
	tree, err := huffman.BuildTree(freq)
	if err != nil {
		return nil, err
	}
	bps, err := huffman.AverageLength(tree, freq)
	if err != nil {
		return nil, err
	}
	codes := huffman.Codes(tree)
	records := huffman.NumberNodes(tree)
	if records == 0 {
		// The single-leaf tree still takes one record.
		records = 1
	}
	bits := 0
	for s, n := range freq {
		bits += n * len(codes[s])
	}
	return &Stats{
		Freq:           freq,
		Tree:           tree,
		Codes:          codes,
		BitsPerSymbol:  bps,
		Records:        records,
		CompressedSize: 1 + records*huffman.RecordSize + 4 + (bits+7)/8,
	}, nil
}
