// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"

	"golang.org/x/huffpack/internal/derrors"
)

// A FreqTable maps each symbol to the number of times it occurs.
type FreqTable map[byte]int

// MakeFreqTable returns the frequency of every byte in data.
// An empty data gives an empty table.
func MakeFreqTable(data []byte) FreqTable {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	freq := FreqTable{}
	for s, n := range counts {
		if n > 0 {
			freq[byte(s)] = n
		}
	}
	return freq
}

// Total returns the sum of all counts in f.
func (f FreqTable) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// AverageLength returns the number of bits per symbol required to
// compress text with the frequencies in freq, using tree.
func AverageLength(tree *Node, freq FreqTable) (_ float64, err error) {
	defer derrors.Wrap(&err, "AverageLength")

	total := freq.Total()
	if total == 0 {
		return 0, derrors.EmptyInput
	}
	codes := Codes(tree)
	bits := 0
	for s, n := range freq {
		c, ok := codes[s]
		if !ok {
			return 0, fmt.Errorf("symbol %d: %w", s, derrors.CodeLookupFailure)
		}
		bits += len(c) * n
	}
	return float64(bits) / float64(total), nil
}
