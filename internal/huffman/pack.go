// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
	"golang.org/x/huffpack/internal/derrors"
)

// Pack returns the codes of the symbols of data, concatenated most
// significant bit first and padded with zero bits to a whole number of
// bytes.
func Pack(data []byte, codes CodeTable) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Pack(%d bytes)", len(data))

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i, b := range data {
		code, ok := codes[b]
		if !ok || code == "" {
			return nil, fmt.Errorf("symbol %d at offset %d has no code: %w", b, i, derrors.CodeLookupFailure)
		}
		for j := 0; j < len(code); j++ {
			w.TryWriteBool(code[j] == '1')
		}
	}
	if w.TryError != nil {
		return nil, w.TryError
	}
	// Close writes the pending bits, padded with zeros.
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack decodes size symbols from payload using the codes of tree. Bits
// left over after the last symbol are ignored.
func Unpack(tree *Node, payload []byte, size int) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Unpack(%d bytes, %d symbols)", len(payload), size)

	if size < 0 {
		return nil, fmt.Errorf("negative size %d: %w", size, derrors.InvalidArgument)
	}
	if size == 0 {
		return []byte{}, nil
	}
	if tree == nil {
		return nil, derrors.EmptyInput
	}
	// Every code is at least one bit long.
	if size > 8*len(payload) {
		return nil, fmt.Errorf("%d bits cannot hold %d symbols: %w", 8*len(payload), size, derrors.TruncatedPayload)
	}
	codes := Codes(tree)
	inverse := codes.Inverse()
	maxLen := codes.MaxLen()
	bits := BytesToBits(payload)

	out := make([]byte, 0, size)
	var code []byte
	for i := 0; i < len(bits) && len(out) < size; i++ {
		code = append(code, bits[i])
		if s, ok := inverse[string(code)]; ok {
			out = append(out, s)
			code = code[:0]
		} else if len(code) >= maxLen {
			return nil, fmt.Errorf("bits %q at offset %d match no code: %w", code, i+1-len(code), derrors.TruncatedPayload)
		}
	}
	if len(out) < size {
		return nil, fmt.Errorf("decoded %d of %d symbols: %w", len(out), size, derrors.TruncatedPayload)
	}
	return out, nil
}
