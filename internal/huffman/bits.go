// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import "strings"

// GetBit returns bit n of b, counting from the right.
func GetBit(b byte, n uint) byte {
	return (b >> n) & 1
}

// ByteToBits returns the representation of b as a string of 8 bits,
// most significant first.
func ByteToBits(b byte) string {
	var buf [8]byte
	for i := range buf {
		buf[i] = '0' + GetBit(b, uint(7-i))
	}
	return string(buf[:])
}

// BitsToByte returns the byte represented by bits, padded on the right
// with zeros. Only the first 8 characters are used; any character other
// than '1' counts as a zero bit.
func BitsToByte(bits string) byte {
	var b byte
	for pos := 0; pos < len(bits) && pos < 8; pos++ {
		if bits[pos] == '1' {
			b |= 1 << (7 - pos)
		}
	}
	return b
}

// BytesToBits returns the concatenation of ByteToBits over data.
func BytesToBits(data []byte) string {
	var sb strings.Builder
	sb.Grow(8 * len(data))
	for _, b := range data {
		sb.WriteString(ByteToBits(b))
	}
	return sb.String()
}
