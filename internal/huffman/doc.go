// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package huffman implements the codec used by huffpack: frequency counting,
Huffman tree construction, code tables, and the binary form of a tree.

# Trees

A tree is built from a FreqTable by repeatedly merging the two entries with the
smallest counts. Ties are resolved by position: the working list starts with the
symbols in ascending byte order and every merged node is appended to its end.
Equal tables therefore always produce equal trees.

Descending left appends '0' to a code and descending right appends '1'. A tree
made of a single leaf gives that leaf the code "0".

# Serialized trees

Internal nodes are numbered in postorder from 0 and written as one 4-byte record
each, in that order:

	left_is_internal left_data right_is_internal right_data

A leaf child is written as (0, symbol) and an internal child as (1, number).
Because a record's position equals its number, the same bytes can be read back
either by absolute index (GeneralIndex) or purely by position (Postorder).
The single-leaf tree is written as the record (0, x, 0, x).

# Bitstreams

Pack concatenates codes most significant bit first and pads the last byte with
zeros. Unpack needs the number of symbols to decode, which makes the padding
harmless.
*/
package huffman
