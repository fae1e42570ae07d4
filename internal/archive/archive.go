// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archive composes the huffman codec into the huffpack file format.
//
// An archive is, in order:
//
//	count    1 byte, the number of tree records
//	records  count*4 bytes, the tree in postorder (see package huffman)
//	size     4 bytes, little-endian number of original bytes
//	payload  the packed bitstream, zero padded to a byte boundary
//
// An empty input is stored as a zero count and a zero size with no payload.
package archive

import (
	"fmt"
	"math"

	"golang.org/x/huffpack/internal/derrors"
	"golang.org/x/huffpack/internal/huffman"
)

// MaxSize is the largest input that fits in the size field.
const MaxSize = math.MaxUint32

// A Header is the part of an archive that precedes the payload.
type Header struct {
	Records []huffman.ReadNode
	// Size is the number of bytes of the original input.
	Size int
	// PayloadOffset is the position of the payload in the archive.
	PayloadOffset int
}

// Tree rebuilds the tree described by h.Records. It requires the records
// to form exactly one tree rooted at the last record.
func (h *Header) Tree() (_ *huffman.Node, err error) {
	defer derrors.Wrap(&err, "Header.Tree")

	if len(h.Records) == 0 {
		return nil, derrors.EmptyInput
	}
	root := len(h.Records) - 1
	n, err := huffman.PostorderSize(h.Records, root)
	if err != nil {
		return nil, err
	}
	if n != len(h.Records) {
		return nil, fmt.Errorf("tree uses %d of %d records: %w", n, len(h.Records), derrors.MalformedHeader)
	}
	return huffman.Deserialize(huffman.Postorder, h.Records, root)
}

// ParseHeader reads the header of packed.
func ParseHeader(packed []byte) (_ *Header, err error) {
	defer derrors.Wrap(&err, "ParseHeader(%d bytes)", len(packed))

	d := newDecoder(packed)
	count, err := d.readByte()
	if err != nil {
		return nil, err
	}
	buf, err := d.readBytes(int(count) * huffman.RecordSize)
	if err != nil {
		return nil, err
	}
	records, err := huffman.BytesToNodes(buf)
	if err != nil {
		return nil, err
	}
	size, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	if count == 0 && size != 0 {
		return nil, fmt.Errorf("no tree for %d bytes: %w", size, derrors.MalformedHeader)
	}
	return &Header{
		Records:       records,
		Size:          int(size),
		PayloadOffset: d.i,
	}, nil
}

// Compress returns the archive for raw.
func Compress(raw []byte) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Compress(%d bytes)", len(raw))

	if uint64(len(raw)) > MaxSize {
		return nil, fmt.Errorf("input larger than %d bytes: %w", MaxSize, derrors.InvalidArgument)
	}
	var e encoder
	if len(raw) == 0 {
		e.writeByte(0)
		e.writeUint32(0)
		return e.bytes(), nil
	}
	freq := huffman.MakeFreqTable(raw)
	tree, err := huffman.BuildTree(freq)
	if err != nil {
		return nil, err
	}
	codes := huffman.Codes(tree)
	huffman.NumberNodes(tree)
	records, err := huffman.TreeToBytes(tree)
	if err != nil {
		return nil, err
	}
	payload, err := huffman.Pack(raw, codes)
	if err != nil {
		return nil, err
	}
	e.writeByte(byte(len(records) / huffman.RecordSize))
	e.writeBytes(records)
	e.writeUint32(uint32(len(raw)))
	e.writeBytes(payload)
	return e.bytes(), nil
}

// Decompress returns the original bytes of the archive packed.
func Decompress(packed []byte) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Decompress(%d bytes)", len(packed))

	h, err := ParseHeader(packed)
	if err != nil {
		return nil, err
	}
	if len(h.Records) == 0 {
		return []byte{}, nil
	}
	tree, err := h.Tree()
	if err != nil {
		return nil, err
	}
	return huffman.Unpack(tree, packed[h.PayloadOffset:], h.Size)
}
