// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"strconv"
	"strings"

	"golang.org/x/huffpack/internal/derrors"
)

// A Node is a node of a Huffman tree. A node is a leaf if and only if it has
// no children; an internal node always has two.
type Node struct {
	Symbol      byte // only meaningful for leaves
	Left, Right *Node

	// Number is the postorder position of an internal node, set by
	// NumberNodes. It is not part of the tree's identity.
	Number int
}

// NewLeaf returns a leaf holding sym.
func NewLeaf(sym byte) *Node {
	return &Node{Symbol: sym}
}

// NewInternal returns an internal node with the given children.
func NewInternal(left, right *Node) *Node {
	return &Node{Left: left, Right: right}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Equal reports whether n and m have the same shape and the same symbols
// at their leaves. Numbers are ignored.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.IsLeaf() || m.IsLeaf() {
		return n.IsLeaf() && m.IsLeaf() && n.Symbol == m.Symbol
	}
	return n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
}

// String formats n with leaves as decimal symbols and internal nodes as
// parenthesized pairs, for example "((3,2),9)".
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	if n.IsLeaf() {
		sb.WriteString(strconv.Itoa(int(n.Symbol)))
		return
	}
	sb.WriteByte('(')
	n.Left.format(sb)
	sb.WriteByte(',')
	n.Right.format(sb)
	sb.WriteByte(')')
}

// entry is an element of the working list used by BuildTree.
type entry struct {
	count int
	node  *Node
}

// BuildTree returns the root of a Huffman tree for freq. The leaves of the
// tree are exactly the symbols of freq. freq is not modified.
//
// A table with a single symbol gives a tree that is a single leaf.
func BuildTree(freq FreqTable) (_ *Node, err error) {
	defer derrors.Wrap(&err, "BuildTree")

	if len(freq) == 0 {
		return nil, derrors.EmptyInput
	}
	var work []entry
	for s := 0; s < 256; s++ {
		if n, ok := freq[byte(s)]; ok {
			work = append(work, entry{count: n, node: NewLeaf(byte(s))})
		}
	}
	for len(work) > 1 {
		i, j := twoSmallest(work)
		merged := entry{
			count: work[i].count + work[j].count,
			node:  NewInternal(work[i].node, work[j].node),
		}
		work = removeTwo(work, i, j)
		work = append(work, merged)
	}
	return work[0].node, nil
}

// twoSmallest returns the positions of the entries to merge next. The
// first is the first entry with the smallest count. The second is the
// first entry with the smallest count among the rest, as found by a
// single scan that demotes the previous first choice whenever a strictly
// smaller entry appears.
func twoSmallest(work []entry) (first, second int) {
	first, second = -1, -1
	for i, e := range work {
		switch {
		case first < 0 || e.count < work[first].count:
			second = first
			first = i
		case second < 0 || e.count < work[second].count:
			second = i
		}
	}
	return first, second
}

// removeTwo removes the entries at i and j from work, preserving the
// order of the remaining entries.
func removeTwo(work []entry, i, j int) []entry {
	out := make([]entry, 0, len(work)-1)
	for k, e := range work {
		if k != i && k != j {
			out = append(out, e)
		}
	}
	return out
}
