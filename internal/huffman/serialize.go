// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"

	"golang.org/x/huffpack/internal/derrors"
)

// RecordSize is the number of bytes in a serialized ReadNode.
const RecordSize = 4

// A ReadNode is the serialized form of an internal node. When a child is a
// leaf, its data is the symbol; when it is internal, the data locates the
// child's record according to the Format in use.
type ReadNode struct {
	LeftIsInternal  bool
	LeftData        byte
	RightIsInternal bool
	RightData       byte
}

// A Format is a way of locating the records of internal children.
type Format int

const (
	// GeneralIndex reads the data of an internal child as the absolute
	// index of its record. Records may be in any order.
	GeneralIndex Format = iota
	// Postorder ignores the data of internal children and relies on the
	// records being in postorder.
	Postorder
)

func (f Format) String() string {
	switch f {
	case GeneralIndex:
		return "general"
	case Postorder:
		return "postorder"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// TreeToBytes returns the records of the internal nodes of tree, in
// postorder. The tree must have been numbered with NumberNodes.
// A tree that is a single leaf x gives the record (0, x, 0, x).
func TreeToBytes(tree *Node) (_ []byte, err error) {
	defer derrors.Wrap(&err, "TreeToBytes")

	if tree == nil {
		return nil, derrors.EmptyInput
	}
	if tree.IsLeaf() {
		return []byte{0, tree.Symbol, 0, tree.Symbol}, nil
	}
	var out []byte
	appendRecords(tree, &out)
	return out, nil
}

func appendRecords(n *Node, out *[]byte) {
	if !n.Left.IsLeaf() {
		appendRecords(n.Left, out)
	}
	if !n.Right.IsLeaf() {
		appendRecords(n.Right, out)
	}
	*out = append(*out, childBytes(n.Left)...)
	*out = append(*out, childBytes(n.Right)...)
}

func childBytes(c *Node) []byte {
	if c.IsLeaf() {
		return []byte{0, c.Symbol}
	}
	return []byte{1, byte(c.Number)}
}

// BytesToNodes returns the ReadNodes encoded in buf.
func BytesToNodes(buf []byte) (_ []ReadNode, err error) {
	defer derrors.Wrap(&err, "BytesToNodes")

	if len(buf)%RecordSize != 0 {
		return nil, fmt.Errorf("%d bytes is not a whole number of records: %w", len(buf), derrors.MalformedHeader)
	}
	nodes := make([]ReadNode, 0, len(buf)/RecordSize)
	for i := 0; i < len(buf); i += RecordSize {
		lt, rt := buf[i], buf[i+2]
		if lt > 1 || rt > 1 {
			return nil, fmt.Errorf("record %d: bad child type: %w", i/RecordSize, derrors.MalformedHeader)
		}
		nodes = append(nodes, ReadNode{
			LeftIsInternal:  lt == 1,
			LeftData:        buf[i+1],
			RightIsInternal: rt == 1,
			RightData:       buf[i+3],
		})
	}
	return nodes, nil
}

// NodesToBytes is the inverse of BytesToNodes.
func NodesToBytes(nodes []ReadNode) []byte {
	out := make([]byte, 0, RecordSize*len(nodes))
	for _, n := range nodes {
		out = append(out, boolByte(n.LeftIsInternal), n.LeftData, boolByte(n.RightIsInternal), n.RightData)
	}
	return out
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Deserialize returns the tree whose root is nodes[root], reading the
// records according to format.
func Deserialize(format Format, nodes []ReadNode, root int) (*Node, error) {
	switch format {
	case GeneralIndex:
		return GenerateTreeGeneral(nodes, root)
	case Postorder:
		return GenerateTreePostorder(nodes, root)
	default:
		return nil, fmt.Errorf("Deserialize: unknown format %v: %w", format, derrors.InvalidArgument)
	}
}

// GenerateTreeGeneral returns the tree whose root is nodes[root]. The data
// of an internal child is the index of its record in nodes; nothing is
// assumed about the order of nodes.
func GenerateTreeGeneral(nodes []ReadNode, root int) (_ *Node, err error) {
	defer derrors.Wrap(&err, "GenerateTreeGeneral(%d nodes, %d)", len(nodes), root)

	if root < 0 || root >= len(nodes) {
		return nil, fmt.Errorf("root index %d out of range: %w", root, derrors.MalformedHeader)
	}
	if t := singleLeaf(nodes[root]); t != nil {
		return t, nil
	}
	// A tree reaches each record at most once, which also rules out cycles.
	used := make([]bool, len(nodes))
	var gen func(i int) (*Node, error)
	gen = func(i int) (*Node, error) {
		if i >= len(nodes) {
			return nil, fmt.Errorf("index %d out of range: %w", i, derrors.MalformedHeader)
		}
		if used[i] {
			return nil, fmt.Errorf("record %d referenced more than once: %w", i, derrors.MalformedHeader)
		}
		used[i] = true

		rn := nodes[i]
		left, err := generalChild(rn.LeftIsInternal, rn.LeftData, gen)
		if err != nil {
			return nil, err
		}
		right, err := generalChild(rn.RightIsInternal, rn.RightData, gen)
		if err != nil {
			return nil, err
		}
		return NewInternal(left, right), nil
	}
	return gen(root)
}

func generalChild(internal bool, data byte, gen func(int) (*Node, error)) (*Node, error) {
	if !internal {
		return NewLeaf(data), nil
	}
	return gen(int(data))
}

// GenerateTreePostorder returns the tree whose root is nodes[root],
// assuming the records are in postorder. The data of internal children is
// not used: the right subtree ends just before its parent and the left
// subtree ends just before the right one.
func GenerateTreePostorder(nodes []ReadNode, root int) (_ *Node, err error) {
	defer derrors.Wrap(&err, "GenerateTreePostorder(%d nodes, %d)", len(nodes), root)

	if root < 0 || root >= len(nodes) {
		return nil, fmt.Errorf("root index %d out of range: %w", root, derrors.MalformedHeader)
	}
	if t := singleLeaf(nodes[root]); t != nil {
		return t, nil
	}
	t, _, err := postorderSubtree(nodes, root)
	return t, err
}

// PostorderSize returns the number of records used by the tree rooted at
// nodes[root], read in postorder.
func PostorderSize(nodes []ReadNode, root int) (int, error) {
	if root < 0 || root >= len(nodes) {
		return 0, fmt.Errorf("PostorderSize: root index %d out of range: %w", root, derrors.MalformedHeader)
	}
	if singleLeaf(nodes[root]) != nil {
		return 1, nil
	}
	_, size, err := postorderSubtree(nodes, root)
	return size, err
}

// postorderSubtree returns the tree rooted at nodes[i] and the number of
// records it occupies.
func postorderSubtree(nodes []ReadNode, i int) (*Node, int, error) {
	if i < 0 {
		return nil, 0, fmt.Errorf("subtree runs past the first record: %w", derrors.MalformedHeader)
	}
	rn := nodes[i]
	size := 1
	var right *Node
	rightSize := 0
	if rn.RightIsInternal {
		var err error
		right, rightSize, err = postorderSubtree(nodes, i-1)
		if err != nil {
			return nil, 0, err
		}
		size += rightSize
	} else {
		right = NewLeaf(rn.RightData)
	}
	var left *Node
	if rn.LeftIsInternal {
		l, leftSize, err := postorderSubtree(nodes, i-rightSize-1)
		if err != nil {
			return nil, 0, err
		}
		left = l
		size += leftSize
	} else {
		left = NewLeaf(rn.LeftData)
	}
	return NewInternal(left, right), size, nil
}

// singleLeaf returns the single-leaf tree if rn is the record written for
// one, and nil otherwise.
func singleLeaf(rn ReadNode) *Node {
	if !rn.LeftIsInternal && !rn.RightIsInternal && rn.LeftData == rn.RightData {
		return NewLeaf(rn.LeftData)
	}
	return nil
}
