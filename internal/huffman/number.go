// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

// NumberNodes numbers the internal nodes of tree in postorder, starting
// at 0, and returns how many there are. Leaves are left untouched.
func NumberNodes(tree *Node) int {
	if tree == nil {
		return 0
	}
	return numberFrom(tree, 0)
}

func numberFrom(n *Node, next int) int {
	if n.IsLeaf() {
		return next
	}
	next = numberFrom(n.Left, next)
	next = numberFrom(n.Right, next)
	n.Number = next
	return next + 1
}
