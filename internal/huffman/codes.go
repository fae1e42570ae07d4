// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

// A CodeTable maps each symbol of a tree to its code, a string of '0'
// and '1' characters. No code is a prefix of another.
type CodeTable map[byte]string

// Codes returns the code table of tree. A tree that is a single leaf
// gives the code "0" to its symbol.
func Codes(tree *Node) CodeTable {
	codes := CodeTable{}
	if tree == nil {
		return codes
	}
	if tree.IsLeaf() {
		codes[tree.Symbol] = "0"
		return codes
	}
	walkCodes(tree, nil, codes)
	return codes
}

func walkCodes(n *Node, prefix []byte, codes CodeTable) {
	if n.IsLeaf() {
		codes[n.Symbol] = string(prefix)
		return
	}
	walkCodes(n.Left, append(prefix, '0'), codes)
	walkCodes(n.Right, append(prefix, '1'), codes)
}

// Inverse returns the mapping from code to symbol.
func (c CodeTable) Inverse() map[string]byte {
	inv := make(map[string]byte, len(c))
	for s, code := range c {
		inv[code] = s
	}
	return inv
}

// MaxLen returns the length of the longest code in c.
func (c CodeTable) MaxLen() int {
	longest := 0
	for _, code := range c {
		if len(code) > longest {
			longest = len(code)
		}
	}
	return longest
}
