// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

// trieNode is one bit position on the path from the root. children[0]
// follows a 0 bit, children[1] a 1 bit. A node holding a value is the
// end of a route whose length equals the node's depth.
type trieNode struct {
	children [2]*trieNode
	value    BitString
	hasValue bool
}

func (n *trieNode) getChild(bit int) *trieNode {
	return n.children[bit]
}

// addChild returns the child for bit, creating it if needed. created
// reports whether a new node was allocated.
func (n *trieNode) addChild(bit int) (child *trieNode, created bool) {
	if n.children[bit] == nil {
		n.children[bit] = &trieNode{}
		created = true
	}
	return n.children[bit], created
}

func (n *trieNode) setValue(prefix BitString) (replaced bool) {
	replaced = n.hasValue
	n.value = prefix
	n.hasValue = true
	return replaced
}

func (n *trieNode) isLeaf() bool {
	return n.children[0] == nil && n.children[1] == nil
}
