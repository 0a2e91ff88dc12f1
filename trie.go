// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

// PrefixTrie is a binary trie forwarding table. A route of length L
// lives at depth L on the path spelled by its bits; the root is the
// empty prefix and holds a /0 route.
type PrefixTrie struct {
	root   *trieNode
	size   int
	nodes  int
	sealed bool
}

func NewPrefixTrie() *PrefixTrie {
	return &PrefixTrie{root: &trieNode{}, nodes: 1}
}

// Insert adds a route, creating the missing nodes along its path. A
// route that is already present is overwritten.
func (t *PrefixTrie) Insert(line string) error {
	if t.sealed {
		return ErrSealed
	}
	prefix, err := ParseRoute(line)
	if err != nil {
		return err
	}
	t.insert(prefix)
	return nil
}

func (t *PrefixTrie) insert(prefix BitString) {
	n := t.root
	for i := 0; i < prefix.Len(); i++ {
		var created bool
		n, created = n.addChild(prefix.Bit(i))
		if created {
			t.nodes++
		}
	}
	if !n.setValue(prefix) {
		t.size++
	}
}

func (t *PrefixTrie) Lookup(address string) (Match, error) {
	return lookupText(t, address)
}

// LookupBits walks the query from the root and keeps the deepest route
// seen. The walk ends at the first missing child, nothing below it was
// ever inserted.
func (t *PrefixTrie) LookupBits(query BitString) Match {
	n := t.root
	var best *trieNode
	if n.hasValue {
		best = n
	}

	for i := 0; i < query.Len(); i++ {
		n = n.getChild(query.Bit(i))
		if n == nil {
			break
		}
		if n.hasValue {
			best = n
		}
	}

	if best == nil {
		return noMatch
	}
	return matchOf(best.value)
}

func (t *PrefixTrie) Seal() {
	t.sealed = true
}

func (t *PrefixTrie) Sealed() bool {
	return t.sealed
}

func (t *PrefixTrie) Len() int {
	return t.size
}

// Nodes is the number of trie nodes, the root included.
func (t *PrefixTrie) Nodes() int {
	return t.nodes
}

// Walk calls fn for every route in depth first order, 0 edges before 1
// edges, until fn returns true.
func (t *PrefixTrie) Walk(fn func(RouteEntry) bool) {
	walk(t.root, fn)
}

func walk(n *trieNode, fn func(RouteEntry) bool) bool {
	if n.hasValue && fn(newRouteEntry(n.value)) {
		return true
	}
	if n.isLeaf() {
		return false
	}
	for _, child := range n.children {
		if child != nil && walk(child, fn) {
			return true
		}
	}
	return false
}
