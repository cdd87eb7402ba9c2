// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

// trieNode is one entry in the dictionary: an index-addressed node in
// a byte-labelled trie. The root-to-node string is cached at every
// node (rather than walked via parent chain on every lookup) so that
// StringOf returns it in constant time instead of O(depth), at the
// cost of one extra allocation per node on insert.
type trieNode struct {
	parent   uint32
	label    byte
	str      []byte
	children map[byte]uint32
}

// Trie maps code indices to byte strings and byte strings to code
// indices. Index 0 is the root (the empty string). Indices 1..256 are
// pre-populated with the 256 single-byte strings. New nodes get
// consecutive indices >= 257, up to trieMaxSize.
type Trie struct {
	nodes []trieNode
}

// NewTrie constructs a trie pre-seeded with the root and 256
// single-byte children.
func NewTrie() *Trie {
	t := &Trie{nodes: make([]trieNode, 1, rootSize)}
	t.nodes[0] = trieNode{children: make(map[byte]uint32, 256)}
	for i := 0; i < 256; i++ {
		b := byte(i)
		t.nodes = append(t.nodes, trieNode{parent: 0, label: b, str: []byte{b}, children: make(map[byte]uint32)})
		t.nodes[0].children[b] = uint32(i + 1)
	}
	return t
}

// Len returns the number of nodes in the trie, initially 257.
func (t *Trie) Len() int { return len(t.nodes) }

// StringOf returns the byte string for index, or false if index is out
// of range.
func (t *Trie) StringOf(index uint32) ([]byte, bool) {
	if int(index) >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[index].str, true
}

// Child returns the code index of index's child on byte b, if any.
func (t *Trie) Child(index uint32, b byte) (uint32, bool) {
	c, ok := t.nodes[index].children[b]
	return c, ok
}

// Add inserts every prefix of bytes not already present, starting at
// the root. Once Len() has reached trieMaxSize, insertion silently
// stops: the dictionary is frozen at its final
// size and every later code is transmitted at that fixed width.
func (t *Trie) Add(bytes []byte) {
	cur := uint32(0)
	for _, b := range bytes {
		next, ok := t.addChild(cur, b)
		if !ok {
			return
		}
		cur = next
	}
}

// addChild returns the index of cur's child on b, creating it first if
// necessary and if the trie has room. ok is false only when the child
// is missing and the trie is already at trieMaxSize.
func (t *Trie) addChild(cur uint32, b byte) (next uint32, ok bool) {
	if child, ok := t.nodes[cur].children[b]; ok {
		return child, true
	}
	if len(t.nodes) >= trieMaxSize {
		return 0, false
	}
	str := make([]byte, len(t.nodes[cur].str)+1)
	copy(str, t.nodes[cur].str)
	str[len(str)-1] = b

	idx := uint32(len(t.nodes))
	t.nodes = append(t.nodes, trieNode{parent: cur, label: b, str: str, children: make(map[byte]uint32, 1)})
	t.nodes[cur].children[b] = idx
	return idx, true
}

// TrieWalker is the encoder's incremental state: a Trie plus a current
// node index tracking the longest prefix of the unconsumed input seen
// so far.
type TrieWalker struct {
	trie *Trie
	cur  uint32
}

// NewTrieWalker wraps trie with a walker positioned at the root.
func NewTrieWalker(trie *Trie) *TrieWalker {
	return &TrieWalker{trie: trie}
}

// Feed advances the walker by one input byte. If the current node
// already has a child on b, the walker simply moves there and Feed
// returns (0, false). Otherwise b is added as a new child of the
// current node (subject to the growth cap), the current node's index
// is returned as the emitted code, and the walker restarts at the
// root's child on b — which always exists, since the root is
// pre-seeded with every byte value.
func (w *TrieWalker) Feed(b byte) (code uint32, emitted bool) {
	if child, ok := w.trie.Child(w.cur, b); ok {
		w.cur = child
		return 0, false
	}
	emittedCode := w.cur
	w.trie.addChild(w.cur, b)

	next, ok := w.trie.Child(0, b)
	if !ok {
		panic(invariantError("root is missing a pre-seeded child"))
	}
	w.cur = next
	return emittedCode, true
}

// Finish returns the current node's index. Callers must emit this
// after the last input byte to flush the trailing match.
func (w *TrieWalker) Finish() uint32 { return w.cur }
