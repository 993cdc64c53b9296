package lexicon

// node is a single trie vertex. Each node carries the letter it represents,
// whether the path from the root down to it spells a complete word, and its
// children sorted ascending by letter. The parent pointer is navigation only,
// used to walk upward when pruning dead prefix chains; it never owns anything.
type node struct {
	char     byte
	isWord   bool
	parent   *node
	children []*node
}

// addChild inserts c into the child slice at the position that keeps the
// slice sorted ascending by char. The caller guarantees no sibling already
// carries c.char.
func (n *node) addChild(c *node) {
	for i, child := range n.children {
		if c.char < child.char {
			n.children = append(n.children, nil)
			copy(n.children[i+1:], n.children[i:])
			n.children[i] = c
			return
		}
	}
	n.children = append(n.children, c)
}

// removeChild removes c from the child slice by identity. Removing a node
// that is not a child is a no-op.
func (n *node) removeChild(c *node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// getChild returns the child carrying ch, or nil. Absence is an ordinary
// outcome, not an error. The child slice is at most alphabet-sized, so a
// linear scan is fine.
func (n *node) getChild(ch byte) *node {
	for _, child := range n.children {
		if child.char == ch {
			return child
		}
	}
	return nil
}

func (n *node) hasChildren() bool {
	return len(n.children) > 0
}
