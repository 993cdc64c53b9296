package lexicon

// Lexicon is a word set stored as a trie. A path from the root traces out a
// prefix; nodes flagged as word-ends mark the complete stored words. Words
// are expected to be lowercase ASCII (see Loader for folding arbitrary
// input into that alphabet).
//
// A Lexicon is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking.
type Lexicon struct {
	root *node
	size int
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{root: &node{}}
}

// Insert adds word to the lexicon, creating trie nodes wherever the path is
// missing. It returns true if the lexicon was modified: either new nodes
// were created for the word, or the word previously existed only as a
// prefix of a longer word and its terminal node is now flagged. Inserting a
// word already present, or the empty string, returns false. Runs in time
// proportional to len(word).
func (l *Lexicon) Insert(word string) bool {
	if word == "" {
		return false
	}
	finger := l.root
	for i := 0; i < len(word); i++ {
		ch := word[i]
		child := finger.getChild(ch)
		if child == nil {
			child = &node{char: ch, parent: finger}
			finger.addChild(child)
		}
		finger = child
	}
	if finger.isWord {
		return false
	}
	finger.isWord = true
	l.size++
	return true
}

// Remove deletes word from the lexicon. It returns false, leaving the
// lexicon unchanged, when the word is not present (including when its
// letters exist only as a prefix of longer words). On success the terminal
// node is unflagged and any trailing nodes made useless by the removal are
// pruned, stopping at the first ancestor that still has children or is
// itself a word.
func (l *Lexicon) Remove(word string) bool {
	end := l.locate(word)
	if end == nil || !end.isWord {
		return false
	}
	end.isWord = false
	l.size--
	l.cleanup(end)
	return true
}

// cleanup walks parent pointers from n, detaching nodes that no longer lead
// to any word. Nodes with children or a word-end flag terminate the walk;
// they are still needed by other words.
func (l *Lexicon) cleanup(n *node) {
	for n != l.root && !n.hasChildren() && !n.isWord {
		parent := n.parent
		parent.removeChild(n)
		n.parent = nil
		n = parent
	}
}

// locate follows s character by character from the root and returns the
// node reached, or nil the moment a required child does not exist. The
// empty string locates the root.
func (l *Lexicon) locate(s string) *node {
	finger := l.root
	for i := 0; i < len(s); i++ {
		finger = finger.getChild(s[i])
		if finger == nil {
			return nil
		}
	}
	return finger
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return l.size
}

// Contains reports whether word is stored in the lexicon. A word stored
// only as a prefix of longer words does not count.
func (l *Lexicon) Contains(word string) bool {
	end := l.locate(word)
	return end != nil && end.isWord
}

// ContainsPrefix reports whether any stored word begins with prefix. A word
// is a prefix of itself, and the empty string is a prefix of everything.
func (l *Lexicon) ContainsPrefix(prefix string) bool {
	return l.locate(prefix) != nil
}

// Words returns every word in the lexicon in lexicographic order. Each call
// traverses the trie afresh.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, l.size)
	walk(l.root, make([]byte, 0, 16), &words)
	return words
}

// WordsWithPrefix returns every stored word beginning with prefix, in
// lexicographic order.
func (l *Lexicon) WordsWithPrefix(prefix string) []string {
	start := l.locate(prefix)
	if start == nil {
		return nil
	}
	var words []string
	if start.isWord {
		words = append(words, prefix)
	}
	walk(start, append(make([]byte, 0, 16), prefix...), &words)
	return words
}

// walk is a depth-first pre-order traversal visiting children in ascending
// character order. path accumulates the letters from the root to n; the
// returned slice carries any reallocation back to the caller.
func walk(n *node, path []byte, words *[]string) []byte {
	for _, child := range n.children {
		path = append(path, child.char)
		if child.isWord {
			*words = append(*words, string(path))
		}
		path = walk(child, path, words)
		path = path[:len(path)-1]
	}
	return path
}
