package lexicon

// SuggestCorrections returns the stored words within maxDistance of target,
// where distance is the number of character positions at which two
// equal-length strings differ. This is substitution-only distance, not
// general edit distance: the search consumes exactly one target character
// per trie level, so words longer or shorter than target never surface.
// The result is a set; iteration order is unspecified. Cost grows with the
// branching factor and the distance budget, not just len(target).
func (l *Lexicon) SuggestCorrections(target string, maxDistance int) map[string]struct{} {
	suggestions := make(map[string]struct{})
	suggest(l.root, target, maxDistance, make([]byte, 0, len(target)), suggestions)
	return suggestions
}

// suggest recurses over the trie consuming one target character per level.
// budget is the remaining allowed distance; a mismatching child costs one.
func suggest(n *node, target string, budget int, path []byte, out map[string]struct{}) {
	if budget < 0 {
		return
	}
	if len(target) == 0 {
		if n.isWord {
			out[string(path)] = struct{}{}
		}
		return
	}
	for _, child := range n.children {
		remaining := budget
		if child.char != target[0] {
			remaining--
		}
		suggest(child, target[1:], remaining, append(path, child.char), out)
	}
}

// MatchPattern returns the stored words matching pattern. A pattern is made
// of lowercase letters and the wildcards '*' (any sequence of zero or more
// characters), '?' (zero or one character) and '_' (exactly one character).
// The result is a set; iteration order is unspecified.
func (l *Lexicon) MatchPattern(pattern string) map[string]struct{} {
	matched := make(map[string]struct{})
	match(l.root, pattern, make([]byte, 0, len(pattern)), matched)
	return matched
}

func match(n *node, pattern string, path []byte, out map[string]struct{}) {
	if len(pattern) == 0 {
		if n.isWord {
			out[string(path)] = struct{}{}
		}
		return
	}
	switch ch := pattern[0]; ch {
	case '*':
		// The star matches zero characters here...
		match(n, pattern[1:], path, out)
		// ...or one more character via each child, keeping the star alive.
		// When a child carries the first non-star character of the pattern,
		// that branch consumes the star instead, so the child also counts
		// as the literal match.
		var next byte
		for i := 0; i < len(pattern); i++ {
			if pattern[i] != '*' {
				next = pattern[i]
				break
			}
		}
		for _, child := range n.children {
			rest := pattern
			if child.char == next {
				rest = pattern[1:]
			}
			match(child, rest, append(path, child.char), out)
		}
	case '_':
		// Try each letter present below n by rewriting the wildcard into
		// that letter and re-entering the literal path on the same node.
		for _, child := range n.children {
			match(n, string(rune(child.char))+pattern[1:], path, out)
		}
	case '?':
		match(n, pattern[1:], path, out)
		match(n, "_"+pattern[1:], path, out)
	default:
		for _, child := range n.children {
			if child.char == ch {
				match(child, pattern[1:], append(path, child.char), out)
			}
		}
	}
}
