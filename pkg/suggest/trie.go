package suggest

import (
	"strings"
)

// DefaultSuggestions is how many suggestions a partial match returns
// unless the trie was built with another limit.
const DefaultSuggestions = 3

// Trie owns the root node and counters about the vocabulary.
// It is built once and then only read, so concurrent Query calls are
// safe after the last Insert. Insert itself must not run concurrently.
type Trie struct {
	root  *Node
	limit int
	words int
	nodes int
}

// New creates an empty trie returning up to DefaultSuggestions suggestions.
func New() *Trie {
	return NewWithLimit(DefaultSuggestions)
}

// NewWithLimit creates an empty trie returning up to limit suggestions.
// Limits below 1 fall back to DefaultSuggestions.
func NewWithLimit(limit int) *Trie {
	if limit < 1 {
		limit = DefaultSuggestions
	}
	return &Trie{
		root:  newNode(0, ""),
		limit: limit,
	}
}

// Insert adds one occurrence of word. The word is lowercased first.
// Missing nodes along the path are created; the last one is marked as a
// word or, if it already was, gets its use count bumped.
// An empty word is a no-op.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	runes := []rune(strings.ToLower(word))
	last := len(runes) - 1
	current := t.root

	for i, r := range runes {
		child, ok := current.children[r]
		if !ok {
			child = newNode(r, current.prefix+string(r))
			current.children[r] = child
			t.nodes++
		}
		current = child

		if i == last {
			if !current.isWord {
				t.words++
			}
			current.markWord()
		}
	}
}

// Walk visits every node below the root exactly once, depth first.
// Returning false from fn stops the walk.
func (t *Trie) Walk(fn func(n *Node) bool) {
	stack := make([]*Node, 0, len(t.root.children))
	for _, child := range t.root.children {
		stack = append(stack, child)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
}

// Root returns the root node. It never represents a character.
func (t *Trie) Root() *Node { return t.root }

// Words returns the number of distinct words inserted.
func (t *Trie) Words() int { return t.words }

// Nodes returns the number of nodes below the root.
func (t *Trie) Nodes() int { return t.nodes }

// Limit returns the maximum number of suggestions per query.
func (t *Trie) Limit() int { return t.limit }
