package suggest

// Node is a single character position in the trie.
// prefix caches the root-to-node path so suggestions never walk back up.
type Node struct {
	char     rune
	prefix   string
	isWord   bool
	useCount uint
	children map[rune]*Node
}

func newNode(char rune, prefix string) *Node {
	return &Node{
		char:     char,
		prefix:   prefix,
		children: make(map[rune]*Node),
	}
}

// markWord flags the node as a word terminal, or counts one more use
// if it already is one.
func (n *Node) markWord() {
	if n.isWord {
		n.useCount++
		return
	}
	n.isWord = true
	n.useCount = 1
}

// Char returns the character this node represents; zero for the root.
func (n *Node) Char() rune { return n.char }

// Prefix returns the string spelled from the root down to this node.
func (n *Node) Prefix() string { return n.prefix }

// IsWord reports whether an inserted word ends at this node.
func (n *Node) IsWord() bool { return n.isWord }

// UseCount returns how many times the word ending here was inserted.
// It is 0 for nodes that are not word terminals.
func (n *Node) UseCount() uint { return n.useCount }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the child for char, or nil.
func (n *Node) Child(char rune) *Node {
	return n.children[char]
}
